// Package cli defines the command line: the desktop window by default, plus headless
// commands for downloading and managing the download folder.
package cli

import (
	"io"

	"github.com/alecthomas/kong"

	"github.com/ytget/ytdlp-gui/internal/config"
	"github.com/ytget/ytdlp-gui/internal/download"
	"github.com/ytget/ytdlp-gui/internal/session"
)

// CLI is the root command
type CLI struct {
	Config  string           `help:"Settings file holding the download folder." default:"${config}" type:"path"`
	YTDLP   string           `name:"ytdlp" help:"yt-dlp executable name or path." default:"${ytdlp}"`
	Version kong.VersionFlag `short:"v" help:"Show version."`

	GUI      GUICmd      `cmd:"" name:"gui" default:"1" help:"Open the desktop window."`
	Download DownloadCmd `cmd:"" help:"Download a video, or its audio as mp3, from the terminal."`
	Folder   FolderCmd   `cmd:"" help:"Show or change the download folder."`
}

// App carries what commands run against
type App struct {
	Session   *session.Session
	Out       io.Writer
	LaunchGUI func(*session.Session) error
}

// Options returns the kong options shared by main and tests
func Options(version string) []kong.Option {
	return []kong.Option{
		kong.Name("ytdlp-gui"),
		kong.Description("A small front-end for yt-dlp."),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
			"config":  config.DefaultFileName,
			"ytdlp":   download.YTDLPCommand,
		},
	}
}

// NewSession wires the settings store and the yt-dlp runner from parsed flags
func (c *CLI) NewSession() *session.Session {
	runner := download.NewRunner()
	runner.SetExecutable(c.YTDLP)
	return session.New(config.NewStore(c.Config), runner)
}
