package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/ytdlp-gui/internal/model"
)

// ErrDownloadFailed is returned when yt-dlp could not be run
var ErrDownloadFailed = errors.New("download failed")

// Styling definitions
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)
)

// GUICmd opens the desktop window
type GUICmd struct{}

func (c *GUICmd) Run(app *App) error {
	if app.LaunchGUI == nil {
		return errors.New("desktop window is not available in this build")
	}
	return app.LaunchGUI(app.Session)
}

// DownloadCmd runs one download and prints its status lines
type DownloadCmd struct {
	URL    string `arg:"" help:"Video URL."`
	Mode   string `short:"m" enum:"video,audio" default:"video" help:"What to download: video or audio (mp3)."`
	Audio  bool   `short:"a" help:"Shorthand for --mode=audio."`
	Folder string `short:"o" help:"Download folder; saved as the new default." type:"path"`
	Plain  bool   `help:"Print every status line instead of a spinner."`
}

func (c *DownloadCmd) Run(app *App) error {
	app.Session.LoadPreferredFolder()
	if c.Folder != "" {
		if err := app.Session.SetPreferredFolder(c.Folder); err != nil {
			return err
		}
	}

	mode, err := model.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	if c.Audio {
		mode = model.ModeAudioMP3
	}

	var onStatus func(string)
	var bar *progressbar.ProgressBar
	if c.Plain {
		onStatus = func(line string) {
			fmt.Fprintln(app.Out, styleLine(line))
		}
	} else {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(app.Out),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetDescription(model.StatusDownloading),
			progressbar.OptionClearOnFinish(),
		)
		onStatus = func(line string) {
			bar.Describe(styleLine(line))
			_ = bar.Add(1)
		}
	}

	done, err := app.Session.StartDownload(c.URL, mode, onStatus)
	if err != nil {
		return err
	}
	outcome := <-done

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(app.Out, styleLine(outcome.TerminalText()))
	}

	if !outcome.Succeeded() {
		return fmt.Errorf("%w: %s", ErrDownloadFailed, outcome.Message)
	}
	return nil
}

// FolderCmd groups the folder subcommands
type FolderCmd struct {
	Show FolderShowCmd `cmd:"" default:"1" help:"Print the download folder."`
	Set  FolderSetCmd  `cmd:"" help:"Change the download folder."`
}

// FolderShowCmd prints the saved folder
type FolderShowCmd struct{}

func (c *FolderShowCmd) Run(app *App) error {
	folder := app.Session.LoadPreferredFolder()
	if folder == "" {
		fmt.Fprintln(app.Out, "Download Location: Not selected")
		return nil
	}
	fmt.Fprintf(app.Out, "Download Location: %s\n", folder)
	return nil
}

// FolderSetCmd saves a new folder
type FolderSetCmd struct {
	Path string `arg:"" help:"Download folder." type:"path"`
}

func (c *FolderSetCmd) Run(app *App) error {
	if err := app.Session.SetPreferredFolder(c.Path); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Download Location: %s\n", c.Path)
	return nil
}

// styleLine colors a status line by the stream it came from
func styleLine(line string) string {
	switch {
	case line == model.StatusComplete:
		return successStyle.Render(line)
	case line == model.StatusError, strings.HasPrefix(line, model.ErrorPrefix):
		return errorStyle.Render(line)
	default:
		return statusStyle.Render(line)
	}
}
