package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-colorable"

	"github.com/ytget/ytdlp-gui/internal/cli"
	"github.com/ytget/ytdlp-gui/internal/session"
	"github.com/ytget/ytdlp-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	colorable.EnableColorsStdout(nil)
	log.SetOutput(colorable.NewColorableStderr())

	var c cli.CLI
	parser := kong.Must(&c, cli.Options(version)...)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	log.Printf("yt-dlp GUI v%s starting, settings in %s", version, c.Config)

	err = ctx.Run(&cli.App{
		Session: c.NewSession(),
		Out:     colorable.NewColorableStdout(),
		LaunchGUI: func(sess *session.Session) error {
			ui.Run(sess, version)
			return nil
		},
	})
	ctx.FatalIfErrorf(err)
}
