package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/ytdlp-gui/internal/session"
)

// AppID identifies the application to the Fyne runtime
const AppID = "com.ytget.ytdlp-gui"

// Run opens the main window and blocks until it is closed
func Run(sess *session.Session, version string) {
	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppTitle, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	NewRootUI(myWindow, sess)

	myWindow.ShowAndRun()
}
