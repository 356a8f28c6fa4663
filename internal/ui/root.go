package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytdlp-gui/internal/download"
	"github.com/ytget/ytdlp-gui/internal/model"
	"github.com/ytget/ytdlp-gui/internal/platform"
	"github.com/ytget/ytdlp-gui/internal/session"
)

// RootUI represents the main window content
type RootUI struct {
	window  fyne.Window
	session *session.Session

	folderLabel   *widget.Label
	urlEntry      *widget.Entry
	modeRadio     *widget.RadioGroup
	downloadBtn   *widget.Button
	openFolderBtn *widget.Button
	statusLabel   *widget.Label
}

// NewRootUI builds the window content and restores the saved folder
func NewRootUI(window fyne.Window, sess *session.Session) *RootUI {
	ui := &RootUI{
		window:  window,
		session: sess,
	}

	ui.setupUI()
	ui.showFolder(sess.LoadPreferredFolder())

	if err := platform.ValidateYTDLP(); err != nil {
		log.Printf("yt-dlp check failed: %v", err)
		ui.statusLabel.SetText(model.ErrorLine(err.Error()))
	}

	return ui
}

// setupUI creates widgets and the window layout
func (ui *RootUI) setupUI() {
	ui.folderLabel = widget.NewLabel("")
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	browseBtn := widget.NewButton(LabelBrowse, ui.onBrowse)
	folderRow := container.NewBorder(nil, nil, nil, browseBtn, ui.folderLabel)

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(URLPlaceholder)
	ui.urlEntry.OnSubmitted = func(string) { ui.onDownload() }

	ui.modeRadio = widget.NewRadioGroup([]string{LabelModeVideo, LabelModeAudio}, nil)
	ui.modeRadio.Horizontal = true
	ui.modeRadio.Required = true
	ui.modeRadio.SetSelected(LabelModeVideo)

	ui.downloadBtn = widget.NewButton(LabelDownload, ui.onDownload)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.openFolderBtn = widget.NewButton(LabelOpenFolder, ui.onOpenFolder)

	ui.statusLabel = widget.NewLabel(StatusReady)
	ui.statusLabel.Wrapping = fyne.TextWrapBreak

	content := container.NewVBox(
		folderRow,
		widget.NewLabel(LabelURL),
		ui.urlEntry,
		ui.modeRadio,
		container.NewHBox(ui.downloadBtn, ui.openFolderBtn),
		widget.NewSeparator(),
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// selectedMode maps the radio selection to a download mode
func (ui *RootUI) selectedMode() model.Mode {
	if ui.modeRadio.Selected == LabelModeAudio {
		return model.ModeAudioMP3
	}
	return model.ModeVideo
}

// showFolder updates the folder label
func (ui *RootUI) showFolder(folder string) {
	if folder == "" {
		folder = FolderNotSelected
	}
	ui.folderLabel.SetText(fmt.Sprintf(FolderLabelFormat, folder))
}

// onBrowse opens the folder picker and persists the choice
func (ui *RootUI) onBrowse() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.selectFolder(uri.Path())
	}, ui.window)

	if location := ui.browseLocation(); location != nil {
		picker.SetLocation(location)
	}
	picker.Show()
}

// browseLocation returns the folder the picker opens in
func (ui *RootUI) browseLocation() fyne.ListableURI {
	start := ui.session.Folder()
	if start == "" {
		dir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			return nil
		}
		start = dir
	}

	lister, err := storage.ListerForURI(storage.NewFileURI(start))
	if err != nil {
		return nil
	}
	return lister
}

// selectFolder saves folder as the download location
func (ui *RootUI) selectFolder(folder string) {
	if err := ui.session.SetPreferredFolder(folder); err != nil {
		log.Printf("Failed to save download folder: %v", err)
		ui.showError(err)
		return
	}
	ui.showFolder(folder)
}

// onDownload validates input and starts the download in the background
func (ui *RootUI) onDownload() {
	done, err := ui.session.StartDownload(ui.urlEntry.Text, ui.selectedMode(), ui.onStatus)
	if err != nil {
		ui.showStartError(err)
		return
	}

	ui.downloadBtn.Disable()
	go ui.awaitOutcome(done)
}

// onStatus is called from the download goroutine
func (ui *RootUI) onStatus(line string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(line)
	})
}

// awaitOutcome waits for the terminal outcome and updates the window
func (ui *RootUI) awaitOutcome(done <-chan model.Outcome) {
	outcome := <-done

	fyne.Do(func() {
		ui.downloadBtn.Enable()
		if !outcome.Succeeded() {
			dialog.ShowInformation(TitleError, fmt.Sprintf(MessageErrorFormat, outcome.Message), ui.window)
		}
	})
}

// onOpenFolder reveals the download folder
func (ui *RootUI) onOpenFolder() {
	folder := ui.session.Folder()
	if folder == "" {
		dialog.ShowInformation(TitleInputError, MessageSelectFolder, ui.window)
		return
	}
	if err := platform.OpenDirectory(folder); err != nil {
		ui.showError(err)
	}
}

// showStartError maps synchronous start errors to modal messages
func (ui *RootUI) showStartError(err error) {
	switch {
	case errors.Is(err, download.ErrEmptyURL):
		dialog.ShowInformation(TitleInputError, MessageEnterURL, ui.window)
	case errors.Is(err, download.ErrEmptyFolder):
		dialog.ShowInformation(TitleInputError, MessageSelectFolder, ui.window)
	default:
		ui.showError(err)
	}
}

// showError displays an unexpected failure
func (ui *RootUI) showError(err error) {
	dialog.ShowInformation(TitleError, fmt.Sprintf(MessageErrorFormat, err.Error()), ui.window)
}
