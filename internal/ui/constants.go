package ui

// Window
const (
	AppTitle = "yt-dlp GUI"

	WindowWidth  float32 = 560
	WindowHeight float32 = 260
)

// Labels
const (
	LabelURL          = "Video URL"
	LabelBrowse       = "Browse"
	LabelDownload     = "Download"
	LabelOpenFolder   = "Open Folder"
	LabelModeVideo    = "Video"
	LabelModeAudio    = "Audio (mp3)"
	URLPlaceholder    = "https://www.youtube.com/watch?v=..."
	FolderLabelFormat = "Download Location: %s"
	FolderNotSelected = "Not selected"
	StatusReady       = "Status: Ready"
)

// Dialog titles and messages
const (
	TitleInputError = "Input Error"
	TitleError      = "Error"

	MessageEnterURL     = "Please enter a video URL."
	MessageSelectFolder = "Please select a download location."
	MessageErrorFormat  = "An error occurred: %s"
)
