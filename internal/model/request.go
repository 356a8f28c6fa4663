package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects what the external tool should produce
type Mode int

const (
	// ModeVideo downloads the best single-file format
	ModeVideo Mode = iota
	// ModeAudioMP3 extracts the audio track and converts it to mp3
	ModeAudioMP3
)

// String returns the flag-friendly name of the mode
func (m Mode) String() string {
	switch m {
	case ModeVideo:
		return "video"
	case ModeAudioMP3:
		return "audio"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "video" or "audio" (case-insensitive) into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video", "":
		return ModeVideo, nil
	case "audio", "mp3":
		return ModeAudioMP3, nil
	default:
		return ModeVideo, fmt.Errorf("unknown download mode: %q", s)
	}
}

// DownloadRequest describes a single invocation of the external tool
type DownloadRequest struct {
	URL          string
	Mode         Mode
	OutputFolder string
}

// Outcome is the terminal result of a download run
type Outcome struct {
	ID         string
	Status     RunStatus
	Message    string // fault description when Status is Failed
	ExitCode   int    // exit code of the tool, -1 if it never exited
	Err        error  // underlying error when Status is Failed
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the run completed
func (o Outcome) Succeeded() bool {
	return o.Status == RunStatusComplete
}

// Status text shown to the user
const (
	StatusPrefix = "Status: "
	ErrorPrefix  = "Error: "

	StatusDownloading = "Status: Downloading..."
	StatusComplete    = "Status: Download Complete"
	StatusError       = "Status: Error occurred"
)

// StatusLine formats a line read from the tool's standard output
func StatusLine(line string) string {
	return StatusPrefix + line
}

// ErrorLine formats a line read from the tool's standard error
func ErrorLine(line string) string {
	return ErrorPrefix + line
}

// TerminalText returns the status text for a finished outcome
func (o Outcome) TerminalText() string {
	if o.Succeeded() {
		return StatusComplete
	}
	return StatusError
}
