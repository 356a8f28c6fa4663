// Package session owns the application state shared by the UI and the CLI: the
// preferred download folder and the single in-flight download.
package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/ytget/ytdlp-gui/internal/download"
	"github.com/ytget/ytdlp-gui/internal/model"
)

// ErrBusy is returned when a download is already running
var ErrBusy = errors.New("a download is already in progress")

// FolderStore persists the preferred download folder
type FolderStore interface {
	Load() string
	Save(folder string) error
}

// Session coordinates the preference store and the download runner
type Session struct {
	store  FolderStore
	runner download.Downloader

	mu     sync.RWMutex
	folder string
	status model.RunStatus
}

// New creates a session; call LoadPreferredFolder to restore the saved folder
func New(store FolderStore, runner download.Downloader) *Session {
	return &Session{
		store:  store,
		runner: runner,
		status: model.RunStatusIdle,
	}
}

// LoadPreferredFolder restores the saved folder and returns it ("" if none)
func (s *Session) LoadPreferredFolder() string {
	folder := s.store.Load()

	s.mu.Lock()
	s.folder = folder
	s.mu.Unlock()

	return folder
}

// SetPreferredFolder persists folder and makes it current. The current folder is left
// unchanged if saving fails.
func (s *Session) SetPreferredFolder(folder string) error {
	if err := s.store.Save(folder); err != nil {
		return err
	}

	s.mu.Lock()
	s.folder = folder
	s.mu.Unlock()
	return nil
}

// Folder returns the current download folder
func (s *Session) Folder() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.folder
}

// Status returns the state of the latest download
func (s *Session) Status() model.RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// StartDownload validates the input and runs the download on a background goroutine.
// Validation errors and ErrBusy are returned synchronously, before any state change.
// onStatus receives every output line followed by the terminal status text; it is
// called from the background goroutine. The outcome is sent once on the returned
// channel, which is then closed.
func (s *Session) StartDownload(url string, mode model.Mode, onStatus func(string)) (<-chan model.Outcome, error) {
	s.mu.Lock()
	if s.status.IsActive() {
		s.mu.Unlock()
		return nil, ErrBusy
	}

	req := model.DownloadRequest{URL: url, Mode: mode, OutputFolder: s.folder}
	if err := download.Prepare(req); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.status = model.RunStatusRunning
	s.mu.Unlock()

	notify := func(line string) {
		if onStatus != nil {
			onStatus(line)
		}
	}
	notify(model.StatusDownloading)

	done := make(chan model.Outcome, 1)
	go func() {
		defer close(done)

		outcome, err := s.runner.Run(context.Background(), req, notify)
		if err != nil {
			// The folder can disappear between Prepare and Run
			outcome = model.Outcome{
				Status:   model.RunStatusFailed,
				Message:  err.Error(),
				ExitCode: -1,
				Err:      err,
			}
		}

		s.mu.Lock()
		s.status = outcome.Status
		s.mu.Unlock()

		if outcome.Status == model.RunStatusFailed {
			log.Printf("Download of %s failed: %s", url, outcome.Message)
		}
		notify(outcome.TerminalText())
		done <- outcome
	}()

	return done, nil
}
