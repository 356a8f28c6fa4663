package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultFileName is the settings file, resolved against the working directory
const DefaultFileName = "appsettings.json"

// File permissions
const (
	DefaultFilePermissions = 0644
	DefaultDirPermissions  = 0755
)

// Preferences is the on-disk layout of the settings file
type Preferences struct {
	DownloadFolder string `json:"DownloadFolder"`
}

// IOError reports a settings file that could not be read or written
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("settings %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Store persists the download folder preference in a JSON file
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path. An empty path selects DefaultFileName.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Path returns the settings file location
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved download folder, or "" when none is saved.
// A missing, unreadable or malformed file is treated as "no folder selected".
func (s *Store) Load() string {
	prefs, err := s.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Ignoring settings file %s: %v", s.path, err)
		}
		return ""
	}
	return prefs.DownloadFolder
}

// Save overwrites the settings file with the given download folder
func (s *Store) Save(folder string) error {
	data, err := json.Marshal(Preferences{DownloadFolder: folder})
	if err != nil {
		return &IOError{Op: "encode", Path: s.path, Err: err}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return &IOError{Op: "write", Path: s.path, Err: err}
		}
	}

	if err := os.WriteFile(s.path, data, DefaultFilePermissions); err != nil {
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// read decodes the settings file; unknown keys are ignored
func (s *Store) read() (*Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, &IOError{Op: "decode", Path: s.path, Err: err}
	}
	return &prefs, nil
}
