package download

import (
	"errors"
	"fmt"
)

// Validation sentinels
var (
	ErrEmptyURL    = errors.New("video URL is empty")
	ErrEmptyFolder = errors.New("download folder is not selected")
)

// ValidationError is returned before any process is started
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProcessError means the external tool could not be started or waited on
type ProcessError struct {
	Op  string // "pipe", "start" or "wait"
	Err error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, YTDLPCommand, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
