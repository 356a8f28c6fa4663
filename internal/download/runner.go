package download

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/alessio/shellescape"
	"github.com/google/uuid"

	"github.com/ytget/ytdlp-gui/internal/model"
	"github.com/ytget/ytdlp-gui/internal/platform"
)

// yt-dlp invocation constants
const (
	YTDLPCommand   = platform.YTDLPCommand
	OutputTemplate = "%(title)s.%(ext)s"

	OutputFlag       = "-o"
	FormatFlag       = "-f"
	FormatBest       = "best"
	ExtractAudioFlag = "-x"
	AudioFormatFlag  = "--audio-format"
	AudioFormatMP3   = "mp3"

	RunIDPrefix = "run-"
)

// Buffer limits for tool output
const (
	readBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// CommandFunc creates the process for the tool; exec.CommandContext by default
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Runner starts yt-dlp and supervises a single invocation
type Runner struct {
	executable string
	command    CommandFunc
}

// NewRunner creates a runner that resolves yt-dlp through PATH
func NewRunner() *Runner {
	return &Runner{
		executable: YTDLPCommand,
		command:    exec.CommandContext,
	}
}

// SetExecutable overrides the tool name or path
func (r *Runner) SetExecutable(name string) {
	if name == "" {
		name = YTDLPCommand
	}
	r.executable = name
}

// SetCommandFunc replaces the process factory
func (r *Runner) SetCommandFunc(fn CommandFunc) {
	if fn == nil {
		fn = exec.CommandContext
	}
	r.command = fn
}

// Validate checks the request before any process work
func Validate(req model.DownloadRequest) error {
	if req.URL == "" {
		return &ValidationError{Field: "url", Err: ErrEmptyURL}
	}
	if req.OutputFolder == "" {
		return &ValidationError{Field: "folder", Err: ErrEmptyFolder}
	}
	return nil
}

// Prepare validates the request and creates the output folder if it is missing
func Prepare(req model.DownloadRequest) error {
	if err := Validate(req); err != nil {
		return err
	}
	if err := platform.CreateDirectoryIfNotExists(req.OutputFolder); err != nil {
		return &ValidationError{Field: "folder", Err: err}
	}
	return nil
}

// BuildArgs builds the yt-dlp argument list: format selector, output template, URL
func BuildArgs(req model.DownloadRequest) []string {
	var args []string
	switch req.Mode {
	case model.ModeAudioMP3:
		args = append(args, ExtractAudioFlag, AudioFormatFlag, AudioFormatMP3)
	default:
		args = append(args, FormatFlag, FormatBest)
	}

	return append(args,
		OutputFlag, filepath.Join(req.OutputFolder, OutputTemplate),
		req.URL,
	)
}

// Run executes the request. The exit code of the tool is recorded on the outcome but
// does not affect its status: any run that starts and exits is Complete.
func (r *Runner) Run(ctx context.Context, req model.DownloadRequest, onStatus func(string)) (model.Outcome, error) {
	if err := Prepare(req); err != nil {
		return model.Outcome{}, err
	}

	outcome := model.Outcome{
		ID:        generateRunID(),
		Status:    model.RunStatusRunning,
		ExitCode:  -1,
		StartedAt: time.Now(),
	}

	args := BuildArgs(req)
	log.Printf("Run %s: %s %s", outcome.ID, r.executable, shellescape.QuoteCommand(args))

	var mu sync.Mutex
	emit := func(line string) {
		if onStatus == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		onStatus(line)
	}

	exitCode, err := r.execute(ctx, args, emit)
	outcome.FinishedAt = time.Now()
	outcome.ExitCode = exitCode

	if err != nil {
		outcome.Status = model.RunStatusFailed
		outcome.Err = err
		outcome.Message = err.Error()
		log.Printf("Run %s failed: %v", outcome.ID, err)
		return outcome, nil
	}

	outcome.Status = model.RunStatusComplete
	log.Printf("Run %s finished with exit code %d in %s", outcome.ID, exitCode, outcome.FinishedAt.Sub(outcome.StartedAt).Round(time.Millisecond))
	return outcome, nil
}

// execute starts the process, drains both pipes and waits for exit
func (r *Runner) execute(ctx context.Context, args []string, emit func(string)) (int, error) {
	cmd := r.command(ctx, r.executable, args...)
	platform.HideConsole(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, &ProcessError{Op: "pipe", Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, &ProcessError{Op: "pipe", Err: err}
	}

	if err := cmd.Start(); err != nil {
		return -1, &ProcessError{Op: "start", Err: err}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		forwardLines(stdout, model.StatusLine, emit)
	}()
	go func() {
		defer wg.Done()
		forwardLines(stderr, model.ErrorLine, emit)
	}()

	// Pipes must be fully read before Wait closes them
	wg.Wait()

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, &ProcessError{Op: "wait", Err: err}
	}
	return cmd.ProcessState.ExitCode(), nil
}

// forwardLines emits every non-empty line of r, formatted by format. A bare '\r'
// also ends a line, since yt-dlp redraws its progress line with it. Lines longer
// than maxLineSize are emitted in maxLineSize chunks.
func forwardLines(r io.Reader, format func(string) string, emit func(string)) {
	reader := bufio.NewReaderSize(r, readBufferSize)
	line := make([]byte, 0, readBufferSize)

	flush := func() {
		if len(line) > 0 {
			emit(format(string(line)))
		}
		line = line[:0]
	}

	for {
		b, err := reader.ReadByte()
		if err != nil {
			flush()
			if err != io.EOF {
				log.Printf("Stopped reading tool output: %v", err)
				// Keep draining so the process never blocks on a full pipe
				_, _ = io.Copy(io.Discard, r)
			}
			return
		}

		switch b {
		case '\n', '\r':
			flush()
		default:
			line = append(line, b)
			if len(line) >= maxLineSize {
				flush()
			}
		}
	}
}

// generateRunID generates a unique, time-ordered run ID
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
