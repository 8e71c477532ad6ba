package forge

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
)

// CommandRunner runs external collaborators synchronously
type CommandRunner interface {
	// Output runs the command and returns its standard output
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
	// Stream runs the command attached to a pty and copies everything it prints to w
	Stream(ctx context.Context, dir string, w io.Writer, name string, args ...string) error
}

// ExecRunner is the os/exec backed CommandRunner
type ExecRunner struct {
	log *slog.Logger
}

// NewExecRunner creates a new exec runner
func NewExecRunner(log *slog.Logger) *ExecRunner {
	return &ExecRunner{log: log.With("component", "ExecRunner")}
}

// Output runs name with args in dir. A non-zero exit is an ExternalProcessFailedError
// carrying whatever the command printed.
func (r *ExecRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	start := time.Now()
	r.log.Debug("running command", "cmd", name, "args", args, "dir", dir)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.log.Debug("command failed", "cmd", name, "error", err, "duration", time.Since(start))
		return stdout.Bytes(), domain.ExternalProcessFailedError{
			Command: name,
			Args:    args,
			Output:  stderr.String() + stdout.String(),
			Err:     err,
		}
	}

	r.log.Debug("command completed", "cmd", name, "duration", time.Since(start))
	return stdout.Bytes(), nil
}

// Stream runs name with a pty so tools keep their colored output
func (r *ExecRunner) Stream(ctx context.Context, dir string, w io.Writer, name string, args ...string) error {
	start := time.Now()
	r.log.Debug("streaming command", "cmd", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return domain.ExternalProcessFailedError{Command: name, Args: args, Err: err}
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	// Reading the pty master returns EIO once the child exits
	if _, err := io.Copy(w, ptyFile); err != nil && !errors.Is(err, syscall.EIO) {
		r.log.Debug("pty copy interrupted", "error", err)
	}

	if err := cmd.Wait(); err != nil {
		return domain.ExternalProcessFailedError{Command: name, Args: args, Err: err}
	}

	r.log.Debug("command completed", "cmd", name, "duration", time.Since(start))
	return nil
}

// Ensure the runner implements the interface
var _ CommandRunner = (*ExecRunner)(nil)
