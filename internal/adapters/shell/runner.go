// Package shell provides the subprocess adapter. Every external command the
// engine runs, whether a task's action step or a variable extraction, goes
// through it.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using sh -c. The process environment
// passes through to the child unchanged. exec.CommandContext kills the child
// when the context is canceled, so an interrupt does not leave the running
// step orphaned. There is no timeout: a hung command hangs the run.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new shell Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command line, streaming stdout and stderr line by line
// through the logger. A non-zero exit is returned with the exit code in the
// error metadata.
func (r *Runner) Run(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // user provided command
	cmd.Env = os.Environ()
	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		return commandError(err)
	}
	return nil
}

// Capture executes the command line and returns its raw standard output.
// Standard error still streams to the logger so extraction failures stay
// diagnosable.
func (r *Runner) Capture(ctx context.Context, command string) (string, error) {
	var stdout bytes.Buffer

	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // user provided command
	cmd.Env = os.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		return "", commandError(err)
	}
	return stdout.String(), nil
}

// commandError wraps a subprocess failure with its exit code. The original
// error stays in the chain so callers can recover the *exec.ExitError.
func commandError(err error) error {
	exitCode := -1 // unknown or signal
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
}

// logWriter forwards subprocess output to the logger one line at a time.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	for _, line := range strings.Split(msg, "\n") {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
