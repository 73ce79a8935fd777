// Package gateways implements the domain gateways on top of external tools
// and the local file system.
package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ochairo/intracompat/internal/domain/interfaces"
)

// CommandExecutor runs external tools (git, cmake) whose failure aborts the run
type CommandExecutor struct {
	defaultTimeout time.Duration
	stdout         io.Writer
	stderr         io.Writer
	logger         interfaces.Logger
}

// NewCommandExecutor creates a new command executor writing tool output to
// the process standard streams
func NewCommandExecutor(logger interfaces.Logger) *CommandExecutor {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &CommandExecutor{
		defaultTimeout: 2 * time.Hour,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		logger:         logger,
	}
}

// CommandError reports a tool that could not be started or exited non-zero
type CommandError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("command %q exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	}
	return fmt.Sprintf("command %q failed: %v", strings.Join(e.Args, " "), e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Call runs args with inherited output and returns an error unless the
// command exits with status zero
func (ce *CommandExecutor) Call(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		return errors.New("empty command")
	}

	execCtx, cancel := context.WithTimeout(ctx, ce.defaultTimeout)
	defer cancel()

	ce.logger.Debug("exec", interfaces.F("args", args))

	//nolint:gosec // G204: arguments are built from an explicit vector, no shell involved
	cmd := exec.CommandContext(execCtx, args[0], args[1:]...)
	cmd.Stdout = ce.stdout
	cmd.Stderr = ce.stderr

	return ce.classify(args, cmd.Run())
}

// Output runs args in dir and returns its standard output
func (ce *CommandExecutor) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}

	execCtx, cancel := context.WithTimeout(ctx, ce.defaultTimeout)
	defer cancel()

	//nolint:gosec // G204: arguments are built from an explicit vector, no shell involved
	cmd := exec.CommandContext(execCtx, args[0], args[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := ce.classify(args, cmd.Run()); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w\nStderr: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

func (ce *CommandExecutor) classify(args []string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Args: args, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return &CommandError{Args: args, ExitCode: -1, Err: err}
}
