package gateways

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/ochairo/intracompat/internal/domain/entities"
	"github.com/ochairo/intracompat/internal/domain/interfaces"
)

// DefaultPollInterval is how often a running test is checked for completion
const DefaultPollInterval = 10 * time.Millisecond

// ProcessRunner starts test executables and classifies their outcome
type ProcessRunner struct {
	pollInterval time.Duration
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	logger       interfaces.Logger
}

// NewProcessRunner creates a runner whose children inherit the standard streams
func NewProcessRunner(logger interfaces.Logger) *ProcessRunner {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ProcessRunner{
		pollInterval: DefaultPollInterval,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		logger:       logger,
	}
}

// Run starts cmd with env and waits until it exits or timeout elapses.
// A process still running at the deadline is killed together with its
// process group and reaped before Run returns.
func (r *ProcessRunner) Run(ctx context.Context, cmd entities.Invocation, timeout time.Duration, env map[string]string) entities.TestResult {
	r.logger.Info(fmt.Sprintf("Running: %s", cmd))

	if len(cmd) == 0 {
		r.logger.Error("empty test command")
		return entities.ResultFailed
	}
	if err := ctx.Err(); err != nil {
		r.logger.Warn("not starting test", interfaces.F("command", cmd[0]), interfaces.F("error", err))
		return entities.ResultFailed
	}

	//nolint:gosec // G204: test commands come from installed descriptors
	child := exec.Command(cmd[0], cmd[1:]...)
	child.Env = flattenEnv(env)
	child.Stdin = r.stdin
	child.Stdout = r.stdout
	child.Stderr = r.stderr
	setProcessGroup(child)

	if err := child.Start(); err != nil {
		r.logger.Error("failed to start test", interfaces.F("command", cmd[0]), interfaces.F("error", err))
		return entities.ResultFailed
	}

	done := make(chan error, 1)
	go func() {
		done <- child.Wait()
	}()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			return classifyExit(err)
		case <-ctx.Done():
			r.terminate(child, done)
			return entities.ResultFailed
		case <-ticker.C:
			if time.Now().Before(deadline) {
				continue
			}
			select {
			case err := <-done:
				return classifyExit(err)
			default:
			}
			r.terminate(child, done)
			return entities.ResultTimeout
		}
	}
}

func (r *ProcessRunner) terminate(child *exec.Cmd, done <-chan error) {
	if err := killProcessGroup(child); err != nil && !errors.Is(err, os.ErrProcessDone) {
		r.logger.Warn("failed to kill test process", interfaces.F("pid", child.Process.Pid), interfaces.F("error", err))
	}
	<-done
}

func classifyExit(err error) entities.TestResult {
	if err == nil {
		return entities.ResultSuccess
	}
	return entities.ResultFailed
}

func flattenEnv(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
