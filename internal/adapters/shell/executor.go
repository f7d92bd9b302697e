// Package shell provides the executor adapter for external build tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run starts the command, waits for it and returns everything it printed.
//
// Output is captured in memory and, when ctx carries a telemetry vertex,
// mirrored into it. Every line is also logged at debug level.
func (e *Executor) Run(ctx context.Context, c domain.Command) (domain.CommandResult, error) {
	if c.Name == "" {
		return domain.CommandResult{ExitCode: -1}, zerr.Wrap(domain.ErrToolStart, "empty command")
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // tool names come from configuration
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = e.sink(ctx, &stdout, false)
	cmd.Stderr = e.sink(ctx, &stderr, true)

	e.logger.Debug("running " + c.String())

	err := cmd.Run()
	result := domain.CommandResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		wrapped := zerr.Wrap(domain.ErrCommandFailed, c.Name+" exited with an error")
		wrapped = zerr.With(wrapped, "command", c.String())
		return result, zerr.With(wrapped, "exit_code", exitErr.ExitCode())
	}

	wrapped := zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrToolStart, err), c.Name+" could not be started")
	return result, zerr.With(wrapped, "tool", c.Name)
}

func (e *Executor) sink(ctx context.Context, buf *bytes.Buffer, isStderr bool) io.Writer {
	writers := []io.Writer{buf, &logWriter{logger: e.logger}}
	if v, ok := ports.VertexFromContext(ctx); ok {
		if isStderr {
			writers = append(writers, v.Stderr())
		} else {
			writers = append(writers, v.Stdout())
		}
	}
	return io.MultiWriter(writers...)
}

// logWriter forwards complete lines to the debug log.
type logWriter struct {
	logger  ports.Logger
	partial []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.partial = append(w.partial, p...)
	for {
		idx := bytes.IndexByte(w.partial, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimRight(string(w.partial[:idx]), "\r")
		w.partial = w.partial[idx+1:]
		if line != "" {
			w.logger.Debug(line)
		}
	}
	return len(p), nil
}
