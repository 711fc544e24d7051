package process

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/gitwatch/internal/logging"
	"github.com/renato0307/gitwatch/internal/ports"
)

// OSExecutor runs commands with os/exec
type OSExecutor struct {
	env []string
}

// Compile-time interface verification
var _ ports.CommandExecutor = (*OSExecutor)(nil)

// NewOSExecutor creates an executor. Extra env entries are appended to the
// current process environment for every command.
func NewOSExecutor(env ...string) *OSExecutor {
	return &OSExecutor{env: env}
}

// CombinedOutput runs a command and returns stdout and stderr together
func (e *OSExecutor) CombinedOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := e.command(ctx, dir, name, args...)
	logging.Logger.Debug("Running command", "dir", dir, "cmd", name, "args", strings.Join(args, " "))

	output, err := cmd.CombinedOutput()
	if err != nil {
		logging.Logger.Debug("Command failed", "cmd", name, "error", err, "output", string(output))
		return output, commandError(ctx, name, args, err)
	}
	return output, nil
}

// Output runs a command and returns stdout. Stderr is attached to the error.
func (e *OSExecutor) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := e.command(ctx, dir, name, args...)
	logging.Logger.Debug("Running command", "dir", dir, "cmd", name, "args", strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("Command failed", "cmd", name, "error", err, "stderr", stderr.String())
		return output, fmt.Errorf("%w\nOutput: %s", commandError(ctx, name, args, err), strings.TrimSpace(stderr.String()))
	}
	return output, nil
}

func (e *OSExecutor) command(ctx context.Context, dir, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	return cmd
}

// commandError prefers the context error so callers can detect deadlines
func commandError(ctx context.Context, name string, args []string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s %s: %w", name, firstArg(args), ctxErr)
	}
	return fmt.Errorf("%s %s: %w", name, firstArg(args), err)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
