package ports

import "context"

// CommandExecutor runs external commands
type CommandExecutor interface {
	// CombinedOutput runs a command in dir and returns stdout and stderr interleaved.
	CombinedOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)

	// Output runs a command in dir and returns stdout only.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}
