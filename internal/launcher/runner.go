// Where: cli/internal/launcher/runner.go
// What: Command runner abstraction over os/exec.
// Why: Provide a minimal, testable interface for spawning the server process.
package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for executing the server process.
// Run blocks until the child exits and returns its exit code. A non-zero
// exit code is not an error; errors are reserved for failure to start.
type CommandRunner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) (int, error)
}

// ExecRunner implements CommandRunner using os/exec with inherited stdio,
// so the child owns the terminal for the duration of the run.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
