package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	seeerrors "github.com/arthur-debert/see/pkg/errors"
	"github.com/arthur-debert/see/pkg/logging"
)

// Runner executes rendered commands through a shell
type Runner struct {
	// Shell is invoked as `Shell -c command`
	Shell string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a runner that inherits the process's stdio
func NewRunner(shell string) *Runner {
	return &Runner{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes command and returns its exit code. A command that runs and
// fails is not an error; the error is for a shell that could not be
// started or was interrupted.
func (r *Runner) Run(ctx context.Context, command string) (int, error) {
	args := []string{"-c", command}
	logging.LogCommand(r.Shell, args)

	cmd := exec.CommandContext(ctx, r.Shell, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
	}

	return -1, seeerrors.Wrapf(err, seeerrors.ErrCommandExecute,
		"failed to run %q", command).WithDetail("shell", r.Shell)
}
