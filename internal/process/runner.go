package process

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/elpinal/rainy/internal/logger"
)

// Command describes one invocation of an external tool.
type Command struct {
	// Tool is the logical name reported in errors.
	Tool string
	// Executable is the program to spawn. Empty means Tool.
	Executable string
	// Args are passed to the program as-is.
	Args []string
	// Dir is the working directory. Empty means the current one.
	Dir string
}

// Program returns the executable to spawn.
func (c Command) Program() string {
	if c.Executable != "" {
		return c.Executable
	}

	return c.Tool
}

// Runner starts a command and waits for it to exit.
// A non-nil error means the process never ran; exitStatus is meaningless then.
type Runner interface {
	Run(ctx context.Context, cmd Command) (exitStatus int, err error)
}

// ExecRunner runs commands with os/exec, forwarding their output.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner returns a runner streaming child output to stdout and stderr.
// Nil writers discard the corresponding stream.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{
		stdout: stdout,
		stderr: stderr,
	}
}

// Run blocks until the child exits. No timeout is applied and ctx does not cancel the child.
func (r *ExecRunner) Run(_ context.Context, cmd Command) (int, error) {
	//nolint:gosec,noctx // Tools and arguments come from fixed constants and the user's own settings.
	command := exec.Command(cmd.Program(), cmd.Args...)
	command.Dir = cmd.Dir
	command.Stdout = r.stdout
	command.Stderr = r.stderr

	err := command.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, err
}

// Check runs cmd and converts its outcome into the package error types.
func Check(ctx context.Context, runner Runner, cmd Command) error {
	logger.DebugKV(ctx, "Running external command",
		"tool", cmd.Tool,
		"executable", cmd.Program(),
		"args", cmd.Args,
		"dir", cmd.Dir)

	status, err := runner.Run(ctx, cmd)
	if err != nil {
		return &SpawnError{Tool: cmd.Tool, Err: err}
	}

	if status != 0 {
		return &ExternalCommandError{Tool: cmd.Tool, ExitStatus: status}
	}

	logger.DebugKV(ctx, "External command finished", "tool", cmd.Tool)

	return nil
}
