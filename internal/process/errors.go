package process

import "fmt"

// ExternalCommandError reports a tool that ran and exited with a non-zero status.
type ExternalCommandError struct {
	// Tool is the logical tool name, e.g. "git".
	Tool string
	// ExitStatus is the raw exit code. -1 means the process was terminated by a signal.
	ExitStatus int
}

func (e *ExternalCommandError) Error() string {
	return fmt.Sprintf("command (%s) failed: exit status %d", e.Tool, e.ExitStatus)
}

// SpawnError reports a tool that could not be started at all.
type SpawnError struct {
	// Tool is the logical tool name, e.g. "git".
	Tool string
	// Err is the underlying cause (not found, permission denied, bad working directory).
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s: %v", e.Tool, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
