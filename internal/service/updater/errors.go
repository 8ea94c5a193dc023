package updater

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHomeDirectory is returned when the home variable is unset or empty.
	ErrMissingHomeDirectory = errors.New("home directory is not set")

	errNotDirectory     = errors.New("not a directory")
	errUnknownBuildTool = errors.New("unknown build tool")
)

// FilesystemError reports a failed filesystem operation on the rainy root.
type FilesystemError struct {
	// Op names the operation, e.g. "mkdir".
	Op string
	// Path is the path the operation was applied to.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
