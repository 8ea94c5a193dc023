package toolchain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MasterMarker is the literal that selects the latest development state.
const MasterMarker = "master"

// versionSegments is the number of dot-separated parts in a version.
const versionSegments = 3

// ErrInvalidToolchain is matched by every parse failure.
var ErrInvalidToolchain = errors.New("invalid toolchain")

// InvalidToolchainError reports the text that failed to parse.
type InvalidToolchainError struct {
	// Text is the original input.
	Text string
}

func (e *InvalidToolchainError) Error() string {
	return fmt.Sprintf("invalid toolchain: %s", e.Text)
}

// Is lets errors.Is match ErrInvalidToolchain.
func (e *InvalidToolchainError) Is(target error) bool {
	return target == ErrInvalidToolchain
}

// Toolchain is either Master or a Version. The zero value is Master.
type Toolchain struct {
	isVersion bool
	major     uint64
	minor     uint64
	patch     uint64
}

// Master is the floating latest-development toolchain.
//
//nolint:gochecknoglobals // Immutable value, used as an enum member.
var Master = Toolchain{}

// Version returns the toolchain for major.minor.patch.
func Version(major, minor, patch uint64) Toolchain {
	return Toolchain{
		isVersion: true,
		major:     major,
		minor:     minor,
		patch:     patch,
	}
}

// Parse reads "master" or "MAJOR.MINOR.PATCH".
func Parse(s string) (Toolchain, error) {
	if s == MasterMarker {
		return Master, nil
	}

	parts := strings.Split(s, ".")
	if len(parts) != versionSegments {
		return Toolchain{}, &InvalidToolchainError{Text: s}
	}

	var numbers [versionSegments]uint64

	for i, part := range parts {
		n, err := parseSegment(part)
		if err != nil {
			return Toolchain{}, &InvalidToolchainError{Text: s}
		}

		numbers[i] = n
	}

	return Version(numbers[0], numbers[1], numbers[2]), nil
}

// parseSegment reads a non-negative decimal integer with an optional single leading '+'.
func parseSegment(part string) (uint64, error) {
	digits := strings.TrimPrefix(part, "+")
	if digits == "" || strings.HasPrefix(digits, "+") {
		return 0, strconv.ErrSyntax
	}

	return strconv.ParseUint(digits, 10, 64)
}

// IsMaster reports whether t is the master marker.
func (t Toolchain) IsMaster() bool {
	return !t.isVersion
}

// Numbers returns the version components; ok is false for Master.
func (t Toolchain) Numbers() (major, minor, patch uint64, ok bool) {
	return t.major, t.minor, t.patch, t.isVersion
}

// String renders the toolchain in the form Parse accepts.
func (t Toolchain) String() string {
	if !t.isVersion {
		return MasterMarker
	}

	return fmt.Sprintf("%d.%d.%d", t.major, t.minor, t.patch)
}

// MarshalText implements encoding.TextMarshaler.
func (t Toolchain) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Toolchain) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
