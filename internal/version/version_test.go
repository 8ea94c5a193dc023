package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return non-empty consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), Commit)
}

// TestNewCommand_PrintsFullVersion runs the subcommand against a buffer.
func TestNewCommand_PrintsFullVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Equal(t, Full(), strings.TrimSpace(out.String()))
}
