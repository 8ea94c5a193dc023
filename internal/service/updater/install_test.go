package updater

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elpinal/rainy/internal/process"
)

// TestInstall_ArgumentShapes checks both variants against their documented command lines.
func TestInstall_ArgumentShapes(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	u := newTestUpdater(runner, env{})

	require.NoError(t, u.install(context.Background(), Stack, "/r/repo/rain-ml", "/r/bin"))
	require.NoError(t, u.install(context.Background(), Cargo, "/r/repo/rain-vm", "/r"))

	require.Equal(t, []process.Command{
		{
			Tool:       "stack",
			Executable: "stack",
			Args:       []string{"--local-bin-path", "/r/bin", "install"},
			Dir:        "/r/repo/rain-ml",
		},
		{
			Tool:       "cargo",
			Executable: "cargo",
			Args:       []string{"install", "--path", ".", "--force", "--root", "/r"},
			Dir:        "/r/repo/rain-vm",
		},
	}, runner.calls)
}

// TestInstall_Failures reports the tool name of the failing variant.
func TestInstall_Failures(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner().fail("cargo", 101, nil)
	err := newTestUpdater(runner, env{}).install(context.Background(), Cargo, "/src", "/dst")
	require.Equal(t, &process.ExternalCommandError{Tool: "cargo", ExitStatus: 101}, err)
	require.Equal(t, "command (cargo) failed: exit status 101", err.Error())

	runner = newFakeRunner().fail("stack", 0, errors.New("permission denied"))
	err = newTestUpdater(runner, env{}).install(context.Background(), Stack, "/src", "/dst")

	var spawn *process.SpawnError
	require.True(t, errors.As(err, &spawn))
	require.Equal(t, "stack", spawn.Tool)
}

// TestInstall_UnknownTool never spawns anything for a tool outside the closed set.
func TestInstall_UnknownTool(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	err := newTestUpdater(runner, env{}).install(context.Background(), BuildTool(0), "/src", "/dst")
	require.ErrorIs(t, err, errUnknownBuildTool)
	require.Empty(t, runner.calls)
}

// TestBuildTool_String names the variants after their executables.
func TestBuildTool_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "stack", Stack.String())
	require.Equal(t, "cargo", Cargo.String())
	require.Equal(t, "BuildTool(7)", BuildTool(7).String())
}
