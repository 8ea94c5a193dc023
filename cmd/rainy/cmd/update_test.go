package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elpinal/rainy/internal/domain/toolchain"
)

// TestToolchainArg validates the positional argument before anything runs.
func TestToolchainArg(t *testing.T) {
	t.Parallel()

	cmd := newUpdateCommand()

	require.NoError(t, toolchainArg(cmd, []string{"master"}))
	require.NoError(t, toolchainArg(cmd, []string{"1.2.3"}))

	require.ErrorIs(t, toolchainArg(cmd, []string{"1.2"}), toolchain.ErrInvalidToolchain)
	require.Error(t, toolchainArg(cmd, nil))
	require.Error(t, toolchainArg(cmd, []string{"master", "1.2.3"}))
}

// TestUpdateCommand_RejectsBadToolchain fails on argument validation and never reaches RunE.
func TestUpdateCommand_RejectsBadToolchain(t *testing.T) {
	t.Parallel()

	cmd := newUpdateCommand()
	cmd.SetArgs([]string{"1.a.3"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.ErrorIs(t, err, toolchain.ErrInvalidToolchain)
	require.EqualError(t, err, "invalid toolchain: 1.a.3")
}

// TestUpdateCommand_RunEParsesToolchain reports a bad identifier even when argument validation is bypassed.
func TestUpdateCommand_RunEParsesToolchain(t *testing.T) {
	t.Parallel()

	cmd := newUpdateCommand()

	err := cmd.RunE(cmd, []string{"1.2"})
	require.ErrorIs(t, err, toolchain.ErrInvalidToolchain)
}
