package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/elpinal/rainy/internal/domain/toolchain"
	"github.com/elpinal/rainy/internal/service/updater"
)

// newUpdateCommand builds `rainy update <toolchain>`.
func newUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <toolchain>",
		Short: "Update a toolchain",
		Long: `Update a toolchain.

<toolchain> is "master" or a MAJOR.MINOR.PATCH version. It is currently
recorded in the log only: both repositories are always synced to their
latest state.

Source URIs can be overridden with RAINY_RAIN_ML_URI and RAINY_RAIN_VM_URI.`,
		Example: "  rainy update master\n  rainy update 0.1.0",
		Args:    toolchainArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := toolchain.Parse(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return updater.Run(ctx, &updater.Options{
				ConfigPath: configPath,
				Toolchain:  tc,
				Verbose:    verbose,
			})
		},
	}
}

// toolchainArg accepts exactly one well-formed toolchain identifier.
func toolchainArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}

	_, err := toolchain.Parse(args[0])

	return err
}
