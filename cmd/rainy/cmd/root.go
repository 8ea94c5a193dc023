package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elpinal/rainy/internal/version"
)

var (
	// configPath is the optional settings YAML file.
	configPath string
	// verbose enables debug logging.
	verbose bool

	// rootCmd is the base command; it only dispatches to subcommands.
	rootCmd = &cobra.Command{
		Use:           "rainy",
		Short:         "Keep the Rain toolchain up to date",
		Long:          "rainy clones or pulls rain-ml and rain-vm under $HOME/.rain and rebuilds them with stack and cargo.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the rainy CLI. On failure it prints the error to stderr and exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to settings file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newUpdateCommand())
	rootCmd.AddCommand(version.NewCommand())
}
