package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/loudness-bindings/internal/config"
	"github.com/oshokin/loudness-bindings/internal/service/probe"
	"github.com/oshokin/loudness-bindings/internal/version"
)

var (
	// options collects the persistent flags shared by every subcommand.
	//nolint:gochecknoglobals // Required by Cobra CLI framework architecture.
	options probe.Options

	// rootCmd is the base command; it only groups subcommands.
	//nolint:gochecknoglobals // Required by Cobra CLI framework architecture.
	rootCmd = &cobra.Command{
		Use:   "loudness-probe",
		Short: "Query the libebur128 bindings from the shell.",
		Long: `Command-line front end for the loudness bindings.

Reports the version of the libebur128 loudness-measurement library linked into
this binary and computes two-dimensional Euclidean norms with the same code the
shared library exports to C hosts.

Settings are read from an optional YAML file; a missing default file is fine.`,
		SilenceUsage: true,
	}

	// libVersionCmd prints the libebur128 version.
	//nolint:gochecknoglobals // Required by Cobra CLI framework architecture.
	libVersionCmd = &cobra.Command{
		Use:   "lib-version",
		Short: "Print the libebur128 version.",
		Long: `Print the libebur128 version as major.minor.patch.

The library is queried on every call. When library_version is set in the
settings file, that triple is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return probe.LibraryVersion(cmd.Context(), cmd.OutOrStdout(), &options)
		},
	}

	// normCmd prints sqrt(x*x + y*y).
	//nolint:gochecknoglobals // Required by Cobra CLI framework architecture.
	normCmd = &cobra.Command{
		Use:   "norm X Y",
		Short: "Print the Euclidean norm of (X, Y).",
		Long: `Print sqrt(X*X + Y*Y).

Values are parsed as 64-bit floats; inf, -inf and nan are accepted and
propagate as in IEEE 754. Put -- before negative values so they are not read
as flags, for example: loudness-probe norm -- -3 4`,
		Args: cobra.ExactArgs(2), //nolint:mnd // X and Y.
		RunE: func(cmd *cobra.Command, args []string) error {
			return probe.Norm(cmd.Context(), cmd.OutOrStdout(), &options, args[0], args[1])
		},
	}
)

// Execute runs the loudness-probe CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&options.LogLevel, "log-level", "l", "", "log level override (debug, info, warn, error)")

	rootCmd.Version = version.Short()
	rootCmd.AddCommand(libVersionCmd, normCmd)
	version.AttachCobraVersionCommand(rootCmd)
}
