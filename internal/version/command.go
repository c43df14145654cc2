package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/loudness-bindings/internal/loudness"
)

// AttachCobraVersionCommand attaches a `version` subcommand to root that
// prints build metadata and the linked libebur128 version.
func AttachCobraVersionCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print the build version, commit hash and build timestamp injected from Git at build time, followed by the libebur128 release linked into the binary.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Full(loudness.Linked()))
		},
	})
}
