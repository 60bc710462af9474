package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"speech-studio/internal/app/speech"
)

// version is overridden at build time with -ldflags "-X ..."
var version = "v0.1.0"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of speech-studio",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		fmt.Fprintf(cmd.OutOrStdout(), "providers: %v\n", speech.ListRegisteredProviders())
		return nil
	},
}
