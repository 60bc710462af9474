package synthesize

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"speech-studio/cmd/speech-studio/cmd/cli"
	"speech-studio/internal/app"
)

// Cmd represents the synthesize command
var Cmd = &cobra.Command{
	Use:   `synthesize "<text>"`,
	Short: "Convert text to a WAV file in the synthesized collection",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		toolkit, cleanup, err := app.InitializeToolkit(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := toolkit.Coordinator.Synthesize(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if result.Skipped {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to synthesize")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Name)
		return nil
	},
}
