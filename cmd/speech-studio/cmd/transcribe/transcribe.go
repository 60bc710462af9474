package transcribe

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"speech-studio/cmd/speech-studio/cmd/cli"
	"speech-studio/internal/app"
	"speech-studio/internal/app/converter"
)

var (
	inputDir      string
	forceProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&inputDir, "dir", "d", "", "import every .wav file of a directory")
	Cmd.Flags().BoolVar(&forceProgress, "progress", false, "show the progress bar even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [file.wav ...]",
	Short: "Store and transcribe local WAV files",
	Long: `Store and transcribe local WAV files

Each file is copied into the recordings collection under a name derived
from its modification time, sent to the speech provider, and its
transcript saved next to it. Files are processed oldest first.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if inputDir == "" && len(args) == 0 {
			return fmt.Errorf("pass WAV files or --dir")
		}
		return nil
	},
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

		importer := converter.NewImporter(toolkit.Coordinator, toolkit.Logger, converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(forceProgress),
			Writer:  os.Stderr,
		})

		var results []converter.ImportResult
		if inputDir != "" {
			results, err = importer.ImportDir(ctx, inputDir, cfg.Storage.AllowedExtensions)
		} else {
			results, err = importer.ImportFiles(ctx, args)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(out, "FAIL %s: %v\n", r.Source, r.Err)
				continue
			}
			fmt.Fprintf(out, "OK   %s -> %s (%s)\n", r.Source, r.Recording, r.Transcript)
		}

		if failed := converter.Failed(results); len(failed) > 0 {
			return fmt.Errorf("%d of %d files failed", len(failed), len(results))
		}
		return nil
	},
}
