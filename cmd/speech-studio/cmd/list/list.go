package list

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"speech-studio/cmd/speech-studio/cmd/cli"
	"speech-studio/internal/api/v1/dto"
	"speech-studio/internal/api/v1/services"
	"speech-studio/internal/app"
	"speech-studio/internal/app/model"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:       "list [recordings|tts]",
	Short:     "List stored recordings and synthesized audio, most recent first",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"recordings", "tts"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		store, err := app.InitializeStore(ctx, cfg)
		if err != nil {
			return err
		}
		library := services.NewLibraryService(store)

		which := ""
		if len(args) == 1 {
			which = args[0]
		}

		out := cmd.OutOrStdout()
		if which == "" || which == "recordings" {
			resp, err := library.ListRecordings(ctx)
			if err != nil {
				return err
			}
			printFiles(out, model.Recordings, resp)
		}
		if which == "" || which == "tts" {
			resp, err := library.ListSynthesized(ctx)
			if err != nil {
				return err
			}
			printFiles(out, model.Synthesized, resp)
		}
		return nil
	},
}

func printFiles(out io.Writer, c model.Collection, resp *dto.FileListResponse) {
	fmt.Fprintf(out, "%s (%d)\n", c, resp.Total)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, item := range resp.Items {
		transcript := "-"
		if item.TranscriptURL != "" {
			transcript = "transcript"
		}
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\n", item.Name, item.Size, item.ModifiedAt.Format("2006-01-02 15:04:05"), transcript)
	}
	w.Flush()
}
