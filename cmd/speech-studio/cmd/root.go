package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"speech-studio/cmd/speech-studio/cmd/cli"
	"speech-studio/cmd/speech-studio/cmd/list"
	"speech-studio/cmd/speech-studio/cmd/serve"
	"speech-studio/cmd/speech-studio/cmd/synthesize"
	"speech-studio/cmd/speech-studio/cmd/transcribe"
	"speech-studio/cmd/speech-studio/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speech-studio",
	Short: "Record, transcribe and synthesize speech through cloud speech services",
	Long: `speech-studio serves a small web page for uploading WAV recordings and
submitting text. Recordings are transcribed and text is synthesized by a
cloud speech provider (Google Cloud or OpenAI).

- serve starts the web front-end
- transcribe and synthesize run the same pipelines from the command line
- list prints the stored recordings and synthesized audio`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(synthesize.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&cli.ConfigFile, "config", "c", "", "YAML config file (default $CONFIG_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "V", false, "verbose output")
}
