package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"speech-studio/cmd/speech-studio/cmd/cli"
	"speech-studio/internal/app"
	"speech-studio/internal/config"
)

const shutdownTimeout = 15 * time.Second

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web front-end",
	Long: `Start the web front-end

- GET  /             lists recordings and synthesized audio
- POST /upload       stores a WAV recording and its transcript
- POST /upload_text  synthesizes text to a WAV file
- GET  /uploads/:name, /tts/:name download stored files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}
		if err := applyFlags(cfg, port); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, cleanup, err := app.InitializeApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := application.Server.Start(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			application.Logger.Info("Received shutdown signal")
		case err := <-application.Server.Errors():
			if err != nil {
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := application.Server.Shutdown(shutdownCtx); err != nil {
			application.Logger.Error("Graceful shutdown failed", zap.Error(err))
			return err
		}
		return nil
	},
}

// applyFlags overrides the loaded config with command-line flags and
// validates the result again.
func applyFlags(cfg *config.Config, port string) error {
	if port == "" {
		return nil
	}
	cfg.Server.Port = port
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid --port: %w", err)
	}
	return nil
}
