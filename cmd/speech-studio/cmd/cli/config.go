// Package cli holds state shared by the subcommands.
package cli

import (
	"fmt"
	"os"

	"speech-studio/internal/config"
)

var (
	// ConfigFile is the --config flag
	ConfigFile string
	// Verbose is the --verbose flag; it reports which .env file was loaded
	Verbose bool
)

// LoadConfig reads .env, the config file and the environment
func LoadConfig() (*config.Config, error) {
	envPath, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if envPath != "" && Verbose {
		fmt.Fprintf(os.Stderr, "Loaded environment from %s\n", envPath)
	}

	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}
