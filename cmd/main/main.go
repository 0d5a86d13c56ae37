package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries the state shared by every command: the loaded configuration and
// the logger built from it.
type app struct {
	configPath string
	logLevel   string
	config     *Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "charkov",
		Short:        "Train a character-level Markov model and generate text from it",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "./config.json", "Path to the JSON config file (created with defaults if missing)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(a),
		newIngestCmd(a),
		newCorpusCmd(a),
		newStatsCmd(a),
		newDumpCmd(a),
	)
	return root
}

// load reads the config file and sets up logging on stderr, keeping stdout
// free for generated text.
func (a *app) load(cmd *cobra.Command) error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.logLevel != "" {
		config.LogLevel = a.logLevel
	}
	if err = config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.config = config
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
