package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Armib20/iTradeDemo/cmd/itrade/internal"
	"github.com/Armib20/iTradeDemo/internal/config"
	"github.com/Armib20/iTradeDemo/internal/observability"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "itrade",
	Short: "iTrade - product categorization against a knowledge graph",
	Long: `iTrade standardizes free-text product descriptions (for example
"STRAWBERRY DRISCOLL 8/1LB") into canonical catalog entries stored in a
Neo4j knowledge graph.

A categorization run extracts structured attributes with an LLM, normalizes
them against the known brand and product-type vocabularies, and looks for an
exact match among canonical products. Anything short of exactly one match is
surfaced for human handling.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig is called before any command runs to load configuration
func loadConfig(cmd *cobra.Command, args []string) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}
	internal.SetVerbose(flags.Verbose)

	configFile := flags.ConfigFile
	if configFile == "" {
		configFile = os.Getenv("ITRADE_CONFIG")
	}
	if configFile == "" {
		configFile = config.DefaultConfigPath()
	}

	loader := config.NewLoader(config.NewValidator())
	cfg, err = loader.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if flags.Verbose {
		level = "debug"
	}
	logger = observability.NewLogger(os.Stderr, level,
		observability.LogFormat(cfg.Logging.Format))

	return nil
}

func init() {
	RegisterGlobalFlags(rootCmd)
}
