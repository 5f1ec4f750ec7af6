// Package main provides the CLI entrypoint for the card validator.
// It wires subcommands (check, replay, form), loads configuration, and initializes logging.
package main

import (
	"cardvalidator/internal/config"
	"cardvalidator/pkg/logger"
	"cardvalidator/pkg/metrics"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getMetrics creates the validation collectors on a fresh registry and returns
// them along with a function that exports the registry to the configured file.
func getMetrics(ctx context.Context, cfg *config.Config) (*metrics.Validation, func()) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewValidation(reg, cfg.Metrics.Namespace)
	if err != nil {
		logger.Fatal(ctx, "could not create metrics", zap.Error(err))
	}

	return m, func() {
		if cfg.Metrics.File == "" {
			return
		}
		logger.Info(ctx, "writing metrics...", zap.String("file", cfg.Metrics.File))
		if err := prometheus.WriteToTextfile(cfg.Metrics.File, reg); err != nil {
			logger.Warn(ctx, "could not write metrics", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "cardvalidator",
		Short: "Validates payment card numbers and CVC codes",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(nopWriter{})
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment, logger.WithLevel(cfg.LogLevel))

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		checkCommand(cfg),
		replayCommand(cfg),
		formCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so the standard flag
// package does not choke on subcommand flags it does not know.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case (arg == "-c" || arg == "--config") && i+1 < len(args):
			return []string{"-c", args[i+1]}
		case strings.HasPrefix(arg, "-c="):
			return []string{arg}
		case strings.HasPrefix(arg, "--config="):
			return []string{"-c=" + strings.TrimPrefix(arg, "--config=")}
		}
	}

	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
