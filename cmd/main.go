// Package main provides the CLI entrypoint for webroulette.
// It wires subcommands (scan, history, migrate), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webroulette/internal/config"
	"webroulette/pkg/logger"
	"webroulette/pkg/storage/postgres"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// loadConfig reads the YAML file at path. A missing file is not an error: the
// configuration then comes from env vars and defaults only.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("config file %q not found, using env and defaults", path)

		return config.Default()
	}

	return config.Load(path)
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "webroulette",
		Short:        "Samples random IPv4 addresses and reports the web pages that answer",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.String("c", "config.yml", "The config file path")
	// unknown flags belong to cobra subcommands
	_ = flags.Parse(configArgs(os.Args[1:]))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, logger.WithLevel(cfg.LogLevel)); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		scanCommand(cfg),
		historyCommand(cfg),
		migrateCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of args so the standard flag
// package can read it before cobra runs.
func configArgs(args []string) []string {
	for i, a := range args {
		switch {
		case (a == "-c" || a == "--config" || a == "-config") && i+1 < len(args):
			return []string{"-c", args[i+1]}
		case strings.HasPrefix(a, "-c="):
			return []string{a}
		case strings.HasPrefix(a, "--config="):
			return []string{"-c=" + strings.TrimPrefix(a, "--config=")}
		}
	}

	return nil
}
