package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webroulette/internal/config"
	"webroulette/pkg/logger"
)

// migrateCommand applies the embedded goose migrations to the findings archive.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var status bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the findings archive to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if status {
				version, err := strg.SchemaVersion(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not read database version", zap.Error(err))
				}
				logger.Info(ctx, "database version", zap.Int64("version", version))

				return
			}

			version, err := strg.Migrate(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "database is migrated", zap.Int64("version", version))
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "Only print the current version")

	return cmd
}
