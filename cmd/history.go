package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"webroulette/internal/config"
	"webroulette/pkg/domain"
	"webroulette/pkg/storage"
)

func historyCommand(cfg *config.Config) *cobra.Command {
	var (
		limit  uint
		scanID string
		output string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists archived findings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validOutput(output); err != nil {
				return err
			}

			filter := storage.FindingFilter{Limit: limit}
			if scanID != "" {
				id, err := uuid.Parse(scanID)
				if err != nil {
					return fmt.Errorf("invalid scan id: %w", err)
				}
				sid := domain.ScanID(id)
				filter.ScanID = &sid
			}

			ctx := context.Background()
			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			records, err := strg.RecentFindings(ctx, filter)
			if err != nil {
				return fmt.Errorf("could not list findings: %w", err)
			}

			return writeFindings(cmd.OutOrStdout(), records, output)
		},
	}

	cmd.Flags().UintVarP(&limit, "limit", "l", 20, "Maximum number of findings, 0 for all")
	cmd.Flags().StringVar(&scanID, "scan", "", "Only list findings of this scan")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text or json")

	return cmd
}
