package storage

import (
	"context"
	"fmt"

	"webroulette/pkg/domain"
)

// ArchiveReport stores the scan summary and all of its findings in one
// transaction and returns the stored finding records.
func ArchiveReport(ctx context.Context, s Storage, report *domain.Report) ([]domain.FindingRecord, error) {
	var records []domain.FindingRecord
	if err := s.WithTx(ctx, func(tx AllStorage) error {
		if err := tx.StoreScan(ctx, report); err != nil {
			return fmt.Errorf("could not store scan: %w", err)
		}

		var err error
		records, err = tx.StoreFindings(ctx, report.ID, report.FinishedAt, report.Findings...)
		if err != nil {
			return fmt.Errorf("could not store findings: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not archive report: %w", err)
	}

	return records, nil
}
