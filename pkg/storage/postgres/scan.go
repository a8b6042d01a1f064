package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"webroulette/pkg/domain"
	"webroulette/pkg/storage"
)

const (
	scansTable    = "scans"
	findingsTable = "findings"
)

// StoreScan inserts the report summary into the scans table.
func (p *PgSQL) StoreScan(ctx context.Context, report *domain.Report) error {
	var row PgScan
	row.FromDomain(report)

	if _, err := p.Builder.Insert(scansTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store scan into pg: %w", err)
	}

	return nil
}

// StoreFindings inserts findings with freshly generated IDs, all stamped with foundAt.
func (p *PgSQL) StoreFindings(ctx context.Context,
	scanID domain.ScanID,
	foundAt time.Time,
	findings ...domain.Finding) ([]domain.FindingRecord, error) {
	if len(findings) == 0 {
		return nil, nil
	}

	rows := make([]PgFinding, len(findings))
	for i, f := range findings {
		rows[i] = PgFinding{
			ID:      uuid.New(),
			ScanID:  uuid.UUID(scanID),
			Address: f.Address.String(),
			Title:   f.Title,
			FoundAt: foundAt,
		}
	}

	var result []PgFinding
	if err := p.Builder.Insert(findingsTable).
		Rows(rows).
		Returning(&PgFinding{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store findings into pg: %w", err)
	}

	return pgFindingsToDomain(result)
}

// RecentFindings returns findings ordered by found_at DESC, id DESC.
func (p *PgSQL) RecentFindings(ctx context.Context, filter storage.FindingFilter) ([]domain.FindingRecord, error) {
	ds := p.Builder.From(findingsTable).
		Order(goqu.I("found_at").Desc(), goqu.I("id").Desc())
	if filter.ScanID != nil {
		ds = ds.Where(goqu.I("scan_id").Eq(uuid.UUID(*filter.ScanID)))
	}
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgFinding
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch findings from pg: %w", err)
	}

	return pgFindingsToDomain(rows)
}
