package postgres

import (
	"time"

	"github.com/google/uuid"

	"webroulette/pkg/domain"
)

type PgScan struct {
	ID         uuid.UUID `db:"id"`
	StartedAt  time.Time `db:"started_at"`
	FinishedAt time.Time `db:"finished_at"`

	Issued   int `db:"issued"`
	Accepted int `db:"accepted"`
	Rejected int `db:"rejected"`
	Failed   int `db:"failed"`
}

func (p *PgScan) FromDomain(report *domain.Report) {
	*p = PgScan{
		ID:         uuid.UUID(report.ID),
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Issued:     report.Stats.Issued,
		Accepted:   report.Stats.Accepted,
		Rejected:   report.Stats.Rejected,
		Failed:     report.Stats.Failed,
	}
}

type PgFinding struct {
	ID      uuid.UUID `db:"id"`
	ScanID  uuid.UUID `db:"scan_id"`
	Address string    `db:"address"`
	Title   string    `db:"title"`
	FoundAt time.Time `db:"found_at"`
}

func (p *PgFinding) ToDomain() (domain.FindingRecord, error) {
	addr, err := domain.ParseAddress(p.Address)
	if err != nil {
		return domain.FindingRecord{}, err //nolint: wrapcheck
	}

	return domain.FindingRecord{
		ID:      domain.FindingID(p.ID),
		ScanID:  domain.ScanID(p.ScanID),
		Finding: domain.Finding{Address: addr, Title: p.Title},
		FoundAt: p.FoundAt,
	}, nil
}

func pgFindingsToDomain(rows []PgFinding) ([]domain.FindingRecord, error) {
	out := make([]domain.FindingRecord, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}
