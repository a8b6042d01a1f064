package scanner

import (
	"context"

	"webroulette/pkg/domain"
)

// Scanner runs one batch of random probes and aggregates the outcome.
type Scanner interface {
	// Scan issues opts.TotalAttempts probes with at most opts.Concurrency in
	// flight. It fails before doing any work when opts are invalid. When ctx is
	// cancelled no new probes are admitted and the partial report is returned
	// together with the context error.
	Scan(ctx context.Context, opts Options) (*domain.Report, error)
}
