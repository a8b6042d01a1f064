// Package probe fetches the root page of a single address over plain HTTP and
// classifies what came back.
package probe

import (
	"context"

	"webroulette/pkg/domain"
)

// Prober performs one probe. Implementations never return an error: every
// failure mode is reported as a domain.OutcomeFailed result.
//
//go:generate mockgen -package mockprobe -source=interface.go -destination=mock/mockprobe.go *
type Prober interface {
	Probe(ctx context.Context, addr domain.Address, opts Options) domain.ProbeResult
}
