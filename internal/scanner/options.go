package scanner

import (
	"webroulette/internal/config"
	"webroulette/internal/probe"
	"webroulette/pkg/domain"
	"webroulette/pkg/serrors"
)

// Backend names a scheduling strategy for probes.
type Backend string

const (
	// BackendWorkers runs a fixed pool of Concurrency goroutines draining a job channel.
	BackendWorkers Backend = "workers"
	// BackendSemaphore starts a goroutine per probe gated by a weighted semaphore.
	BackendSemaphore Backend = "semaphore"
	// BackendErrgroup starts probes through an errgroup with a concurrency limit.
	BackendErrgroup Backend = "errgroup"
)

// Backends lists every supported backend.
func Backends() []Backend {
	return []Backend{BackendWorkers, BackendSemaphore, BackendErrgroup}
}

// Options configure a single scan. These settings are typically derived from
// application configuration.
type Options struct {
	// TotalAttempts is the number of probes to issue.
	TotalAttempts int
	// Concurrency is the maximum number of probes in flight.
	Concurrency int
	// Backend selects the scheduling strategy. Empty means BackendWorkers.
	Backend Backend
	// MaxRate caps how many probes are admitted per second. Zero disables the cap.
	MaxRate float64
	// ProgressEvery logs a progress line after this many completed probes. Zero disables it.
	ProgressEvery int
	// Probe is passed unchanged to every probe.
	Probe probe.Options
}

// NewOptions constructs an Options value from the provided application config.
// A configured boring title list replaces the built-in one; extra titles are
// always added on top.
func NewOptions(cfg *config.Config) Options {
	boring := probe.DefaultBoringTitles()
	if len(cfg.Scan.BoringTitles) > 0 {
		boring = domain.NewTitleSet(cfg.Scan.BoringTitles...)
	}
	for _, t := range cfg.Scan.ExtraBoringTitles {
		boring[t] = struct{}{}
	}

	return Options{
		TotalAttempts: cfg.Scan.TotalAttempts,
		Concurrency:   cfg.Scan.Concurrency,
		Backend:       Backend(cfg.Scan.Backend),
		MaxRate:       cfg.Scan.MaxRate,
		ProgressEvery: cfg.Scan.ProgressEvery,
		Probe: probe.Options{
			RequestTimeout: cfg.Scan.RequestTimeout,
			UserAgent:      cfg.Scan.UserAgent,
			BoringTitles:   boring,
			MaxBodyBytes:   cfg.Scan.MaxBodyBytes,
		},
	}
}

// Validate returns an ErrInvalidConfig error for the first invalid setting.
func (o Options) Validate() error {
	if o.TotalAttempts < 0 {
		return serrors.With(serrors.ErrInvalidConfig, "total attempts must not be negative, got %d", o.TotalAttempts)
	}
	if o.Concurrency <= 0 {
		return serrors.With(serrors.ErrInvalidConfig, "concurrency must be positive, got %d", o.Concurrency)
	}
	if _, ok := runnerFor(o.backend()); !ok {
		return serrors.With(serrors.ErrInvalidConfig, "unknown backend %q", o.Backend)
	}
	if o.MaxRate < 0 {
		return serrors.With(serrors.ErrInvalidConfig, "max rate must not be negative, got %g", o.MaxRate)
	}
	if o.ProgressEvery < 0 {
		return serrors.With(serrors.ErrInvalidConfig, "progress interval must not be negative, got %d", o.ProgressEvery)
	}
	if err := o.Probe.Validate(); err != nil {
		return err
	}

	return nil
}

func (o Options) backend() Backend {
	if o.Backend == "" {
		return BackendWorkers
	}

	return o.Backend
}
