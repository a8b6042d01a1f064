package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/VividCortex/ewma"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"webroulette/internal/probe"
	"webroulette/pkg/addrgen"
	"webroulette/pkg/domain"
	"webroulette/pkg/logger"
	"webroulette/pkg/metrics"
)

// Deps are the collaborators of a scanner.
type Deps struct {
	Prober    probe.Prober
	Generator addrgen.Generator
	// Metrics may be nil.
	Metrics *metrics.Scan
}

// scanner is the concrete implementation of the Scanner interface. It owns no
// per-scan state, so one value can run several scans one after another or at
// the same time.
type scanner struct {
	deps Deps
}

// Ensure scanner conforms to the Scanner interface at compile time.
var _ Scanner = (*scanner)(nil)

// New creates a Scanner backed by the given collaborators.
func New(deps Deps) Scanner {
	return &scanner{deps: deps}
}

// Scan implements Scanner. Probes report to a single aggregating goroutine over
// a channel, which is the only writer of the report.
func (s *scanner) Scan(ctx context.Context, opts Options) (*domain.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("could not start scan: %w", err)
	}
	run, _ := runnerFor(opts.backend())

	report := &domain.Report{
		ID:        domain.ScanID(uuid.New()),
		StartedAt: time.Now(),
	}
	ctx = logger.WithFields(logger.Named(ctx, "scan"), zap.Stringer("scanID", report.ID))
	logger.Info(ctx, "scan started",
		zap.Int("attempts", opts.TotalAttempts),
		zap.Int("concurrency", opts.Concurrency),
		zap.String("backend", string(opts.backend())),
		zap.Float64("maxRate", opts.MaxRate))

	if opts.TotalAttempts == 0 {
		report.FinishedAt = time.Now()

		return report, nil
	}

	// no backend ever runs more probes than there are attempts
	limit := min(opts.Concurrency, opts.TotalAttempts)
	results := make(chan domain.ProbeResult, limit)
	aggregated := make(chan struct{})
	go func() {
		defer close(aggregated)
		s.aggregate(ctx, report, results, opts)
	}()

	err := run(ctx, opts.TotalAttempts, limit, newAdmitter(opts.MaxRate), func(ctx context.Context) {
		results <- s.probeOne(ctx, opts.Probe)
	})
	close(results)
	<-aggregated
	report.FinishedAt = time.Now()

	fields := []zap.Field{
		zap.Int("issued", report.Stats.Issued),
		zap.Int("accepted", report.Stats.Accepted),
		zap.Int("rejected", report.Stats.Rejected),
		zap.Int("failed", report.Stats.Failed),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	}
	if err != nil {
		logger.Warn(ctx, "scan interrupted", append(fields, zap.Error(err))...)

		return report, fmt.Errorf("scan interrupted: %w", err)
	}
	logger.Info(ctx, "scan finished", fields...)

	return report, nil
}

// probeOne draws an address and probes it. A generator failure is reported as
// a failed probe so that every attempt yields exactly one result.
func (s *scanner) probeOne(ctx context.Context, opts probe.Options) domain.ProbeResult {
	s.deps.Metrics.ProbeStarted(ctx)

	addr, err := s.deps.Generator.Next()
	if err != nil {
		res := domain.Failed(addr, fmt.Errorf("could not generate address: %w", err))
		s.deps.Metrics.ProbeFinished(ctx, res.Outcome.String(), 0)

		return res
	}

	res := s.deps.Prober.Probe(ctx, addr, opts)
	s.deps.Metrics.ProbeFinished(ctx, res.Outcome.String(), res.Latency)

	return res
}

func (s *scanner) aggregate(ctx context.Context, report *domain.Report, results <-chan domain.ProbeResult, opts Options) {
	latency := ewma.NewMovingAverage()

	for res := range results {
		report.Add(res)
		latency.Add(res.Latency.Seconds())

		if res.Outcome == domain.OutcomeAccepted {
			logger.Info(ctx, "found", zap.Stringer("address", res.Address), zap.String("title", res.Title))
		} else if logger.IsDebug(ctx) {
			logger.Debug(ctx, "probe finished",
				zap.Stringer("address", res.Address),
				zap.Stringer("outcome", res.Outcome),
				zap.String("reason", res.Reason))
		}

		if opts.ProgressEvery > 0 && report.Stats.Issued%opts.ProgressEvery == 0 {
			logger.Info(ctx, "scan progress",
				zap.Int("done", report.Stats.Issued),
				zap.Int("total", opts.TotalAttempts),
				zap.Int("found", report.Stats.Accepted),
				zap.Duration("latency", time.Duration(latency.Value()*float64(time.Second))))
		}
	}
}

// newAdmitter returns the admission check run before every probe. It stops on
// a cancelled context and, when maxRate is positive, paces admissions.
func newAdmitter(maxRate float64) func(context.Context) error {
	var limiter *rate.Limiter
	if maxRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(maxRate), 1)
	}

	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limiter == nil {
			return nil
		}

		return limiter.Wait(ctx)
	}
}
