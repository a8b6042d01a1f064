// Package worker renders the findings of a finished scan.
package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"webroulette/internal/config"
	"webroulette/pkg/domain"
	"webroulette/pkg/logger"
	"webroulette/pkg/metrics"
	"webroulette/pkg/renderer"
)

// DefaultConcurrency is used when Options.Concurrency is not positive.
const DefaultConcurrency = 8

// Render results as recorded in metrics.
const (
	ResultSaved   = "saved"
	ResultBlank   = "blank"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Options configure the render dispatcher.
type Options struct {
	// Concurrency is the number of pages rendered at once.
	Concurrency int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Concurrency: cfg.Render.Concurrency}
}

// Summary counts how the findings of one dispatch ended. Every finding lands
// in exactly one field.
type Summary struct {
	Saved  []string // Saved holds the written screenshot paths in completion order.
	Blank  int
	Failed int
	// Skipped counts findings not rendered because the context was cancelled.
	Skipped int
}

// Total is the number of findings accounted for.
func (s Summary) Total() int {
	return len(s.Saved) + s.Blank + s.Failed + s.Skipped
}

// RenderDispatcher hands findings to a renderer.Renderer. A failing render is
// logged and counted and never stops the others.
type RenderDispatcher struct {
	options  Options
	renderer renderer.Renderer
	metrics  *metrics.Scan
}

// NewRenderDispatcher constructs a RenderDispatcher. m may be nil.
func NewRenderDispatcher(r renderer.Renderer, m *metrics.Scan, options Options) *RenderDispatcher {
	if options.Concurrency <= 0 {
		options.Concurrency = DefaultConcurrency
	}

	return &RenderDispatcher{options: options, renderer: r, metrics: m}
}

// Dispatch renders every finding and blocks until all renders have finished.
// Once ctx is cancelled, findings that have not started are skipped.
func (d *RenderDispatcher) Dispatch(ctx context.Context, findings []domain.Finding) Summary {
	ctx = logger.Named(ctx, "render")

	var (
		// mu protects summary and remaining.
		mu        sync.Mutex
		summary   Summary
		remaining = len(findings)
	)

	finished := func(ctx context.Context, result string, path string) {
		mu.Lock()
		defer mu.Unlock()

		switch result {
		case ResultSaved:
			summary.Saved = append(summary.Saved, path)
		case ResultBlank:
			summary.Blank++
		case ResultSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
		remaining--
		logger.Info(ctx, "render finished", zap.String("result", result), zap.Int("remaining", remaining))
	}

	var g errgroup.Group
	g.SetLimit(d.options.Concurrency)

	for _, f := range findings {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			ctx := logger.WithFields(ctx, zap.Stringer("address", f.Address))
			result, path := d.render(ctx, f)
			d.metrics.RenderFinished(ctx, result)
			finished(ctx, result, path)

			return nil
		})
	}
	_ = g.Wait()

	for range remaining {
		d.metrics.RenderFinished(ctx, ResultSkipped)
	}
	summary.Skipped += remaining
	if summary.Skipped > 0 {
		logger.Warn(ctx, "renders skipped", zap.Int("skipped", summary.Skipped), zap.Error(ctx.Err()))
	}

	return summary
}

func (d *RenderDispatcher) render(ctx context.Context, f domain.Finding) (string, string) {
	if err := ctx.Err(); err != nil {
		return ResultSkipped, ""
	}

	res, err := d.renderer.Render(ctx, renderer.NewRequest(f))
	if err != nil && ctx.Err() != nil {
		logger.Debug(ctx, "render interrupted", zap.Error(err))

		return ResultSkipped, ""
	}
	if err != nil {
		logger.Warn(ctx, "could not render page", zap.Error(err))

		return ResultFailed, ""
	}
	if res.Blank {
		return ResultBlank, ""
	}

	return ResultSaved, res.Path
}
