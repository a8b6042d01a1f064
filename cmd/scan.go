package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"webroulette/internal/api"
	"webroulette/internal/config"
	"webroulette/internal/probe"
	"webroulette/internal/scanner"
	"webroulette/internal/worker"
	"webroulette/pkg/addrgen"
	"webroulette/pkg/controller"
	"webroulette/pkg/domain"
	"webroulette/pkg/logger"
	"webroulette/pkg/metrics"
	"webroulette/pkg/renderer/headless"
	"webroulette/pkg/storage"
)

func setupServer(ctx context.Context, cfg *config.Config, checks map[string]controller.HealthCheck) func(ctx context.Context) {
	server := api.NewServer(api.Deps{
		Gatherer: prometheus.DefaultGatherer,
		Checks:   checks,
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting ops server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

type scanFlags struct {
	output      string
	render      bool
	attempts    int
	concurrency int
	backend     string
}

func scanCommand(cfg *config.Config) *cobra.Command {
	var flags scanFlags
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Probes random IPv4 addresses and prints the pages that answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validOutput(flags.output); err != nil {
				return err
			}
			if cmd.Flags().Changed("attempts") {
				cfg.Scan.TotalAttempts = flags.attempts
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Scan.Concurrency = flags.concurrency
			}
			if cmd.Flags().Changed("backend") {
				cfg.Scan.Backend = flags.backend
			}
			if cmd.Flags().Changed("render") {
				cfg.Render.Enabled = flags.render
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runScan(ctx, cfg, cmd.OutOrStdout(), flags.output)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", outputText, "Output format: text or json")
	cmd.Flags().BoolVar(&flags.render, "render", false, "Capture screenshots of accepted pages")
	cmd.Flags().IntVarP(&flags.attempts, "attempts", "n", 0, "Number of addresses to probe")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 0, "Maximum probes in flight")
	cmd.Flags().StringVar(&flags.backend, "backend", "", "Scheduling backend: workers, semaphore or errgroup")

	return cmd
}

// runScan performs one scan and everything hanging off it: the ops server,
// printing, screenshots and archiving. An interrupted scan still prints and
// archives what it found; screenshots are skipped.
func runScan(ctx context.Context, cfg *config.Config, out io.Writer, format string) error {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("could not create meter provider: %w", err)
	}
	defer func() {
		_ = mp.Shutdown(context.WithoutCancel(ctx))
	}()
	scanMetrics, err := metrics.NewScan(mp)
	if err != nil {
		return fmt.Errorf("could not create metrics: %w", err)
	}

	var strg storage.Storage
	checks := map[string]controller.HealthCheck{}
	if cfg.Database.Enabled {
		pg, closeStrg := getPostgres(ctx, cfg)
		defer closeStrg()
		strg = pg
		checks["database"] = pg.Ping
	}

	if cfg.HTTP.Enabled {
		stopServer := setupServer(ctx, cfg, checks)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopServer(shutdownCtx)
		}()
	}

	// probe spans are only worth recording when they can be read in the debug log
	var tp trace.TracerProvider
	if logger.IsDebug(ctx) {
		sdkTP := metrics.NewTracerProvider(ctx)
		defer func() {
			_ = sdkTP.Shutdown(context.WithoutCancel(ctx))
		}()
		tp = sdkTP
	}

	s := scanner.New(scanner.Deps{
		Prober:    probe.New(probe.NewHTTPClient(), tp),
		Generator: addrgen.New(addrgen.Options{}),
		Metrics:   scanMetrics,
	})
	report, scanErr := s.Scan(ctx, scanner.NewOptions(cfg))
	if report == nil {
		return fmt.Errorf("could not scan: %w", scanErr)
	}
	if scanErr != nil {
		logger.Warn(ctx, "scan stopped early, reporting partial results", zap.Error(scanErr))
	}

	if err := writeReport(out, report, format); err != nil {
		return err
	}

	if cfg.Render.Enabled && !report.Empty() {
		renderFindings(ctx, cfg, scanMetrics, report.Findings)
	}

	if strg != nil {
		// partial results are archived even after an interrupt
		records, err := storage.ArchiveReport(context.WithoutCancel(ctx), strg, report)
		if err != nil {
			return fmt.Errorf("could not archive report: %w", err)
		}
		logger.Info(ctx, "report archived", zap.Stringer("scanID", report.ID), zap.Int("findings", len(records)))
	}

	return nil
}

func renderFindings(ctx context.Context, cfg *config.Config, m *metrics.Scan, findings []domain.Finding) {
	r, err := headless.New(ctx, headless.NewOptions(cfg))
	if err != nil {
		logger.Error(ctx, "could not start renderer, skipping screenshots", zap.Error(err))

		return
	}
	defer func() {
		if err := r.Close(); err != nil {
			logger.Warn(ctx, "could not close renderer", zap.Error(err))
		}
	}()

	summary := worker.NewRenderDispatcher(r, m, worker.NewOptions(cfg)).Dispatch(ctx, findings)
	logger.Info(ctx, "screenshots finished",
		zap.Int("saved", len(summary.Saved)),
		zap.Int("blank", summary.Blank),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.String("dir", cfg.Render.OutputDir))
}
