// Package metrics holds the OpenTelemetry instruments recorded by the scanner
// and the Prometheus-backed meter provider that exports them.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "webroulette/scanner"

// NewMeterProvider returns a meter provider whose readings are exposed through
// the given Prometheus registerer. Pass prometheus.DefaultRegisterer to have
// them served by promhttp.Handler().
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Scan groups the instruments recorded while scanning. A nil *Scan is valid and
// records nothing.
type Scan struct {
	probes   metric.Int64Counter
	latency  metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
	renders  metric.Int64Counter
}

// NewScan creates the scan instruments on the given provider.
func NewScan(mp metric.MeterProvider) (*Scan, error) {
	m := mp.Meter(meterName)

	probes, err := m.Int64Counter("probes_total",
		metric.WithDescription("Finished probes by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create probes counter: %w", err)
	}
	latency, err := m.Float64Histogram("probe_duration_seconds",
		metric.WithDescription("Wall-clock duration of a probe."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}
	inFlight, err := m.Int64UpDownCounter("probes_in_flight",
		metric.WithDescription("Probes currently waiting on the network."))
	if err != nil {
		return nil, fmt.Errorf("could not create in-flight gauge: %w", err)
	}
	renders, err := m.Int64Counter("renders_total",
		metric.WithDescription("Finished screenshot renders by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create renders counter: %w", err)
	}

	return &Scan{probes: probes, latency: latency, inFlight: inFlight, renders: renders}, nil
}

// ProbeStarted marks one more probe in flight.
func (s *Scan) ProbeStarted(ctx context.Context) {
	if s == nil {
		return
	}
	s.inFlight.Add(ctx, 1)
}

// ProbeFinished records a finished probe.
func (s *Scan) ProbeFinished(ctx context.Context, outcome string, d time.Duration) {
	if s == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	s.inFlight.Add(ctx, -1)
	s.probes.Add(ctx, 1, attrs)
	s.latency.Record(ctx, d.Seconds(), attrs)
}

// RenderFinished records a finished render; result is "saved", "blank" or "failed".
func (s *Scan) RenderFinished(ctx context.Context, result string) {
	if s == nil {
		return
	}
	s.renders.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
