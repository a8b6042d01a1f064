package metrics

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"webroulette/pkg/logger"
)

// NewTracerProvider returns a tracer provider that writes every finished span
// as a debug entry on the logger carried by ctx. It is meant for debug runs;
// callers should Shutdown it to flush.
func NewTracerProvider(ctx context.Context) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(&logExporter{log: logger.Get(ctx)}),
	)
}

type logExporter struct {
	log *zap.Logger
}

var _ sdktrace.SpanExporter = (*logExporter)(nil)

func (e *logExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		fields := make([]zap.Field, 0, len(s.Attributes())+2)
		fields = append(fields,
			zap.String("span", s.Name()),
			zap.Duration("duration", s.EndTime().Sub(s.StartTime())))
		for _, kv := range s.Attributes() {
			fields = append(fields, zap.Any(string(kv.Key), kv.Value.AsInterface()))
		}
		e.log.Debug("span finished", fields...)
	}

	return nil
}

func (e *logExporter) Shutdown(context.Context) error {
	return nil
}
