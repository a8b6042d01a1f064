package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html/charset"

	"webroulette/pkg/domain"
	"webroulette/pkg/serrors"
)

const tracerName = "webroulette/probe"

// prober is the HTTP implementation of Prober. It holds no per-probe state and is
// safe for concurrent use.
type prober struct {
	// httpClient performs the requests, see NewHTTPClient.
	httpClient *http.Client
	tracer     trace.Tracer
}

// Ensure prober conforms to the Prober interface at compile time.
var _ Prober = (*prober)(nil)

// New constructs a Prober that issues requests with httpClient and records one
// span per probe on tp. A nil tp means the global OpenTelemetry provider.
func New(httpClient *http.Client, tp trace.TracerProvider) Prober {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &prober{
		httpClient: httpClient,
		tracer:     tp.Tracer(tracerName),
	}
}

// Probe fetches http://<addr>/ once and classifies the answer:
//   - transport errors, timeouts and unreadable bodies are Failed
//   - any status outside 2xx is Rejected
//   - a 2xx page whose title is in opts.BoringTitles is Rejected
//   - anything else is Accepted with the extracted title
func (p *prober) Probe(ctx context.Context, addr domain.Address, opts Options) (res domain.ProbeResult) {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, "probe",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("net.peer.ip", addr.String())))

	defer func() {
		if r := recover(); r != nil {
			res = domain.Failed(addr, serrors.With(serrors.ErrInternal, "probe panicked: %v", r))
		}
		res.Latency = time.Since(start)
		span.SetAttributes(
			attribute.String("probe.outcome", res.Outcome.String()),
			attribute.Int("http.status_code", res.StatusCode))
		span.End()
	}()

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return p.fetch(ctx, addr, opts)
}

func (p *prober) fetch(ctx context.Context, addr domain.Address, opts Options) domain.ProbeResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.URL(), nil)
	if err != nil {
		return domain.Failed(addr, serrors.Wrap(serrors.ErrInternal, err, "could not create request"))
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.Failed(addr, classify(err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		res := domain.Rejected(addr, domain.ReasonNonSuccessStatus)
		res.StatusCode = resp.StatusCode

		return res
	}

	body, err := readBody(resp, opts.maxBodyBytes())
	if err != nil {
		res := domain.Failed(addr, classify(err))
		res.StatusCode = resp.StatusCode

		return res
	}

	title := ExtractTitle(body)

	var res domain.ProbeResult
	if opts.BoringTitles.Contains(title) {
		res = domain.Rejected(addr, domain.ReasonBoringTitle)
		res.Title = title
	} else {
		res = domain.Accepted(addr, title)
	}
	res.StatusCode = resp.StatusCode

	return res
}

// readBody reads at most limit bytes of the body and converts them to UTF-8
// using the Content-Type header, a BOM or a <meta charset> declaration. Without
// any of these, valid UTF-8 is kept and anything else is read as windows-1252.
func readBody(resp *http.Response, limit int64) ([]byte, error) {
	r, err := charset.NewReader(io.LimitReader(resp.Body, limit), resp.Header.Get("Content-Type"))
	if errors.Is(err, io.EOF) {
		// empty body
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	return b, nil
}
