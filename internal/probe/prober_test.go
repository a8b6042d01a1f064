package probe_test

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"webroulette/internal/probe"
	"webroulette/pkg/domain"
	"webroulette/pkg/serrors"
)

var testAddr = domain.AddressFromOctets(93, 184, 216, 34)

// clientTo returns the production probe client with every dial redirected to target.
func clientTo(t *testing.T, target string) *http.Client {
	t.Helper()

	c := probe.NewHTTPClient()
	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	dialer := &net.Dialer{}
	tr.DialContext = func(ctx context.Context, network, _ string) (net.Conn, error) {
		return dialer.DialContext(ctx, network, target)
	}

	return c
}

func proberFor(t *testing.T, h http.Handler) probe.Prober {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return probe.New(clientTo(t, srv.Listener.Addr().String()), nil)
}

func page(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}
}

func TestProbe_Accepted(t *testing.T) {
	var gotUA atomic.Value
	var gotHost atomic.Value
	p := proberFor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.UserAgent())
		gotHost.Store(r.Host)
		_, _ = w.Write([]byte("<html><head><title>\n  Router Admin\n</title></head></html>"))
	}))

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())

	require.Equal(t, domain.OutcomeAccepted, res.Outcome)
	require.Equal(t, "Router Admin", res.Title)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, testAddr, res.Address)
	require.Positive(t, res.Latency)
	require.Equal(t, probe.DefaultUserAgent, gotUA.Load())
	require.Equal(t, "93.184.216.34", gotHost.Load())
}

func TestProbe_BoringTitleRejected(t *testing.T) {
	p := proberFor(t, page("<title>Welcome to nginx!</title>"))

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())

	require.Equal(t, domain.OutcomeRejected, res.Outcome)
	require.Equal(t, domain.ReasonBoringTitle, res.Reason)
	require.Equal(t, "Welcome to nginx!", res.Title)
	_, ok := res.Finding()
	require.False(t, ok)
}

func TestProbe_EmptyTitleRejected(t *testing.T) {
	p := proberFor(t, page("<title>   </title>"))

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())
	require.Equal(t, domain.OutcomeRejected, res.Outcome)
	require.Equal(t, domain.ReasonBoringTitle, res.Reason)
}

func TestProbe_NoTitleAcceptedByDefault(t *testing.T) {
	p := proberFor(t, page("<html><body>nothing here</body></html>"))

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())
	require.Equal(t, domain.OutcomeAccepted, res.Outcome)
	require.Equal(t, probe.NoTitle, res.Title)

	opts := probe.DefaultOptions()
	opts.BoringTitles = domain.NewTitleSet(probe.NoTitle)
	res = p.Probe(context.Background(), testAddr, opts)
	require.Equal(t, domain.OutcomeRejected, res.Outcome)
}

func TestProbe_EmptyBody(t *testing.T) {
	p := proberFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())
	require.Equal(t, domain.OutcomeAccepted, res.Outcome)
	require.Equal(t, probe.NoTitle, res.Title)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestProbe_NonSuccessStatusRejected(t *testing.T) {
	p := proberFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("<title>Forbidden</title>"))
	}))

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())

	require.Equal(t, domain.OutcomeRejected, res.Outcome)
	require.Equal(t, domain.ReasonNonSuccessStatus, res.Reason)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestProbe_RedirectNotFollowed(t *testing.T) {
	var followed atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/landing", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/landing", func(w http.ResponseWriter, _ *http.Request) {
		followed.Store(true)
		_, _ = w.Write([]byte("<title>Landing</title>"))
	})
	p := proberFor(t, mux)

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())

	require.Equal(t, domain.OutcomeRejected, res.Outcome)
	require.Equal(t, http.StatusMovedPermanently, res.StatusCode)
	require.False(t, followed.Load(), "redirect must not be followed")
}

func TestProbe_DecodesDeclaredCharset(t *testing.T) {
	p := proberFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte("<title>Caf\xe9</title>"))
	}))

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())
	require.Equal(t, domain.OutcomeAccepted, res.Outcome)
	require.Equal(t, "Café", res.Title)
}

func TestProbe_SniffsUTF8WithoutCharset(t *testing.T) {
	p := proberFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><title>没有找到站点</title></html>"))
	}))

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())
	require.Equal(t, domain.OutcomeRejected, res.Outcome, "decoded default page is boring")
	require.Equal(t, "没有找到站点", res.Title)
}

func TestProbe_BodyLimit(t *testing.T) {
	p := proberFor(t, page(strings.Repeat(" ", 64)+"<title>too far</title>"))

	opts := probe.DefaultOptions()
	opts.MaxBodyBytes = 16
	res := p.Probe(context.Background(), testAddr, opts)

	require.Equal(t, domain.OutcomeAccepted, res.Outcome)
	require.Equal(t, probe.NoTitle, res.Title)
}

func TestProbe_TimeoutWaitingForHeaders(t *testing.T) {
	p := proberFor(t, http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))

	opts := probe.DefaultOptions()
	opts.RequestTimeout = 100 * time.Millisecond

	start := time.Now()
	res := p.Probe(context.Background(), testAddr, opts)

	require.Equal(t, domain.OutcomeFailed, res.Outcome)
	require.ErrorIs(t, res.Err, serrors.ErrTimeout)
	require.NotEmpty(t, res.Reason)
	require.Less(t, time.Since(start), time.Second)
}

func TestProbe_TimeoutReadingBody(t *testing.T) {
	p := proberFor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))

	opts := probe.DefaultOptions()
	opts.RequestTimeout = 150 * time.Millisecond
	res := p.Probe(context.Background(), testAddr, opts)

	require.Equal(t, domain.OutcomeFailed, res.Outcome)
	require.ErrorIs(t, res.Err, serrors.ErrTimeout)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestProbe_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	target := ln.Addr().String()
	require.NoError(t, ln.Close())

	p := probe.New(clientTo(t, target), nil)
	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())

	require.Equal(t, domain.OutcomeFailed, res.Outcome)
	require.ErrorIs(t, res.Err, serrors.ErrConnection)
}

func TestProbe_MalformedResponse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				// read the request line so the client is not reset mid-write
				_, _ = bufio.NewReader(c).ReadString('\n')
				_, _ = c.Write([]byte("SSH-2.0-OpenSSH_8.9\r\n\r\n"))
			}(conn)
		}
	}()

	p := probe.New(clientTo(t, ln.Addr().String()), nil)
	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())

	require.Equal(t, domain.OutcomeFailed, res.Outcome)
	require.ErrorIs(t, res.Err, serrors.ErrProtocol)
}

func TestProbe_CanceledContext(t *testing.T) {
	p := proberFor(t, page("<title>never seen</title>"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := p.Probe(ctx, testAddr, probe.DefaultOptions())

	require.Equal(t, domain.OutcomeFailed, res.Outcome)
	require.Error(t, res.Err)
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestProbe_RecordsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	srv := httptest.NewServer(page("<title>Camera</title>"))
	t.Cleanup(srv.Close)
	p := probe.New(clientTo(t, srv.Listener.Addr().String()), tp)

	res := p.Probe(context.Background(), testAddr, probe.DefaultOptions())
	require.Equal(t, domain.OutcomeAccepted, res.Outcome)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	closed := ln.Addr().String()
	require.NoError(t, ln.Close())
	res = probe.New(clientTo(t, closed), tp).Probe(context.Background(), testAddr, probe.DefaultOptions())
	require.Equal(t, domain.OutcomeFailed, res.Outcome)

	spans := rec.Ended()
	require.Len(t, spans, 2)

	require.Equal(t, "probe", spans[0].Name())
	require.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	attrs := spanAttrs(spans[0])
	require.Equal(t, "93.184.216.34", attrs["net.peer.ip"].AsString())
	require.Equal(t, "accepted", attrs["probe.outcome"].AsString())
	require.Equal(t, int64(http.StatusOK), attrs["http.status_code"].AsInt64())

	attrs = spanAttrs(spans[1])
	require.Equal(t, "failed", attrs["probe.outcome"].AsString())
	require.Equal(t, int64(0), attrs["http.status_code"].AsInt64())
}
