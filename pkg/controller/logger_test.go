package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"webroulette/pkg/controller"
	"webroulette/pkg/logger"
)

func TestRemoteIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	require.Equal(t, "10.0.0.1", controller.RemoteIP(req))

	// forwarding headers are not trusted
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	require.Equal(t, "10.0.0.1", controller.RemoteIP(req))

	req.RemoteAddr = "not-an-addr"
	require.Equal(t, "not-an-addr", controller.RemoteIP(req))
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment))

	// echo the request ID from the context so it can be compared with the response header
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, _ := r.Context().Value(controller.RequestIDKey).(string)
		w.Header().Set("X-Echo-Request-Id", s)
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "abc-123", res.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", res.Header.Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	res = rec.Result()
	generated := res.Header.Get("X-Request-Id")
	require.NotEmpty(t, generated)
	require.Equal(t, generated, res.Header.Get("X-Echo-Request-Id"))
}
