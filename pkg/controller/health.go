package controller

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"webroulette/pkg/logger"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Health returns a handler that runs every check with the given timeout and
// answers 200 with {"status":"ok","checks":{...}} when all pass, or 503 with
// the failing checks' errors otherwise.
func Health(timeout time.Duration, checks map[string]HealthCheck) http.Handler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		healthy := true
		results := make(map[string]error, len(checks))
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				healthy = false
				results[name] = err
				logger.Warn(ctx, "health check failed", zap.String("check", name), zap.Error(err))
			}
		}

		var e jx.Encoder
		e.ObjStart()
		e.FieldStart("status")
		if healthy {
			e.Str("ok")
		} else {
			e.Str("unavailable")
		}
		e.FieldStart("checks")
		e.ObjStart()
		for _, name := range names {
			e.FieldStart(name)
			if err, failed := results[name]; failed {
				e.Str(err.Error())
			} else {
				e.Str("ok")
			}
		}
		e.ObjEnd()
		e.ObjEnd()

		w.Header().Set("Content-Type", "application/json")
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_, _ = w.Write(e.Bytes())
	})
}
