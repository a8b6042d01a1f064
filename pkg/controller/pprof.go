package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under prefix, e.g. "/debug/pprof/". Mount it at the same prefix.
func PprofMux(prefix string) *http.ServeMux {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	mux := http.NewServeMux()

	// Index also serves the named profiles (heap, goroutine, allocs, ...)
	// when prefix is /debug/pprof/.
	mux.HandleFunc(prefix, pprof.Index)
	mux.HandleFunc(prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"trace", pprof.Trace)
	for _, name := range []string{"goroutine", "heap", "allocs", "block", "mutex", "threadcreate"} {
		mux.Handle(prefix+name, pprof.Handler(name))
	}

	return mux
}
