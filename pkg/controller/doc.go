// Package controller contains HTTP middlewares and helper handlers used by the
// ops server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers under a prefix.
//   - Health: Reports the result of a set of named checks as JSON.
package controller
