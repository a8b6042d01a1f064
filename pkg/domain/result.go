package domain

import "time"

// Outcome is the terminal classification of a single probe.
type Outcome int

const (
	// OutcomeFailed means the host could not be reached or did not speak valid HTTP
	// within the request timeout.
	OutcomeFailed Outcome = iota
	// OutcomeRejected means the host answered but the page was filtered out.
	OutcomeRejected
	// OutcomeAccepted means the host answered with a success status and an
	// interesting title.
	OutcomeAccepted
)

// String returns the lowercase outcome name used in logs and metric attributes.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "failed"
	}
}

// Rejection reasons.
const (
	ReasonBoringTitle      = "boring title"
	ReasonNonSuccessStatus = "non-success status"
)

// ProbeResult is the outcome of one probe attempt. It is created by a probe,
// consumed once by the scan aggregator and then dropped.
type ProbeResult struct {
	// Outcome tells which of the fields below are meaningful.
	Outcome Outcome
	// Address is the probed host. Zero when address generation itself failed.
	Address Address
	// Title is the extracted page title. Set for accepted and boring-title results.
	Title string
	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int
	// Reason is a short human-readable explanation for rejected and failed results.
	Reason string
	// Err carries the classified error (see serrors kinds) for failed results.
	Err error
	// Latency is the wall-clock duration of the probe.
	Latency time.Duration
}

// Accepted builds an accepted result.
func Accepted(addr Address, title string) ProbeResult {
	return ProbeResult{Outcome: OutcomeAccepted, Address: addr, Title: title}
}

// Rejected builds a rejected result.
func Rejected(addr Address, reason string) ProbeResult {
	return ProbeResult{Outcome: OutcomeRejected, Address: addr, Reason: reason}
}

// Failed builds a failed result from a classified error.
func Failed(addr Address, err error) ProbeResult {
	r := ProbeResult{Outcome: OutcomeFailed, Address: addr, Err: err}
	if err != nil {
		r.Reason = err.Error()
	}

	return r
}

// Finding returns the accepted result as a Finding. ok is false for any other outcome.
func (r ProbeResult) Finding() (Finding, bool) {
	if r.Outcome != OutcomeAccepted {
		return Finding{}, false
	}

	return Finding{Address: r.Address, Title: r.Title}, true
}
