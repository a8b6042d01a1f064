package domain

import (
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// ScanID identifies one scan run.
type ScanID uuid.UUID

// String returns the canonical UUID form.
func (id ScanID) String() string { return uuid.UUID(id).String() }

// Stats counts probe outcomes for one scan.
type Stats struct {
	// Issued is the number of probes that produced an outcome.
	Issued int
	// Accepted, Rejected and Failed partition Issued.
	Accepted int
	Rejected int
	Failed   int
}

// Report is the aggregate of a scan: the accepted findings in no particular
// order plus diagnostic counters.
type Report struct {
	ID         ScanID
	StartedAt  time.Time
	FinishedAt time.Time
	Findings   []Finding
	Stats      Stats
}

// Add folds one probe result into the report. It is not safe for concurrent use;
// the scan coordinator calls it from a single aggregating goroutine.
func (r *Report) Add(res ProbeResult) {
	r.Stats.Issued++
	switch res.Outcome {
	case OutcomeAccepted:
		r.Stats.Accepted++
		f, _ := res.Finding()
		r.Findings = append(r.Findings, f)
	case OutcomeRejected:
		r.Stats.Rejected++
	default:
		r.Stats.Failed++
	}
}

// Empty reports whether the scan accepted nothing.
func (r *Report) Empty() bool {
	return len(r.Findings) == 0
}

// Encode writes the report as a JSON object.
func (r *Report) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(r.ID.String())
	e.FieldStart("startedAt")
	e.Str(r.StartedAt.UTC().Format(time.RFC3339Nano))
	e.FieldStart("finishedAt")
	e.Str(r.FinishedAt.UTC().Format(time.RFC3339Nano))

	e.FieldStart("stats")
	e.ObjStart()
	e.FieldStart("issued")
	e.Int(r.Stats.Issued)
	e.FieldStart("accepted")
	e.Int(r.Stats.Accepted)
	e.FieldStart("rejected")
	e.Int(r.Stats.Rejected)
	e.FieldStart("failed")
	e.Int(r.Stats.Failed)
	e.ObjEnd()

	e.FieldStart("findings")
	e.ArrStart()
	for _, f := range r.Findings {
		e.ObjStart()
		e.FieldStart("address")
		e.Str(f.Address.String())
		e.FieldStart("title")
		e.Str(f.Title)
		e.FieldStart("safeTitle")
		e.Str(f.SafeTitle())
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (r *Report) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	r.Encode(&e)

	return e.Bytes(), nil
}
