package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/go-faster/jx"

	"webroulette/pkg/domain"
)

const (
	outputText = "text"
	outputJSON = "json"

	noFindingsMessage = "No accessible websites found"
)

func validOutput(format string) error {
	if format != outputText && format != outputJSON {
		return fmt.Errorf("unknown output format %q, want %s or %s", format, outputText, outputJSON)
	}

	return nil
}

// writeReport prints the findings of a scan. Text output lists one finding per
// line followed by the counters; JSON output is the encoded report.
func writeReport(w io.Writer, report *domain.Report, format string) error {
	if format == outputJSON {
		var e jx.Encoder
		report.Encode(&e)
		if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}

		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if report.Empty() {
		_, _ = fmt.Fprintln(tw, noFindingsMessage)
	}
	for _, f := range report.Findings {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", f.Address.URL(), f.Title)
	}
	_, _ = fmt.Fprintf(tw, "\nscan %s: %d issued, %d accepted, %d rejected, %d failed in %s\n",
		report.ID, report.Stats.Issued, report.Stats.Accepted, report.Stats.Rejected, report.Stats.Failed,
		report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return nil
}

// writeFindings prints archived findings, newest first.
func writeFindings(w io.Writer, records []domain.FindingRecord, format string) error {
	if format == outputJSON {
		var e jx.Encoder
		e.ArrStart()
		for _, r := range records {
			e.ObjStart()
			e.FieldStart("id")
			e.Str(r.ID.String())
			e.FieldStart("scanId")
			e.Str(r.ScanID.String())
			e.FieldStart("address")
			e.Str(r.Address.String())
			e.FieldStart("title")
			e.Str(r.Title)
			e.FieldStart("foundAt")
			e.Str(r.FoundAt.UTC().Format(time.RFC3339Nano))
			e.ObjEnd()
		}
		e.ArrEnd()
		if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
			return fmt.Errorf("could not write findings: %w", err)
		}

		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(records) == 0 {
		_, _ = fmt.Fprintln(tw, noFindingsMessage)
	}
	for _, r := range records {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", r.FoundAt.Local().Format(time.DateTime), r.Address.URL(), r.Title)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("could not write findings: %w", err)
	}

	return nil
}
