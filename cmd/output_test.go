package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"webroulette/pkg/domain"
)

func TestWriteReport_Text(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	report := &domain.Report{
		ID:         domain.ScanID(uuid.MustParse("6f1c1b3e-8a43-4b53-9d7e-2f0f0a4d3a11")),
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Findings: []domain.Finding{
			{Address: domain.AddressFromOctets(1, 2, 3, 4), Title: "Router"},
		},
		Stats: domain.Stats{Issued: 10, Accepted: 1, Rejected: 4, Failed: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, report, outputText))

	out := buf.String()
	require.Contains(t, out, "http://1.2.3.4")
	require.Contains(t, out, "Router")
	require.Contains(t, out, "10 issued, 1 accepted, 4 rejected, 5 failed in 1.5s")
	require.NotContains(t, out, noFindingsMessage)
}

func TestWriteReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, &domain.Report{}, outputText))
	require.True(t, strings.HasPrefix(buf.String(), noFindingsMessage))
}

func TestWriteReport_JSON(t *testing.T) {
	report := &domain.Report{
		Findings: []domain.Finding{{Address: domain.AddressFromOctets(5, 6, 7, 8), Title: "a/b"}},
		Stats:    domain.Stats{Issued: 1, Accepted: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, report, outputJSON))

	want, err := report.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, string(want), buf.String())
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriteFindings(t *testing.T) {
	records := []domain.FindingRecord{{
		ID:      domain.FindingID(uuid.MustParse("0b4c8a2e-1111-4a5b-9c3d-7e6f5a4b3c2d")),
		ScanID:  domain.ScanID(uuid.MustParse("6f1c1b3e-8a43-4b53-9d7e-2f0f0a4d3a11")),
		Finding: domain.Finding{Address: domain.AddressFromOctets(9, 9, 9, 9), Title: "Cam"},
		FoundAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}}

	var buf bytes.Buffer
	require.NoError(t, writeFindings(&buf, records, outputJSON))
	require.JSONEq(t, `[{
		"id":"0b4c8a2e-1111-4a5b-9c3d-7e6f5a4b3c2d",
		"scanId":"6f1c1b3e-8a43-4b53-9d7e-2f0f0a4d3a11",
		"address":"9.9.9.9",
		"title":"Cam",
		"foundAt":"2024-05-01T12:00:00Z"
	}]`, buf.String())

	buf.Reset()
	require.NoError(t, writeFindings(&buf, records, outputText))
	require.Contains(t, buf.String(), "http://9.9.9.9")

	buf.Reset()
	require.NoError(t, writeFindings(&buf, nil, outputText))
	require.Contains(t, buf.String(), noFindingsMessage)
}

func TestValidOutput(t *testing.T) {
	require.NoError(t, validOutput(outputText))
	require.NoError(t, validOutput(outputJSON))
	require.Error(t, validOutput("yaml"))
}

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "x.yml"}, configArgs([]string{"scan", "-c", "x.yml", "-n", "5"}))
	require.Equal(t, []string{"-c", "y.yml"}, configArgs([]string{"--config", "y.yml"}))
	require.Equal(t, []string{"-c=z.yml"}, configArgs([]string{"scan", "--config=z.yml"}))
	require.Equal(t, []string{"-c=w.yml"}, configArgs([]string{"-c=w.yml"}))
	require.Nil(t, configArgs([]string{"scan", "-n", "5"}))
}
