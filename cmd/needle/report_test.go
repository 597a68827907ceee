package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/shearwater-labs/needle/pkg/bench"
	"github.com/shearwater-labs/needle/pkg/caseset"
	"github.com/stretchr/testify/assert"
)

func TestFormatMicros(t *testing.T) {
	assert.Equal(t, "0.000", formatMicros(0))
	assert.Equal(t, "1.500", formatMicros(1500*time.Nanosecond))
	assert.Equal(t, "1000.000", formatMicros(time.Millisecond))
	assert.Equal(t, "-2.000", formatMicros(-2*time.Microsecond))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long st...", truncate("long string here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestMeasurementCell(t *testing.T) {
	assert.Equal(t, "2.000", measurementCell(bench.Measurement{
		Status: bench.StatusPassed, Average: 2 * time.Microsecond}))
	assert.Equal(t, "✗ FAIL", measurementCell(bench.Measurement{Status: bench.StatusFailed}))
	assert.Equal(t, "✗ ERROR", measurementCell(bench.Measurement{Status: bench.StatusError}))
	assert.Equal(t, "n/a", measurementCell(bench.Measurement{Status: bench.StatusNotImplemented}))
}

func TestRenderCaseReports(t *testing.T) {
	reports := []*bench.CaseReport{
		{
			Case: &caseset.Case{Name: "sample", Expected: "0,2"},
			Measurements: []bench.Measurement{
				{Algorithm: "naive", Status: bench.StatusPassed, Average: 4 * time.Microsecond},
				{Algorithm: "kmp", Status: bench.StatusPassed, Average: 2 * time.Microsecond},
				{Algorithm: "hyperscan", Status: bench.StatusNotImplemented},
			},
		},
	}

	var buf bytes.Buffer
	renderCaseReports(&buf, newStyles(false), reports)

	out := buf.String()
	assert.Contains(t, out, "sample")
	assert.Contains(t, out, "naive")
	assert.Contains(t, out, "n/a")
	// kmp passed with the lowest average, so it wins the row.
	assert.Contains(t, out, "kmp")

	var summary bytes.Buffer
	renderSummaryStats(&summary, newStyles(false), reports)
	assert.Contains(t, summary.String(), "1 passed")
	assert.Contains(t, summary.String(), "1 not implemented")
}

func TestRenderCaseReports_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderCaseReports(&buf, newStyles(false), nil)
	assert.Contains(t, buf.String(), "No results")
}

func TestRenderSelectionReport_NoOutcomes(t *testing.T) {
	report := &bench.SelectionReport{
		Strategy: "never choose",
		Summary:  bench.Summary{Total: 3, Declined: 3},
	}

	var buf bytes.Buffer
	renderSelectionReport(&buf, newStyles(false), report)
	assert.Contains(t, buf.String(), "declined every case")
	assert.Contains(t, buf.String(), "never choose")
}

func TestRenderSelectionReport_WithOutcomes(t *testing.T) {
	report := &bench.SelectionReport{
		Strategy: "test strategy",
		Outcomes: []bench.Outcome{
			{
				Case:         "case-a",
				Chosen:       "kmp",
				AnalysisTime: time.Microsecond,
				ChosenTime:   2 * time.Microsecond,
				TotalTime:    3 * time.Microsecond,
				Fastest:      "kmp",
				FastestTime:  2 * time.Microsecond,
				SavedOrLost:  -time.Microsecond,
				ChoseFastest: true,
			},
		},
		Summary: bench.Summary{Total: 1, Scored: 1, Correct: 1, Accuracy: 1.0},
	}

	var buf bytes.Buffer
	renderSelectionReport(&buf, newStyles(false), report)

	out := buf.String()
	assert.Contains(t, out, "case-a")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "100%")
}
