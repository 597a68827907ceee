package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/shearwater-labs/needle/pkg/bench"
	"golang.org/x/term"
)

// Column widths for the fixed-width tables.
const (
	caseColWidth   = 32
	timeColWidth   = 16
	winnerColWidth = 16
)

// styles holds color formatters for report output.
type styles struct {
	title  *color.Color
	header *color.Color
	winner *color.Color
	fail   *color.Color
	muted  *color.Color
}

// newStyles creates color formatters for report output.
// enabled=false respects --no-color, NO_COLOR, and non-tty stdout.
func newStyles(enabled bool) *styles {
	s := &styles{
		title:  color.New(color.Bold, color.FgHiCyan),
		header: color.New(color.Bold),
		winner: color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		muted:  color.New(color.FgHiBlack),
	}

	if !enabled {
		s.title.DisableColor()
		s.header.DisableColor()
		s.winner.DisableColor()
		s.fail.DisableColor()
		s.muted.DisableColor()
	}

	return s
}

// colorsEnabled reports whether colored output should be produced.
func colorsEnabled() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// renderCaseReports prints the detailed per-case timing table: one row per
// case, one column per algorithm, winner highlighted.
func renderCaseReports(out io.Writer, s *styles, reports []*bench.CaseReport) {
	if len(reports) == 0 {
		fmt.Fprintln(out, "No results to display.")
		return
	}

	algorithms := make([]string, 0, len(reports[0].Measurements))
	for _, m := range reports[0].Measurements {
		algorithms = append(algorithms, m.Algorithm)
	}
	tableWidth := caseColWidth + timeColWidth*len(algorithms) + winnerColWidth

	rule := strings.Repeat("=", tableWidth)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, s.title.Sprint("DETAILED TEST RESULTS - average execution time per algorithm (µs)"))
	fmt.Fprintln(out, rule)

	var header strings.Builder
	header.WriteString(padRight("Test Case", caseColWidth))
	for _, name := range algorithms {
		header.WriteString(padRight(name, timeColWidth))
	}
	header.WriteString(padRight("Winner", winnerColWidth))
	fmt.Fprintln(out, s.header.Sprint(header.String()))
	fmt.Fprintln(out, strings.Repeat("-", tableWidth))

	for _, report := range reports {
		fmt.Fprint(out, padRight(truncate(report.Case.Name, caseColWidth-2), caseColWidth))

		fastest, hasWinner := report.Fastest()
		for _, m := range report.Measurements {
			cell := padRight(measurementCell(m), timeColWidth)
			switch {
			case m.Status == bench.StatusPassed && hasWinner && m.Algorithm == fastest.Algorithm:
				fmt.Fprint(out, s.winner.Sprint(cell))
			case m.Status == bench.StatusFailed || m.Status == bench.StatusError:
				fmt.Fprint(out, s.fail.Sprint(cell))
			case m.Status == bench.StatusNotImplemented:
				fmt.Fprint(out, s.muted.Sprint(cell))
			default:
				fmt.Fprint(out, cell)
			}
		}

		if hasWinner {
			fmt.Fprint(out, s.winner.Sprint(padRight(fastest.Algorithm, winnerColWidth)))
		} else {
			fmt.Fprint(out, padRight("none", winnerColWidth))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, rule)
}

// measurementCell renders one table cell: the average in µs for passing
// cells, a status marker otherwise.
func measurementCell(m bench.Measurement) string {
	switch m.Status {
	case bench.StatusPassed:
		return formatMicros(m.Average)
	case bench.StatusFailed:
		return "✗ FAIL"
	case bench.StatusError:
		return "✗ ERROR"
	case bench.StatusNotImplemented:
		return "n/a"
	default:
		return m.Status.String()
	}
}

// renderSummaryStats prints per-algorithm pass/fail counts and timing spread
// over the passing cells.
func renderSummaryStats(out io.Writer, s *styles, reports []*bench.CaseReport) {
	if len(reports) == 0 {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, s.header.Sprint("SUMMARY STATISTICS:"))

	for _, first := range reports[0].Measurements {
		name := first.Algorithm
		var passed, failed, notImplemented int
		var total, min, max time.Duration

		for _, report := range reports {
			for _, m := range report.Measurements {
				if m.Algorithm != name {
					continue
				}
				switch m.Status {
				case bench.StatusPassed:
					passed++
					total += m.Average
					if min == 0 || m.Average < min {
						min = m.Average
					}
					if m.Average > max {
						max = m.Average
					}
				case bench.StatusNotImplemented:
					notImplemented++
				default:
					failed++
				}
			}
		}

		line := fmt.Sprintf("%-14s %d passed, %d failed", name, passed, failed)
		if notImplemented > 0 {
			line += fmt.Sprintf(", %d not implemented", notImplemented)
		}
		if passed > 0 {
			avg := total / time.Duration(passed)
			line += fmt.Sprintf(" | avg %sµs min %sµs max %sµs",
				formatMicros(avg), formatMicros(min), formatMicros(max))
		}
		fmt.Fprintln(out, line)
	}
}

// renderSelectionReport prints the selector comparison: per-case decisions
// graded against the measured fastest algorithm, then aggregate accuracy and
// the saved/lost verdict.
func renderSelectionReport(out io.Writer, s *styles, report *bench.SelectionReport) {
	const tableWidth = 118

	rule := strings.Repeat("=", tableWidth)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, s.title.Sprint("SELECTION PERFORMANCE COMPARISON"))
	fmt.Fprintf(out, "Strategy: %s\n", report.Strategy)
	fmt.Fprintln(out, rule)

	if len(report.Outcomes) == 0 {
		fmt.Fprintln(out, "The selector declined every case; no choices to score.")
		fmt.Fprintln(out, rule)
		return
	}

	fmt.Fprintln(out, s.header.Sprintf("%-26s %-13s %12s %12s %12s %-13s %14s",
		"Test Case", "Chosen", "Analysis(µs)", "Exec(µs)", "Total(µs)", "Fastest", "Diff(µs)"))
	fmt.Fprintln(out, strings.Repeat("-", tableWidth))

	for _, o := range report.Outcomes {
		diff := fmt.Sprintf("%s %s", choiceMark(o.ChoseFastest), formatMicros(o.SavedOrLost))
		line := fmt.Sprintf("%-26s %-13s %12s %12s %12s %-13s %14s",
			truncate(o.Case, 24),
			truncate(o.Chosen, 12),
			formatMicros(o.AnalysisTime),
			formatMicros(o.ChosenTime),
			formatMicros(o.TotalTime),
			truncate(o.Fastest, 12),
			diff)
		if o.ChoseFastest {
			fmt.Fprintln(out, s.winner.Sprint(line))
		} else {
			fmt.Fprintln(out, line)
		}
	}

	fmt.Fprintln(out, rule)

	sum := report.Summary
	fmt.Fprintf(out, "Cases: %d total, %d scored, %d declined, %d unscorable\n",
		sum.Total, sum.Scored, sum.Declined, sum.Unscorable)
	fmt.Fprintf(out, "Accuracy: %d/%d (%.0f%%) chose the fastest algorithm\n",
		sum.Correct, sum.Scored, sum.Accuracy*100)

	verdict := fmt.Sprintf("Net time vs fastest: %sµs total, %sµs per case",
		formatMicros(sum.TotalSaved), formatMicros(sum.MeanSaved))
	if sum.TotalSaved >= 0 {
		fmt.Fprintln(out, s.winner.Sprint(verdict+" (saved)"))
	} else {
		fmt.Fprintln(out, s.fail.Sprint(verdict+" (lost)"))
	}
	fmt.Fprintln(out, rule)
}

// choiceMark marks a graded choice for the comparison table.
func choiceMark(correct bool) string {
	if correct {
		return "✓"
	}
	return "✗"
}

// formatMicros renders a duration as microseconds with fixed precision.
func formatMicros(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Nanoseconds())/1000.0)
}

// truncate shortens s to at most n characters, marking the cut.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
