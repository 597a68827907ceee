// Package bench measures matching algorithms over test cases and scores
// selector predictions against the measured ground truth.
//
// The measurement protocol is fixed: per (algorithm, case) cell, one untimed
// warm-up invocation, then N timed runs whose arithmetic mean is the cell's
// cost. Everything runs single-threaded and synchronously; parallel trial
// execution would corrupt the wall-clock comparisons the scorer depends on.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/shearwater-labs/needle/pkg/caseset"
	"github.com/shearwater-labs/needle/pkg/engine"
)

// Status classifies the outcome of one (algorithm, case) cell.
type Status int

const (
	// StatusPassed: the algorithm ran and produced the expected result.
	StatusPassed Status = iota
	// StatusFailed: the algorithm ran but its output differs from expected.
	StatusFailed
	// StatusError: the algorithm faulted (returned an error or panicked).
	StatusError
	// StatusNotImplemented: the algorithm reported ErrNotImplemented.
	StatusNotImplemented
)

// String returns the report label for the status.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "pass"
	case StatusFailed:
		return "fail"
	case StatusError:
		return "error"
	case StatusNotImplemented:
		return "n/a"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Measurement is the result of one (algorithm, case) cell. Created fresh per
// cell and never mutated after its trials complete.
type Measurement struct {
	// Algorithm is the registry name of the measured engine.
	Algorithm string

	// Status classifies the cell.
	Status Status

	// Output is the canonical offsets string from the last completed run.
	Output string

	// Runs holds the duration of each completed timed run. Faulting runs
	// are excluded.
	Runs []time.Duration

	// Average is the arithmetic mean over Runs, 0 when none completed.
	Average time.Duration

	// Err carries the diagnostic message for StatusError cells.
	Err string
}

// CaseReport aggregates the measurements of every registered algorithm on
// one case, in registration order.
type CaseReport struct {
	Case         *caseset.Case
	Measurements []Measurement
}

// Fastest returns the passing measurement with the lowest average, breaking
// ties by registration order. The second return is false when no algorithm
// passed.
func (r *CaseReport) Fastest() (Measurement, bool) {
	best := -1
	for i, m := range r.Measurements {
		if m.Status != StatusPassed {
			continue
		}
		if best == -1 || m.Average < r.Measurements[best].Average {
			best = i
		}
	}
	if best == -1 {
		return Measurement{}, false
	}
	return r.Measurements[best], true
}

// Harness drives every registered algorithm over test cases under the fixed
// warm-up + repeated-trial protocol.
type Harness struct {
	registry *engine.Registry
	trials   int
}

// NewHarness creates a harness over the given registry.
func NewHarness(reg *engine.Registry, opts ...Option) *Harness {
	s := newSettings(opts...)
	return &Harness{registry: reg, trials: s.trials}
}

// Run measures every registered algorithm on every case.
func (h *Harness) Run(cases []*caseset.Case) []*CaseReport {
	reports := make([]*CaseReport, 0, len(cases))
	for _, c := range cases {
		reports = append(reports, h.RunCase(c))
	}
	return reports
}

// RunSubset measures only the cases at the given indices, in the order
// given. Out-of-range indices are skipped.
func (h *Harness) RunSubset(cases []*caseset.Case, indices []int) []*CaseReport {
	var reports []*CaseReport
	for _, idx := range indices {
		if idx < 0 || idx >= len(cases) {
			continue
		}
		reports = append(reports, h.RunCase(cases[idx]))
	}
	return reports
}

// RunCase measures every registered algorithm on one case. A failing cell
// never aborts the run: its status is recorded and the remaining algorithms
// are still measured.
func (h *Harness) RunCase(c *caseset.Case) *CaseReport {
	report := &CaseReport{Case: c}
	for _, d := range h.registry.Descriptors() {
		report.Measurements = append(report.Measurements, h.measure(d.New(), c))
	}
	return report
}

// measure runs one (algorithm, case) cell: warm-up, then timed trials.
func (h *Harness) measure(eng engine.Engine, c *caseset.Case) Measurement {
	m := Measurement{Algorithm: eng.Name()}

	// Untimed warm-up, discarded. An unimplemented or faulting engine is
	// detected here and the timed runs are skipped.
	if _, err := solve(eng, c.Text, c.Pattern); err != nil {
		if errors.Is(err, engine.ErrNotImplemented) {
			m.Status = StatusNotImplemented
		} else {
			m.Status = StatusError
			m.Err = err.Error()
		}
		return m
	}

	m.Runs = make([]time.Duration, 0, h.trials)
	var out engine.Offsets
	faulted := false
	for i := 0; i < h.trials; i++ {
		start := time.Now()
		o, err := solve(eng, c.Text, c.Pattern)
		elapsed := time.Since(start)
		if err != nil {
			// A faulting trial is recorded, not retried, and its
			// duration is excluded from the mean.
			faulted = true
			m.Status = StatusError
			m.Err = err.Error()
			continue
		}
		out = o
		m.Runs = append(m.Runs, elapsed)
	}

	if len(m.Runs) > 0 {
		var total time.Duration
		for _, d := range m.Runs {
			total += d
		}
		m.Average = total / time.Duration(len(m.Runs))
	}
	if faulted {
		return m
	}

	m.Output = out.String()
	if m.Output == c.Expected {
		m.Status = StatusPassed
	} else {
		m.Status = StatusFailed
	}
	return m
}

// solve invokes an engine with panic containment, so an out-of-bounds bug in
// one algorithm is recorded per-cell instead of taking down the harness.
func solve(eng engine.Engine, text, pattern string) (out engine.Offsets, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal fault in %s: %v", eng.Name(), r)
		}
	}()
	return eng.Solve(text, pattern)
}
