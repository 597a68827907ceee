// Package needle benchmarks exact substring search algorithms.
//
// Needle ships interchangeable matching engines (naive scan, Knuth-Morris-
// Pratt, Rabin-Karp, Boyer-Moore, a Sunday/Raita hybrid, a regexp2-based
// engine, and an optional Hyperscan engine), a harness that times them over
// test cases under a fixed warm-up + repeated-trial protocol, and a scorer
// that grades a predictive selector against the measured ground truth.
//
// # Basic Usage
//
// Run every engine over the built-in shared cases:
//
//	lab, err := needle.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cases, err := needle.LoadSharedCases()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, report := range lab.RunAll(cases) {
//	    fastest, ok := report.Fastest()
//	    if ok {
//	        fmt.Printf("%s: %s in %v\n", report.Case.Name, fastest.Algorithm, fastest.Average)
//	    }
//	}
//
// # Scoring a Selector
//
// Grade the default heuristic's predictions:
//
//	report, err := lab.RunWithSelection(cases)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("accuracy: %.0f%%\n", report.Summary.Accuracy*100)
package needle

import (
	"fmt"

	"github.com/shearwater-labs/needle/pkg/bench"
	"github.com/shearwater-labs/needle/pkg/caseset"
	"github.com/shearwater-labs/needle/pkg/engine"
	"github.com/shearwater-labs/needle/pkg/selector"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/shearwater-labs/needle" without subpackages.
type (
	// Engine is the matching-algorithm contract.
	Engine = engine.Engine

	// Offsets is an ordered list of match start offsets.
	Offsets = engine.Offsets

	// Registry is a name-keyed catalog of algorithms.
	Registry = engine.Registry

	// Descriptor names an algorithm and its factory.
	Descriptor = engine.Descriptor

	// Case is one benchmark input.
	Case = caseset.Case

	// CaseReport holds every algorithm's measurement on one case.
	CaseReport = bench.CaseReport

	// Measurement is one (algorithm, case) timing cell.
	Measurement = bench.Measurement

	// Selector predicts the fastest algorithm for an input.
	Selector = selector.Selector

	// SelectionReport grades a selector over a case set.
	SelectionReport = bench.SelectionReport

	// Outcome grades one selector decision.
	Outcome = bench.Outcome

	// Summary aggregates selection outcomes.
	Summary = bench.Summary
)

// Re-export measurement status constants.
const (
	StatusPassed         = bench.StatusPassed
	StatusFailed         = bench.StatusFailed
	StatusError          = bench.StatusError
	StatusNotImplemented = bench.StatusNotImplemented
)

// Lab wires a registry, a selector, the harness, and the scorer into the
// core's invocation surface.
type Lab struct {
	registry *engine.Registry
	selector selector.Selector
	harness  *bench.Harness
	scorer   *bench.Scorer
}

// labConfig holds Lab configuration.
type labConfig struct {
	registry *engine.Registry
	selector selector.Selector
	trials   int
}

// Option configures a Lab.
type Option func(*labConfig)

// WithRegistry uses a custom algorithm registry instead of the default set.
func WithRegistry(reg *Registry) Option {
	return func(c *labConfig) {
		c.registry = reg
	}
}

// WithSelector sets the selector used by RunWithSelection.
// Default is the built-in heuristic.
func WithSelector(sel Selector) Option {
	return func(c *labConfig) {
		c.selector = sel
	}
}

// WithTrials sets the number of timed runs per measurement. Default is 5.
func WithTrials(n int) Option {
	return func(c *labConfig) {
		c.trials = n
	}
}

// New creates a Lab with the given options.
//
// By default, the lab:
//   - Registers every built-in algorithm
//   - Uses the built-in heuristic selector
//   - Times 5 runs per measurement after one warm-up
func New(opts ...Option) (*Lab, error) {
	config := &labConfig{trials: 5}
	for _, opt := range opts {
		opt(config)
	}

	if config.trials < 1 {
		return nil, fmt.Errorf("trials must be at least 1, got %d", config.trials)
	}
	if config.registry == nil {
		config.registry = engine.DefaultRegistry()
	}
	if config.selector == nil {
		config.selector = selector.Heuristic{}
	}

	return &Lab{
		registry: config.registry,
		selector: config.selector,
		harness:  bench.NewHarness(config.registry, bench.WithTrials(config.trials)),
		scorer:   bench.NewScorer(config.registry, bench.WithTrials(config.trials)),
	}, nil
}

// RunAll measures every registered algorithm on every case.
func (l *Lab) RunAll(cases []*Case) []*CaseReport {
	return l.harness.Run(cases)
}

// RunSubset measures only the cases at the given indices, skipping
// out-of-range ones.
func (l *Lab) RunSubset(cases []*Case, indices []int) []*CaseReport {
	return l.harness.RunSubset(cases, indices)
}

// RunWithSelection grades the lab's selector over the cases.
func (l *Lab) RunWithSelection(cases []*Case) (*SelectionReport, error) {
	return l.scorer.Score(l.selector, cases)
}

// Registry returns the lab's algorithm registry.
func (l *Lab) Registry() *Registry {
	return l.registry
}

// LoadSharedCases returns the built-in shared case set.
func LoadSharedCases() ([]*Case, error) {
	return caseset.NewLoader().LoadShared()
}

// LoadHiddenCases returns the built-in hidden case set.
func LoadHiddenCases() ([]*Case, error) {
	return caseset.NewLoader().LoadHidden()
}

// LoadAllCases returns both built-in sets, shared first.
func LoadAllCases() ([]*Case, error) {
	return caseset.NewLoader().LoadAll()
}

// LoadCasesFromFile loads cases from a YAML file.
//
// Example:
//
//	cases, err := needle.LoadCasesFromFile("/path/to/cases.yml")
func LoadCasesFromFile(path string) ([]*Case, error) {
	return caseset.NewLoader().LoadFile(path)
}
