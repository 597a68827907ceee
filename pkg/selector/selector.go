// Package selector provides heuristics that predict the fastest matching
// algorithm for a given (text, pattern) pair without running the candidates.
//
// Declining to choose is a first-class outcome: it tells the caller to run
// the full algorithm set instead, and the selection scorer excludes declined
// cases from its accuracy statistics rather than counting them as misses.
package selector

import "fmt"

// Selector predicts which registered algorithm will run fastest.
type Selector interface {
	// Choose names an algorithm for the input, or reports false to
	// decline and let the caller run everything.
	Choose(text, pattern string) (string, bool)

	// StrategyDescription returns a human-readable summary of the
	// heuristic for reports. It carries no behavioral contract.
	StrategyDescription() string
}

// Fixed always chooses the same algorithm. Useful for forcing an engine from
// the CLI and for exercising the scorer in tests.
type Fixed string

// Choose returns the fixed name.
func (f Fixed) Choose(text, pattern string) (string, bool) {
	return string(f), true
}

// StrategyDescription describes the fixed choice.
func (f Fixed) StrategyDescription() string {
	return fmt.Sprintf("always choose %q regardless of input", string(f))
}

// Decline never chooses, so every case runs the full algorithm set.
type Decline struct{}

// Choose always declines.
func (Decline) Choose(text, pattern string) (string, bool) {
	return "", false
}

// StrategyDescription describes the opt-out.
func (Decline) StrategyDescription() string {
	return "never choose; run the full algorithm set for every case"
}
