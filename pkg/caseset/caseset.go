// Package caseset loads benchmark test cases from YAML files.
//
// A case pairs a text and a pattern with the expected canonical result
// string. Two built-in sets ship embedded in the binary: the shared set,
// whose expectations are open, and the hidden set used for grading-style
// runs. Additional cases load from files or directories on disk.
package caseset

// Case is one (text, pattern, expected) input for the benchmark harness.
// Immutable once loaded.
type Case struct {
	// Name identifies the case in reports.
	Name string

	// Text is the haystack searched by every algorithm.
	Text string

	// Pattern is the needle. May be empty, which matches at every offset.
	Pattern string

	// Expected is the canonical offsets string the algorithms must produce.
	Expected string
}
