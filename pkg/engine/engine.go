// Package engine provides exact substring search over byte strings using
// interchangeable matching algorithms.
//
// Every algorithm implements the Engine contract: Solve returns the strictly
// increasing start offsets of all occurrences of pattern in text, including
// overlapping ones. Two degenerate inputs have fixed semantics shared by all
// algorithms: an empty pattern matches at every offset 0 through len(text)
// inclusive, and a pattern longer than the text matches nowhere.
//
// The canonical string form of an offset list (comma-joined decimals, empty
// string for no matches) is the cross-algorithm equality contract used by the
// benchmark harness: two algorithms agree on an input iff their canonical
// strings are byte-identical.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotImplemented marks an algorithm that is intentionally unfinished or
// unavailable in the current build. The benchmark harness records it as a
// distinct status instead of a failure.
var ErrNotImplemented = errors.New("algorithm not implemented")

// ErrUnknownAlgorithm is returned by registry lookups for unregistered names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Engine is the common contract for all matching algorithms.
// Implementations are stateless: Solve is deterministic, side-effect-free,
// and safe to call repeatedly on the same instance.
type Engine interface {
	// Name returns the registry identifier of the algorithm.
	Name() string

	// Solve returns the start offsets of every occurrence of pattern in
	// text, in strictly increasing order.
	Solve(text, pattern string) (Offsets, error)
}

// Offsets is an ordered list of match start offsets.
type Offsets []int

// String renders the canonical form: comma-joined decimals with no trailing
// separator, or the empty string when there are no matches.
func (o Offsets) String() string {
	if len(o) == 0 {
		return ""
	}
	var b strings.Builder
	for i, off := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(off))
	}
	return b.String()
}

// ParseOffsets parses a canonical offsets string. It rejects anything that
// String would not have produced: non-decimal tokens, negative offsets,
// non-canonical renderings like "+1" or "01", and offsets that are not
// strictly increasing.
func ParseOffsets(s string) (Offsets, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make(Offsets, 0, len(parts))
	prev := -1
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", p, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative offset %d", n)
		}
		if strconv.Itoa(n) != p {
			return nil, fmt.Errorf("non-canonical offset %q", p)
		}
		if n <= prev {
			return nil, fmt.Errorf("offsets not strictly increasing at %d", n)
		}
		out = append(out, n)
		prev = n
	}
	return out, nil
}

// allOffsets returns 0..n inclusive, the defined result for an empty pattern.
func allOffsets(n int) Offsets {
	out := make(Offsets, n+1)
	for i := range out {
		out[i] = i
	}
	return out
}
