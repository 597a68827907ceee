package engine

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// regexpTimeout bounds a single Solve call against runaway matching.
const regexpTimeout = 5 * time.Second

// Regexp finds occurrences with regexp2 by wrapping the escaped pattern in a
// zero-width lookahead, so overlapping matches are all reported. It serves as
// an independent oracle for the classical engines: it shares none of their
// preprocessing code.
type Regexp struct{}

// Name returns "regexp".
func (Regexp) Name() string { return "regexp" }

// Solve compiles `(?=pattern)` and walks the zero-width matches. RE2 mode is
// tried first; the default Perl-compatible mode is the fallback.
func (Regexp) Solve(text, pattern string) (Offsets, error) {
	n, m := len(text), len(pattern)
	if m == 0 {
		return allOffsets(n), nil
	}
	if m > n {
		return nil, nil
	}

	expr := `(?=` + regexp2.Escape(pattern) + `)`
	re, err := regexp2.Compile(expr, regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("compiling %q: %w", expr, err)
		}
	}
	re.MatchTimeout = regexpTimeout

	// regexp2 reports rune indices, but the result contract is byte
	// offsets. Ranging over the text yields the byte position of every
	// rune start, in rune order, which is exactly the translation table.
	byteOff := make([]int, 0, n+1)
	for i := range text {
		byteOff = append(byteOff, i)
	}
	byteOff = append(byteOff, n)

	var out Offsets
	match, err := re.FindStringMatch(text)
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}
	for match != nil {
		if off := byteOff[match.Index]; off+m <= n {
			out = append(out, off)
		}
		match, err = re.FindNextMatch(match)
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
	}
	return out, nil
}
