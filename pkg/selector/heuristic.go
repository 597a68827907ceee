package selector

// Bounds for the Heuristic rules. The alphabet scan is capped so the
// decision stays O(min(m, alphabetScanLimit)); its cost is charged as
// analysis time by the selection scorer.
const (
	tinyTextLen       = 20
	tinyPatternLen    = 3
	alphabetScanLimit = 20
	smallAlphabetMax  = 5
)

// Heuristic is the default selector. It keys on total text length, pattern
// length, and the alphabet diversity of a bounded pattern prefix:
// tiny inputs go to the naive scan, low-diversity patterns (DNA, binary,
// highly repetitive) go to KMP, everything else to the Sunday/Raita hybrid.
type Heuristic struct{}

// Choose applies the rules above. It never declines.
func (Heuristic) Choose(text, pattern string) (string, bool) {
	if len(text) < tinyTextLen || len(pattern) <= tinyPatternLen {
		return "naive", true
	}
	if smallAlphabet(pattern) {
		return "kmp", true
	}
	return "hybrid", true
}

// StrategyDescription summarizes the rules for reports.
func (Heuristic) StrategyDescription() string {
	return "naive for tiny inputs, kmp for low-diversity patterns, hybrid otherwise"
}

// smallAlphabet reports whether the first min(m, alphabetScanLimit) bytes of
// the pattern contain fewer than smallAlphabetMax distinct values.
func smallAlphabet(pattern string) bool {
	scan := len(pattern)
	if scan > alphabetScanLimit {
		scan = alphabetScanLimit
	}

	var seen [256]bool
	unique := 0
	for i := 0; i < scan; i++ {
		if !seen[pattern[i]] {
			seen[pattern[i]] = true
			unique++
		}
	}
	return unique < smallAlphabetMax
}
