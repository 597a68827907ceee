package engine

// BoyerMoore implements Boyer-Moore matching with both the bad-character and
// good-suffix shift rules. Each window is compared right-to-left; on a
// mismatch the window advances by the larger of the two rule shifts, and by
// at least one byte so forward progress is guaranteed even when the
// mismatching byte's last occurrence lies to the right of the mismatch.
type BoyerMoore struct{}

// Name returns "boyer-moore".
func (BoyerMoore) Name() string { return "boyer-moore" }

// Solve scans right-to-left within each window. A full match at shift s
// advances by good[0]; a mismatch at pattern index j advances by
// max(1, j-last[c], good[j+1]).
func (BoyerMoore) Solve(text, pattern string) (Offsets, error) {
	n, m := len(text), len(pattern)
	if m == 0 {
		return allOffsets(n), nil
	}

	// Bad-character rule: last occurrence of each byte in the pattern,
	// -1 for bytes the pattern does not contain.
	var last [256]int
	for i := range last {
		last[i] = -1
	}
	for i := 0; i < m; i++ {
		last[pattern[i]] = i
	}

	good := goodSuffixTable(pattern)

	var out Offsets
	s := 0
	for s <= n-m {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}
		if j < 0 {
			out = append(out, s)
			s += good[0]
		} else {
			shift := j - last[text[s+j]]
			if shift < 1 {
				shift = 1
			}
			if good[j+1] > shift {
				shift = good[j+1]
			}
			s += shift
		}
	}
	return out, nil
}

// goodSuffixTable builds the length-m+1 good-suffix shift table: good[j] is
// the safe shift after a mismatch at pattern index j-1 (good[0] after a full
// match). Built from the suffix-length array in two passes: first the border
// case where a prefix of the pattern matches a suffix of the matched part,
// then the exact reoccurrence case.
func goodSuffixTable(pattern string) []int {
	m := len(pattern)
	suffixes := suffixLengths(pattern)

	good := make([]int, m+1)
	for i := range good {
		good[i] = m
	}

	j := 0
	for i := m - 1; i >= -1; i-- {
		if i == -1 || suffixes[i] == i+1 {
			for ; j < m-1-i; j++ {
				if good[j] == m {
					good[j] = m - 1 - i
				}
			}
		}
	}
	for i := 0; i <= m-2; i++ {
		good[m-suffixes[i]] = m - 1 - i
	}
	return good
}

// suffixLengths computes, for each i, the length of the longest suffix of
// pattern[:i+1] that matches a suffix of the whole pattern, using the
// Z-like two-pointer recurrence over indices descending from m-2.
func suffixLengths(pattern string) []int {
	m := len(pattern)
	suf := make([]int, m)
	suf[m-1] = m

	g, f := m-1, 0
	for i := m - 2; i >= 0; i-- {
		if i > g && suf[i+m-1-f] < i-g {
			suf[i] = suf[i+m-1-f]
		} else {
			if i < g {
				g = i
			}
			f = i
			for g >= 0 && pattern[g] == pattern[g+m-1-f] {
				g--
			}
			suf[i] = f - g
		}
	}
	return suf
}
