package engine

// KMP implements Knuth-Morris-Pratt matching. A failure table over the
// pattern lets the scan fall back without ever re-reading text bytes,
// giving O(n+m) total work.
type KMP struct{}

// Name returns "kmp".
func (KMP) Name() string { return "kmp" }

// Solve scans the text with two indices. When the pattern index reaches m a
// match is recorded and the pattern index falls back via the failure table;
// on a mismatch it falls back the same way, advancing the text index only
// when the pattern index is already zero.
func (KMP) Solve(text, pattern string) (Offsets, error) {
	n, m := len(text), len(pattern)
	if m == 0 {
		return allOffsets(n), nil
	}

	lps := failureTable(pattern)

	var out Offsets
	i, j := 0, 0
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
		}
		if j == m {
			out = append(out, i-j)
			j = lps[j-1]
		} else if i < n && text[i] != pattern[j] {
			if j != 0 {
				j = lps[j-1]
			} else {
				i++
			}
		}
	}
	return out, nil
}

// failureTable computes the LPS table: lps[i] is the length of the longest
// proper prefix of pattern[:i+1] that is also a suffix of it.
func failureTable(pattern string) []int {
	m := len(pattern)
	lps := make([]int, m)

	length := 0
	i := 1
	for i < m {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
		} else if length != 0 {
			length = lps[length-1]
		} else {
			lps[i] = 0
			i++
		}
	}
	return lps
}
