package engine

// Hybrid combines Sunday's jump heuristic with Raita's comparison order.
// The Sunday shift table keys on the text byte immediately after the current
// window, which allows shifts of up to m+1; Raita's order probes the bytes
// most likely to mismatch (last, first, middle) before scanning the rest of
// the window. Patterns of length <= 2 degrade to the naive scan, where the
// heuristic overhead is not worth paying.
type Hybrid struct{}

// Name returns "hybrid".
func (Hybrid) Name() string { return "hybrid" }

// Solve runs the Sunday/Raita scan described above.
func (Hybrid) Solve(text, pattern string) (Offsets, error) {
	n, m := len(text), len(pattern)
	if m == 0 {
		return allOffsets(n), nil
	}
	if m <= 2 {
		var out Offsets
		for i := 0; i+m <= n; i++ {
			j := 0
			for j < m && text[i+j] == pattern[j] {
				j++
			}
			if j == m {
				out = append(out, i)
			}
		}
		return out, nil
	}

	// Sunday shift table for the byte after the window: m+1 for bytes not
	// in the pattern, m-lastIndex for bytes that are.
	var shift [256]int
	for i := range shift {
		shift[i] = m + 1
	}
	for i := 0; i < m; i++ {
		shift[pattern[i]] = m - i
	}

	first, middle, last := pattern[0], pattern[m/2], pattern[m-1]

	var out Offsets
	s := 0
	for s <= n-m {
		// Raita order: last byte, then first, then middle, then the gaps.
		if text[s+m-1] == last && text[s] == first && text[s+m/2] == middle {
			j := 1
			for j < m-1 && text[s+j] == pattern[j] {
				j++
			}
			if j >= m-1 {
				out = append(out, s)
			}
		}
		if s+m < n {
			s += shift[text[s+m]]
		} else {
			s++ // no byte after the window at the end of the text
		}
	}
	return out, nil
}
