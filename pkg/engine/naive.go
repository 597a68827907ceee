package engine

// Naive compares the pattern byte-by-byte at every candidate offset.
// O(n*m) worst case. It is the correctness baseline the other algorithms are
// cross-checked against.
type Naive struct{}

// Name returns "naive".
func (Naive) Name() string { return "naive" }

// Solve scans every candidate offset, short-circuiting on the first mismatch.
// The loop bounds make the empty pattern fall out naturally: with m == 0 every
// offset 0..n qualifies immediately.
func (Naive) Solve(text, pattern string) (Offsets, error) {
	n, m := len(text), len(pattern)

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
