package engine

import (
	"math/rand"
	"strings"
	"testing"
)

// Benchmarks comparing the engines across workload shapes:
// - english: diverse alphabet, pattern absent until the end
// - dna: 4-letter alphabet, heavy partial overlap
// - periodic: worst case for the naive scan, best case for KMP

func benchText(alphabet string, size int) string {
	rng := rand.New(rand.NewSource(42))
	var b strings.Builder
	b.Grow(size)
	for i := 0; i < size; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

func BenchmarkEngines(b *testing.B) {
	workloads := []struct {
		name    string
		text    string
		pattern string
	}{
		{"english-64KB", benchText("etaoin shrdlu", 64<<10) + "flamingo", "flamingo"},
		{"dna-64KB", benchText("ACGT", 64<<10), "ACGTACGTAC"},
		{"periodic-64KB", strings.Repeat("aab", (64<<10)/3), "aabaabaabaab"},
		{"short-text", "the quick brown fox", "quick"},
	}

	for _, eng := range implementedEngines() {
		for _, w := range workloads {
			b.Run(eng.Name()+"/"+w.name, func(b *testing.B) {
				b.SetBytes(int64(len(w.text)))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := eng.Solve(w.text, w.pattern); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkFailureTable(b *testing.B) {
	pattern := strings.Repeat("aabaabaaa", 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		failureTable(pattern)
	}
}

func BenchmarkGoodSuffixTable(b *testing.B) {
	pattern := strings.Repeat("abcxxxabc", 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		goodSuffixTable(pattern)
	}
}
