package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"aabaabaaa", []int{0, 1, 0, 1, 2, 3, 4, 5, 2}},
		{"abab", []int{0, 0, 1, 2}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abcd", []int{0, 0, 0, 0}},
		{"a", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, failureTable(tt.pattern))
		})
	}
}

func TestKMP_PeriodicText(t *testing.T) {
	// Heavy self-overlap is where the failure table earns its keep.
	text := strings.Repeat("aab", 50)
	got, err := KMP{}.Solve(text, "aabaab")
	require.NoError(t, err)

	want, err := Naive{}.Solve(text, "aabaab")
	require.NoError(t, err)
	assert.Equal(t, want.String(), got.String())
	assert.Equal(t, 49, len(got))
}
