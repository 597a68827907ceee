package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHybrid_TinyPatternsUseNaivePath(t *testing.T) {
	// Patterns of length <= 2 bypass the Sunday/Raita machinery.
	tests := []struct {
		text    string
		pattern string
		want    string
	}{
		{"aaaa", "a", "0,1,2,3"},
		{"aaaa", "aa", "0,1,2"},
		{"abab", "ab", "0,2"},
		{"abc", "cd", ""},
	}

	for _, tt := range tests {
		got, err := Hybrid{}.Solve(tt.text, tt.pattern)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestHybrid_MatchAtEndOfText(t *testing.T) {
	// The last window has no following byte for the Sunday shift; the scan
	// must fall back to a single-byte step and still report the match.
	got, err := Hybrid{}.Solve("xxxxneedle", "needle")
	require.NoError(t, err)
	assert.Equal(t, "4", got.String())
}

func TestHybrid_RaitaProbesDoNotSkipMatches(t *testing.T) {
	// Patterns whose first/middle/last bytes collide with near-misses.
	text := "abaababaabaababaab"
	for _, pattern := range []string{"abaab", "aabab", "ababa"} {
		want, err := Naive{}.Solve(text, pattern)
		require.NoError(t, err)
		got, err := Hybrid{}.Solve(text, pattern)
		require.NoError(t, err)
		assert.Equal(t, want.String(), got.String(), "pattern=%q", pattern)
	}
}

func TestHybrid_LongShift(t *testing.T) {
	text := strings.Repeat("z", 500) + "marker" + strings.Repeat("z", 500)
	got, err := Hybrid{}.Solve(text, "marker")
	require.NoError(t, err)
	assert.Equal(t, "500", got.String())
}
