package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIndices(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		total int
		want  []int
		warns int
	}{
		{"single indices", []string{"2", "0"}, 5, []int{0, 2}, 0},
		{"range", []string{"1-3"}, 5, []int{1, 2, 3}, 0},
		{"mixed and deduplicated", []string{"0", "0-2", "2"}, 5, []int{0, 1, 2}, 0},
		{"invalid token skipped", []string{"x", "1"}, 5, []int{1}, 1},
		{"out of range skipped", []string{"7", "1"}, 5, []int{1}, 1},
		{"reversed range invalid", []string{"3-1"}, 5, nil, 1},
		{"negative invalid", []string{"-2"}, 5, nil, 1},
		{"range clipped per index", []string{"3-6"}, 5, []int{3, 4}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warn bytes.Buffer
			got := parseIndices(tt.args, tt.total, &warn)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.warns, bytes.Count(warn.Bytes(), []byte("warning")))
		})
	}
}

func TestParseRange(t *testing.T) {
	lo, hi, ok := parseRange("2-4")
	assert.True(t, ok)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 4, hi)

	for _, bad := range []string{"2", "-1", "1-", "a-b", "5-2"} {
		_, _, ok := parseRange(bad)
		assert.False(t, ok, "input %q", bad)
	}
}
