package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// parseIndices converts case-selection arguments into a sorted, deduplicated
// index list. Each argument is either a single index ("3") or an inclusive
// range ("1-5"). Invalid tokens and out-of-range indices are warned about and
// skipped rather than failing the run.
func parseIndices(args []string, total int, warn io.Writer) []int {
	seen := make(map[int]bool)

	add := func(idx int) {
		if idx < 0 || idx >= total {
			fmt.Fprintf(warn, "warning: index %d is out of range (0-%d), skipping\n", idx, total-1)
			return
		}
		seen[idx] = true
	}

	for _, arg := range args {
		if lo, hi, ok := parseRange(arg); ok {
			for i := lo; i <= hi; i++ {
				add(i)
			}
			continue
		}
		idx, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(warn, "warning: invalid index %q, skipping\n", arg)
			continue
		}
		add(idx)
	}

	if len(seen) == 0 {
		return nil
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// parseRange parses "A-B" with A <= B, both non-negative.
func parseRange(arg string) (lo, hi int, ok bool) {
	parts := strings.SplitN(arg, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if lo < 0 || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}
