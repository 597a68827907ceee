//go:build cgo && hyperscan

package engine

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/flier/gohs/hyperscan"
)

// Hyperscan matches with Intel Hyperscan, compiling the quoted pattern into
// a block database with start-of-match reporting. Hyperscan reports every
// occurrence, including overlapping ones, ordered by end offset; start
// offsets are sorted before returning to satisfy the canonical ordering.
type Hyperscan struct{}

// Name returns "hyperscan".
func (Hyperscan) Name() string { return "hyperscan" }

// Solve compiles and scans per call. Engines are stateless by contract, so
// no database or scratch space is cached between calls; the compile cost is
// part of what the harness measures for this engine.
func (Hyperscan) Solve(text, pattern string) (Offsets, error) {
	n, m := len(text), len(pattern)
	if m == 0 {
		return allOffsets(n), nil
	}
	if m > n {
		return nil, nil
	}

	p := hyperscan.NewPattern(regexp.QuoteMeta(pattern), hyperscan.SomLeftMost)
	db, err := hyperscan.NewBlockDatabase(p)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern: %w", err)
	}
	defer db.Close()

	scratch, err := hyperscan.NewScratch(db)
	if err != nil {
		return nil, fmt.Errorf("allocating scratch: %w", err)
	}
	defer scratch.Free()

	var out Offsets
	onMatch := func(id uint, from, to uint64, flags uint, context interface{}) error {
		out = append(out, int(from))
		return nil
	}
	if err := db.Scan([]byte(text), scratch, onMatch, nil); err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}

	sort.Ints(out)
	return out, nil
}
