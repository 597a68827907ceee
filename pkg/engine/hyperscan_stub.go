//go:build !cgo || !hyperscan

package engine

import "fmt"

// Hyperscan stub for builds without the Hyperscan library. Solve reports
// ErrNotImplemented so the harness records the engine as not implemented
// rather than failing the whole run.
type Hyperscan struct{}

// Name returns "hyperscan".
func (Hyperscan) Name() string { return "hyperscan" }

// Solve always reports ErrNotImplemented.
func (Hyperscan) Solve(text, pattern string) (Offsets, error) {
	return nil, fmt.Errorf("hyperscan requires CGO (build with CGO_ENABLED=1 and -tags=hyperscan): %w", ErrNotImplemented)
}
