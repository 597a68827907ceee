//go:build cgo && hyperscan

package engine

// hyperscanAvailable returns true when Hyperscan is available (CGO build with hyperscan tag).
func hyperscanAvailable() bool {
	return true
}
