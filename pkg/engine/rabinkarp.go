package engine

// Rolling-hash parameters. The modulus is deliberately small so hash
// collisions actually occur and the verify-on-hit path stays exercised;
// hash equality alone is never sufficient to report a match.
const (
	rkRadix = 256
	rkPrime = 101
)

// RabinKarp implements rolling-hash matching: the hash of the current text
// window is updated incrementally per slide, and windows whose hash equals
// the pattern hash are verified with a full comparison. O(n+m) average,
// O(n*m) under pathological collisions.
type RabinKarp struct{}

// Name returns "rabin-karp".
func (RabinKarp) Name() string { return "rabin-karp" }

// Solve slides an m-byte window over the text, maintaining its polynomial
// hash mod rkPrime. Negative remainders from the subtraction step are
// normalized back into [0, rkPrime).
func (RabinKarp) Solve(text, pattern string) (Offsets, error) {
	n, m := len(text), len(pattern)
	if m == 0 {
		return allOffsets(n), nil
	}
	if m > n {
		return nil, nil
	}

	// h = rkRadix^(m-1) mod rkPrime, the weight of the outgoing byte.
	var h int64 = 1
	for i := 0; i < m-1; i++ {
		h = h * rkRadix % rkPrime
	}

	var patternHash, windowHash int64
	for i := 0; i < m; i++ {
		patternHash = (rkRadix*patternHash + int64(pattern[i])) % rkPrime
		windowHash = (rkRadix*windowHash + int64(text[i])) % rkPrime
	}

	var out Offsets
	for i := 0; i+m <= n; i++ {
		// Verify on hash hit: collisions are expected with a small modulus.
		if patternHash == windowHash && text[i:i+m] == pattern {
			out = append(out, i)
		}
		if i+m < n {
			windowHash = (rkRadix*(windowHash-int64(text[i])*h) + int64(text[i+m])) % rkPrime
			if windowHash < 0 {
				windowHash += rkPrime
			}
		}
	}
	return out, nil
}
