package bloom

import "math/rand/v2"

// createSalts draws count distinct values in [0, 1) from rng, or from the
// package-level source when rng is nil.
func createSalts(count uint32, rng *rand.Rand) []float64 {
	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}
	return drawSalts(count, next)
}

// drawSalts collects count distinct draws from next. Duplicates are rejected
// and redrawn; at practical counts a collision is vanishingly rare, so the
// retry loop is effectively free.
//
// The returned slice preserves draw order. A filter reuses the same salts, in
// the same order, for every key it ever hashes.
func drawSalts(count uint32, next func() float64) []float64 {
	salts := make([]float64, 0, count)
	seen := make(map[float64]struct{}, count)
	for uint32(len(salts)) < count {
		s := next()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		salts = append(salts, s)
	}
	return salts
}
