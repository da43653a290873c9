package bloom

import "math"

// MaxHashFuncs is the upper bound of the hash-function search in
// [OptimalParams]. Error rates that would need more than this many hash
// functions are not supported.
const MaxHashFuncs = 100

// OptimalParams calculates the optimal bloom filter parameters for the given
// capacity and target false positive rate. It returns the bit vector length m
// and the number of hash functions k.
//
// For each candidate k in [1, MaxHashFuncs] the required length is
//
//	m(k) = -k*n / ln(1 - p^(1/k))
//
// and the (m, k) pair with the smallest m wins. The returned length is
// floor(min m) + 1.
func OptimalParams(capacity uint64, errorRate float64) (length uint64, numHashFuncs uint32, err error) {
	if capacity == 0 {
		return 0, 0, ErrInvalidCapacity
	}
	if !(errorRate > 0 && errorRate < 1) {
		return 0, 0, ErrInvalidErrorRate
	}

	n := float64(capacity)
	lowestM := math.Inf(1)
	bestK := uint32(0)

	for k := 1; k <= MaxHashFuncs; k++ {
		kf := float64(k)
		// ln(1 - p^(1/k)) is negative for p in (0, 1), making m positive.
		// Rounding breaks that at the extremes: tiny rates make p^(1/k)
		// round to 0 (denominator ln(1) = 0, m infinite) and rates within
		// one ulp of 1 make it round to 1 (denominator -Inf, m zero). Both
		// candidates are infeasible.
		denom := math.Log(1 - math.Pow(errorRate, 1/kf))
		m := -kf * n / denom
		if m > 0 && !math.IsInf(m, 1) && m < lowestM {
			lowestM = m
			bestK = uint32(k)
		}
	}

	if bestK == 0 {
		return 0, 0, ErrInfeasibleParams
	}
	return uint64(math.Floor(lowestM)) + 1, bestK, nil
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter of
// length bits with numHashFuncs hash functions after keyCount insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(length uint64, numHashFuncs uint32, keyCount uint64) float64 {
	m := float64(length)
	n := float64(keyCount)
	k := float64(numHashFuncs)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-k*n/m), k)
}
