// Package bloom provides a classic salted bloom filter for Go.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Architecture
//
// Each filter owns a flat bit vector of m bits and a sequence of k salts. A
// salt is a random value in [0, 1), drawn once at construction and fixed for
// the lifetime of the filter. To map a key to a bit position, the key is
// hashed together with one salt using xxh3, the 64-bit digest is folded to 32
// bits by XORing its big-endian words, and the result is reduced modulo m.
// The k salts therefore act as k independent hash functions over the same
// digest scheme.
//
// Salts are randomized per instance, so two filters built with identical
// parameters place the same key at different bit positions. Anything that
// needs position-compatible filters must share a single instance.
//
// # Choosing Parameters
//
// Use [New] with the number of keys you intend to insert and the false
// positive rate you are willing to tolerate once the filter is full:
//
//	// Filter for 1 million keys with 1% false positive rate
//	f, err := bloom.New(1_000_000, 0.01)
//
// The constructor searches for the (m, k) pair that minimizes memory for the
// requested rate; [OptimalParams] exposes the same search directly. Error
// rates small enough to require more than 100 hash functions are rejected.
//
// # Capacity
//
// Unlike filters that merely degrade when overfilled, this filter enforces
// its capacity: [Filter.Add] returns [ErrCapacityExceeded] once the number of
// inserted keys reaches the configured capacity, and the caller must either
// drop the key or build a larger filter. [Filter.Check] never consumes
// capacity and never fails.
//
// # False Positive Rate
//
// The configured rate is reached when the filter holds exactly its capacity
// in distinct keys; before that the observed rate is lower. Use
// [Filter.EstimatedFalsePositiveRate] to monitor the current rate and
// [Filter.EstimatedFillRatio] to monitor bit saturation.
//
// # Reproducibility
//
// Salts come from a system-seeded source by default. Tests that need
// deterministic salts can pass their own generator to [NewWithRand].
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Check is read-only and safe to call
// concurrently with other Checks, but any concurrent Add requires external
// synchronization layered on top by the caller.
package bloom
