package bloom

import (
	"errors"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrCapacityExceeded is returned by Add when the filter already holds
	// as many keys as it was sized for.
	ErrCapacityExceeded = errors.New("bloom: filter is at capacity")

	// ErrInvalidCapacity is returned when a filter is constructed with a
	// capacity of zero.
	ErrInvalidCapacity = errors.New("bloom: capacity must be positive")

	// ErrInvalidErrorRate is returned when a filter is constructed with an
	// error rate outside the open interval (0, 1).
	ErrInvalidErrorRate = errors.New("bloom: error rate must be in (0, 1)")

	// ErrInfeasibleParams is returned when no hash-function count within
	// [1, MaxHashFuncs] yields a finite filter length for the requested
	// error rate.
	ErrInfeasibleParams = errors.New("bloom: no feasible filter parameters")
)

// Filter is a non-thread-safe salted bloom filter.
//
// The filter hashes each key once per salt and sets or tests the resulting
// bit positions in a flat bit vector. Bits are only ever set, never cleared,
// so a key that was added can never test negative. Add enforces the
// configured capacity; Check is free.
type Filter struct {
	capacity  uint64    // Maximum number of keys the filter is sized for
	errorRate float64   // Target false positive rate at full capacity
	keyCount  uint64    // Number of keys inserted so far
	length    uint64    // Number of bits in the vector (m)
	numHashes uint32    // Number of bit positions per key (k)
	salts     []float64 // One salt per hash function, distinct, fixed
	saltBytes [][]byte  // Digest-input form of each salt, precomputed
	blank     uint32    // Neutral element of the digest word fold (always 0)
	bits      *bitset.BitSet
}

// New creates a bloom filter sized for capacity keys at the given target
// false positive rate. Salts are drawn from the package-level random source.
func New(capacity uint64, errorRate float64) (*Filter, error) {
	return NewWithRand(capacity, errorRate, nil)
}

// NewWithRand is New with an explicit salt source. Passing a seeded generator
// makes the salt sequence, and therefore every bit position, reproducible.
// A nil rng falls back to the package-level source.
func NewWithRand(capacity uint64, errorRate float64, rng *rand.Rand) (*Filter, error) {
	length, numHashes, err := OptimalParams(capacity, errorRate)
	if err != nil {
		return nil, err
	}

	salts := createSalts(numHashes, rng)
	saltBytes := make([][]byte, len(salts))
	for i, s := range salts {
		saltBytes[i] = saltText(s)
	}

	return &Filter{
		capacity:  capacity,
		errorRate: errorRate,
		length:    length,
		numHashes: numHashes,
		salts:     salts,
		saltBytes: saltBytes,
		bits:      bitset.New(uint(length)),
	}, nil
}

// Add inserts a key into the filter. It returns ErrCapacityExceeded, without
// touching the bit vector, once the filter holds capacity keys. Adding a key
// that is already present still consumes capacity.
func (f *Filter) Add(key []byte) error {
	if f.keyCount == f.capacity {
		return ErrCapacityExceeded
	}
	for _, salt := range f.saltBytes {
		f.bits.Set(uint(position(key, salt, f.length, f.blank)))
	}
	f.keyCount++
	return nil
}

// AddString inserts a string key without converting it to a byte slice.
func (f *Filter) AddString(key string) error {
	if f.keyCount == f.capacity {
		return ErrCapacityExceeded
	}
	for _, salt := range f.saltBytes {
		f.bits.Set(uint(positionString(key, salt, f.length, f.blank)))
	}
	f.keyCount++
	return nil
}

// Check reports whether a key might be in the filter. A false result is
// exact: the key was never added. A true result is correct for every added
// key and a false positive, with probability bounded by the configured error
// rate near capacity, for keys that were not.
func (f *Filter) Check(key []byte) bool {
	for _, salt := range f.saltBytes {
		if !f.bits.Test(uint(position(key, salt, f.length, f.blank))) {
			return false
		}
	}
	return true
}

// CheckString is Check for string keys, without converting the key to a byte
// slice.
func (f *Filter) CheckString(key string) bool {
	for _, salt := range f.saltBytes {
		if !f.bits.Test(uint(positionString(key, salt, f.length, f.blank))) {
			return false
		}
	}
	return true
}

// positions returns the bit index for every salt, in salt order. Indices may
// repeat across salts for the same key.
func (f *Filter) positions(key []byte) []uint64 {
	out := make([]uint64, len(f.saltBytes))
	for i, salt := range f.saltBytes {
		out[i] = position(key, salt, f.length, f.blank)
	}
	return out
}

// Capacity returns the number of keys the filter was sized for.
func (f *Filter) Capacity() uint64 {
	return f.capacity
}

// ErrorRate returns the target false positive rate at full capacity.
func (f *Filter) ErrorRate() float64 {
	return f.errorRate
}

// Count returns the number of keys added to the filter.
func (f *Filter) Count() uint64 {
	return f.keyCount
}

// Len returns the length of the bit vector in bits.
func (f *Filter) Len() uint64 {
	return f.length
}

// K returns the number of hash functions used per key.
func (f *Filter) K() uint32 {
	return f.numHashes
}

// Salts returns a copy of the filter's salt sequence, in draw order.
func (f *Filter) Salts() []float64 {
	out := make([]float64, len(f.salts))
	copy(out, f.salts)
	return out
}

// EstimatedFillRatio estimates the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.length)
}

// EstimatedFalsePositiveRate estimates the current false positive rate based
// on the number of keys added so far.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.length, f.numHashes, f.keyCount)
}
