package bloom

import (
	"strconv"

	"github.com/zeebo/xxh3"
)

// saltText renders a salt the way it is fed to the digest: the shortest
// decimal form that round-trips the float64 exactly.
func saltText(salt float64) []byte {
	return []byte(strconv.FormatFloat(salt, 'g', -1, 64))
}

// position computes the xxh3 digest of key followed by salt text and maps it
// to a bit index in [0, length).
func position(key, salt []byte, length uint64, blank uint32) uint64 {
	var h xxh3.Hasher
	h.Write(key)
	h.Write(salt)
	return uint64(fold(h.Sum64(), blank)) % length
}

// positionString is position for string keys, avoiding the []byte conversion
// of the key.
func positionString(key string, salt []byte, length uint64, blank uint32) uint64 {
	var h xxh3.Hasher
	h.WriteString(key)
	h.Write(salt)
	return uint64(fold(h.Sum64(), blank)) % length
}

// fold collapses a 64-bit digest to 32 bits by XORing its big-endian 32-bit
// words, seeded with blank.
func fold(sum uint64, blank uint32) uint32 {
	return blank ^ uint32(sum>>32) ^ uint32(sum)
}
