package generator

import "unicode/utf16"

// HashSeed derives a PRNG seed from an identifier with a rolling h*31+c hash
// over UTF-16 code units, truncated to a signed 32-bit value at every step.
// The empty string hashes to 0. Collisions are acceptable.
func HashSeed(s string) uint32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(c)
	}
	return uint32(h)
}
