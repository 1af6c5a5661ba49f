// Package conv provides safe integer conversion helpers.
//
// DFA state ids are uint32 internally but arrive as ints from descriptions
// and slice lengths. These helpers perform bounds checking before the
// narrowing conversion and panic on overflow, since an overflow here means
// a description far beyond any representable automaton.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint to avoid overflow on 32-bit platforms where int
	// cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
