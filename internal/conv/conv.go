// Package conv provides checked integer conversions for the automaton.
//
// State references are stored as uint32 to keep transition rows compact.
// Narrowing an int that does not fit is a programming error (an input far
// larger than the automaton supports), so these helpers panic instead of
// silently wrapping.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms do not overflow the constant.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
