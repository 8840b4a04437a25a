package bitops

import "math/bits"

// PopCount32 returns the number of set bits in v.
func PopCount32(v uint32) int {
	return bits.OnesCount32(v)
}

// PopCount64 returns the number of set bits in v.
func PopCount64(v uint64) int {
	return bits.OnesCount64(v)
}

// PopCountTrailingN returns the number of set bits among the n
// least-significant bits of v. n must be in [0, 64]; n == 64 counts the
// whole word.
func PopCountTrailingN(v uint64, n int) int {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return bits.OnesCount64(v)
	}

	mask := uint64(1)<<uint(n) - 1

	return bits.OnesCount64(v & mask)
}

// LeadingZeros64 returns the number of leading zero bits in v, with
// LeadingZeros64(0) == 64.
func LeadingZeros64(v uint64) int {
	return bits.LeadingZeros64(v)
}

// TrailingZeros64 returns the number of trailing zero bits in v, with
// TrailingZeros64(0) == 64.
func TrailingZeros64(v uint64) int {
	return bits.TrailingZeros64(v)
}

// RotateLeft64 rotates v left by k bits (k may be negative to rotate
// right), matching bits.RotateLeft64.
func RotateLeft64(v uint64, k int) uint64 {
	return bits.RotateLeft64(v, k)
}
