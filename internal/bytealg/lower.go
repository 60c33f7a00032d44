package bytealg

import "math/bits"

const (
	lsb = ^uint64(0) / 255
	msb = lsb * 0x80
)

// IndexNotLower returns the offset of the first byte of s outside 'a'-'z',
// or -1 if every byte is an ASCII lowercase letter.
func IndexNotLower(s string) int {
	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		x := uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
			uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
		if m := lowerMask(x); m != msb {
			return pos + bits.TrailingZeros64(^m&msb)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 'a' || b > 'z' {
			return pos + i
		}
	}
	return -1
}

// lowerMask sets the high bit of every byte of x that is in 'a'-'z'.
// Bytes with the high bit set never match. Each lane is computed without
// borrows or carries into its neighbours, so the result is exact per byte.
// based on https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func lowerMask(x uint64) uint64 {
	const m, n = 'a' - 1, 'z' + 1

	a := lsb * (127 + n)
	b := x & (lsb * 127)
	c := ^x
	d := lsb * (127 - m)
	return (a - b) & c & (b + d) & msb
}
