package varint

import "math/bits"

// PutLP30 encodes v (which must fit in 30 bits) into buf using the
// length-prefixed family: the leading byte's low 2 bits
// hold n-1 (number of bytes, 1..4), and v<<2 occupies the remaining bits
// across all n bytes in little-endian order. Returns the number of bytes
// written. buf must have at least 4 bytes of room.
func PutLP30(buf []byte, v uint32) int {
	n := lp30Len(v)
	packed := (v << 2) | uint32(n-1)

	for i := 0; i < n; i++ {
		buf[i] = byte(packed >> (8 * uint(i)))
	}

	return n
}

func lp30Len(v uint32) int {
	needed := bits.Len32(v) + 2
	n := (needed + 7) / 8
	if n < 1 {
		n = 1
	}

	return n
}

// LP30 decodes an LP30 value from the front of buf, returning the value
// and bytes consumed, or (0, 0) if buf is too short for the length its
// leading byte claims.
func LP30(buf []byte) (uint32, int) {
	if len(buf) < 1 {
		return 0, 0
	}

	n := int(buf[0]&0x3) + 1
	if len(buf) < n {
		return 0, 0
	}

	var packed uint32
	for i := 0; i < n; i++ {
		packed |= uint32(buf[i]) << (8 * uint(i))
	}

	return packed >> 2, n
}

// LP30FastPath decodes like LP30 but assumes buf has at least 4 bytes
// (the worst case), a separate bounds-check-free path for buffers whose
// padding guarantees it.
func LP30FastPath(buf []byte) (value uint32, consumed int, ok bool) {
	if len(buf) < 4 {
		return 0, 0, false
	}

	n := int(buf[0]&0x3) + 1
	var packed uint32
	for i := 0; i < n; i++ {
		packed |= uint32(buf[i]) << (8 * uint(i))
	}

	return packed >> 2, n, true
}

// PutLP61 encodes v (which must fit in 61 bits) into buf using the 64-bit
// length-prefixed family: the leading byte's low 3 bits hold n-1 (1..8),
// and v<<3 occupies the remaining bits across all n bytes little-endian.
// buf must have at least 8 bytes of room.
func PutLP61(buf []byte, v uint64) int {
	n := lp61Len(v)
	packed := (v << 3) | uint64(n-1)

	for i := 0; i < n; i++ {
		buf[i] = byte(packed >> (8 * uint(i)))
	}

	return n
}

func lp61Len(v uint64) int {
	needed := bits.Len64(v) + 3
	n := (needed + 7) / 8
	if n < 1 {
		n = 1
	}

	return n
}

// LP61 decodes an LP61 value from the front of buf, returning the value
// and bytes consumed, or (0, 0) if buf is too short.
func LP61(buf []byte) (uint64, int) {
	if len(buf) < 1 {
		return 0, 0
	}

	n := int(buf[0]&0x7) + 1
	if len(buf) < n {
		return 0, 0
	}

	var packed uint64
	for i := 0; i < n; i++ {
		packed |= uint64(buf[i]) << (8 * uint(i))
	}

	return packed >> 3, n
}

// LP61FastPath decodes like LP61 but assumes buf has at least 8 bytes.
func LP61FastPath(buf []byte) (value uint64, consumed int, ok bool) {
	if len(buf) < 8 {
		return 0, 0, false
	}

	n := int(buf[0]&0x7) + 1
	var packed uint64
	for i := 0; i < n; i++ {
		packed |= uint64(buf[i]) << (8 * uint(i))
	}

	return packed >> 3, n, true
}
