// Package intvec implements bit-packed integer vectors: sequences of
// unsigned (or signed, via a base-plus-offset encoding) integers stored at
// an arbitrary bit width.
//
// The backing storage is overallocated by one machine word plus 16 bytes,
// rounded up to 16, so that Get/Set may always perform an unaligned
// 64-bit load at an arbitrary byte offset without reading past the
// allocation. The loads go through encoding/binary on a bounds-checked
// slice, not through package unsafe. The padding is kept because the
// on-disk layout is part of the wire format callers persist; intvec's
// layout must match it exactly, including the padding.
package intvec
