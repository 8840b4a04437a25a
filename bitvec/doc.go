// Package bitvec implements BitVector, a dynamic sequence of bits backed
// by a valvec.ByteVec whose capacity is always a multiple of 8 bytes (the
// 64-bit allocation unit). Word-aligned storage lets range
// operations, run-length queries, and bit-packed integer insertion touch
// whole 64-bit words instead of individual bits.
//
// Resize zero-fills the bits a growth newly exposes; ResizeNoInit leaves
// them as-is. The unused bits of the final word beyond Len() are not
// cleared by either (a shrinking Resize keeps their old values), so they
// are undefined; queries mask them off.
package bitvec
