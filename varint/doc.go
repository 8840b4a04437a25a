// Package varint implements two variable-length integer families: a
// continuation-bit (LEB128-style) codec used by dataio's "var" integer
// policy, and a length-prefixed family (LP30 for 32-bit values, LP61 for
// 64-bit) whose leading byte encodes its own length in 2 or 3 low bits.
//
// Each unsigned decoder (Uvarint32, Uvarint64, LP30, LP61) has a *FastPath
// variant that reads directly from a byte slice without a bounds-checked
// loop per byte, and reports failure when the slice is shorter than the
// worst case (10 bytes for continuation-bit 64-bit, 8 for LP61). The
// encoders and the signed decoders have no fast path. dataio's Reader
// calls Uvarint64FastPath on a streambuf window and falls back to reading
// byte by byte when the fast path reports failure.
package varint
