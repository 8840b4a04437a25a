// Package bitops provides the word-level bit-manipulation primitives that
// the rest of narkcore builds on: population count, leading/trailing zero
// count, single-bit set/clear/test, and whole-word range-fill.
//
// Apart from PopCount32, all functions operate on uint64, the natural
// register size of narkcore's primary 64-bit target. math/bits already
// selects the fastest available hardware encoding (POPCNT, BSF/BSR,
// TZCNT/LZCNT, or a portable fallback) per target at compile time, so it
// is used directly rather than reimplemented; see DESIGN.md for why
// math/bits is used here instead of a third-party package.
package bitops
