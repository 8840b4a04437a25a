// Package dataio implements the typed serialization framework: a
// Reader/Writer pair parameterized by an endian.EndianEngine and a
// format.IntegerPolicy, layered over any stream.Input/stream.Output
// (typically a streambuf wrapper for amortized I/O).
//
// Primitive fields (bool, intN/uintN, float32/64, string) read and write
// directly. Containers — slices, ordered maps and sets, pairs, fixed
// arrays, raw byte slices — are built from the primitives plus a
// variable-length element count.
//
// Fixed-width integers honor the Writer/Reader's IntegerPolicy:
// format.IntegerFixed writes the engine's native byte width,
// format.IntegerVar routes through the varint package (continuation-bit,
// ZigZag for signed types). Container length prefixes and string lengths
// always use the variable-length codec regardless of policy, since they
// are metadata rather than record fields.
//
// When the underlying stream exposes a buffered raw window (the pattern
// streambuf.Reader/Writer implement), variable-length decode/encode uses
// varint's allocation-free fast path directly against that window;
// otherwise it falls back to a one-byte-at-a-time loop over
// stream.Input/Output directly.
package dataio
