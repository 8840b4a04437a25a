// Package valvec provides ByteVec, a contiguous growable byte buffer used
// as the backing storage for bitvec, intvec, and arena.
//
// ByteVec follows the same realloc-and-copy growth strategy as
// internal/pool's scratch buffers: small buffers grow by a fixed chunk
// to minimize reallocations, large buffers grow by a fraction of their
// current capacity. Shrinking (Resize or ResizeNoInit to a smaller size) never releases
// memory; only ShrinkToFit does.
package valvec
