// Package arena implements an offset-indexed memory pool:
// an allocator over a single contiguous valvec.ByteVec that hands out
// 64-bit integer offsets instead of pointers, so identifiers stay stable
// and comparable across a process and remain meaningful if the pool is
// later persisted.
//
// Small requests are served from per-size-class free lists; requests
// larger than the biggest size class are tracked in a skip list keyed by
// block size. A classic C allocator would thread each free list's
// next-pointer through the freed block itself; narkcore keeps the
// offsets in ordinary Go slices instead (documented deviation, see
// DESIGN.md), since Go has no portable way to alias a byte range as a
// linked-list node without unsafe tricks that buy nothing here.
package arena
