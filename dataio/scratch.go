package dataio

import "github.com/narkdb/narkcore/internal/pool"

// withScratch lends a pooled scratch buffer sized at least n bytes to fn,
// returning its result, and always returns the buffer to the pool
// afterward. Nothing in the package calls it at present: Writer writes
// length prefixes and payloads straight to its stream with EnsureWrite.
func withScratch(n int, fn func(buf []byte) error) error {
	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)

	bb.Reset()
	bb.ExtendOrGrow(n)

	return fn(bb.Bytes())
}
