package dataio

import "github.com/narkdb/narkcore/internal/options"

// DefaultMaxContainerLen bounds the element count a Reader will accept
// for a single slice/map/set/string length prefix, guarding against an
// oversized allocation driven by corrupt or hostile input.
const DefaultMaxContainerLen = 1 << 24

// ReaderOption configures a Reader at construction, mirroring the
// functional-options pattern used across narkcore's constructors.
type ReaderOption = options.Option[*Reader]

// WithMaxContainerLen overrides the element-count ceiling Reader enforces
// when decoding a length-prefixed container.
func WithMaxContainerLen(n uint64) ReaderOption {
	return options.NoError(func(r *Reader) { r.maxLen = n })
}

// WriterOption configures a Writer at construction.
type WriterOption = options.Option[*Writer]
