package util

import (
	"unsafe"

	"github.com/narkdb/narkcore/internal/hash"
)

// Fstring is an immutable, length-plus-pointer view over a byte range,
// the Go analogue of a fixed string: a Go string header already is such
// a view, so Fstring wraps one directly instead of reimplementing it.
type Fstring struct {
	s string
}

// NewFstring views b without copying it; b must not be mutated afterward.
func NewFstring(b []byte) Fstring {
	return Fstring{s: unsafe.String(unsafe.SliceData(b), len(b))}
}

// FstringOf views s (a no-op, since a Go string is already such a view).
func FstringOf(s string) Fstring { return Fstring{s: s} }

// Len returns the view's length in bytes.
func (f Fstring) Len() int { return len(f.s) }

// String returns the view's contents as a standard string.
func (f Fstring) String() string { return f.s }

// Bytes returns the view's contents as a byte slice aliasing the same
// memory; the caller must not mutate it.
func (f Fstring) Bytes() []byte { return unsafe.Slice(unsafe.StringData(f.s), len(f.s)) }

// Sub returns the subrange [lo:hi) as a new Fstring sharing memory.
func (f Fstring) Sub(lo, hi int) Fstring { return Fstring{s: f.s[lo:hi]} }

// Split splits the view on every occurrence of sep, returning views that
// share the original memory.
func (f Fstring) Split(sep byte) []Fstring {
	var out []Fstring

	start := 0
	for i := 0; i < len(f.s); i++ {
		if f.s[i] == sep {
			out = append(out, f.Sub(start, i))
			start = i + 1
		}
	}
	out = append(out, f.Sub(start, len(f.s)))

	return out
}

// Hash returns the view's xxHash64 digest, matching internal/hash.ID's
// algorithm exactly.
func (f Fstring) Hash() uint64 { return hash.ID(f.s) }

// Equal reports whether f and g have identical contents. Go's string
// equality already compares word-at-a-time (runtime.memequal) even when
// the two pointers have different alignment, so Equal defers to it
// directly rather than hand-rolling that loop.
func (f Fstring) Equal(g Fstring) bool { return f.s == g.s }
