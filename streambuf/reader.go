package streambuf

import (
	"errors"
	"io"

	"github.com/narkdb/narkcore/stream"
)

// DefaultBufferSize is the buffer capacity streambuf constructors use
// when the caller doesn't specify one.
const DefaultBufferSize = 64 * 1024

// Reader buffers reads from a stream.Input.
type Reader struct {
	in   stream.Input
	buf  []byte
	pos  int // next unread byte within buf
	n    int // number of valid bytes in buf, from 0
	eof  bool
}

var _ stream.Input = (*Reader)(nil)

// NewReader wraps in with a buffer of the given capacity.
func NewReader(in stream.Input, size int) *Reader {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Reader{in: in, buf: make([]byte, size)}
}

// buffered returns the number of unconsumed bytes currently in buf.
func (r *Reader) buffered() int { return r.n - r.pos }

// fill compacts any unconsumed bytes to the front of buf and reads more
// from the underlying stream.
func (r *Reader) fill() error {
	if r.pos > 0 {
		copy(r.buf, r.buf[r.pos:r.n])
		r.n -= r.pos
		r.pos = 0
	}

	if r.n == len(r.buf) {
		return nil // buffer already full
	}

	k, err := r.in.Read(r.buf[r.n:])
	r.n += k

	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if errors.Is(err, io.EOF) && k == 0 {
		r.eof = true
	}

	return nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.buffered() == 0 {
		if err := r.fill(); err != nil {
			return 0, err
		}
		if r.buffered() == 0 {
			return 0, io.EOF
		}
	}

	n := copy(p, r.buf[r.pos:r.n])
	r.pos += n

	return n, nil
}

// EnsureRead reads exactly len(p) bytes, refilling as many times as
// needed, failing with errs.ErrEndOfFile if the stream runs dry first.
func (r *Reader) EnsureRead(p []byte) error {
	total := 0
	for total < len(p) {
		n, err := r.Read(p[total:])
		total += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				return wrapEOF(total, len(p))
			}

			return err
		}
	}

	return nil
}

func (r *Reader) ReadByte() (byte, error) {
	if r.buffered() == 0 {
		if err := r.fill(); err != nil {
			return 0, err
		}
		if r.buffered() == 0 {
			return 0, io.EOF
		}
	}

	b := r.buf[r.pos]
	r.pos++

	return b, nil
}

// EOF reports whether the buffer is empty and the underlying stream has
// been exhausted.
func (r *Reader) EOF() bool { return r.buffered() == 0 && r.eof }

// Peek ensures at least n bytes are buffered (refilling if needed) and
// returns them without consuming. It returns fewer than n bytes only if
// the underlying stream reached EOF first.
func (r *Reader) Peek(n int) ([]byte, error) {
	for r.buffered() < n && !r.eof {
		if err := r.fill(); err != nil {
			return nil, err
		}
		if r.pos == 0 && r.n == len(r.buf) {
			break // buffer can't hold n; return what we have
		}
	}

	end := r.pos + n
	if end > r.n {
		end = r.n
	}

	return r.buf[r.pos:end], nil
}

// RawWindow returns the currently buffered, unconsumed bytes: the window
// a fast-path varint decoder may read from directly.
func (r *Reader) RawWindow() []byte { return r.buf[r.pos:r.n] }

// Advance consumes k bytes from the buffered window, typically after a
// fast-path decode read them directly via RawWindow.
func (r *Reader) Advance(k int) { r.pos += k }

// Refill is a public hook equivalent to the internal refill logic, for
// callers (e.g. the varint fast path) that need more bytes buffered
// before re-checking RawWindow's length.
func (r *Reader) Refill() error { return r.fill() }
