package streambuf

import (
	"github.com/narkdb/narkcore/stream"
)

// Writer buffers writes to a stream.Output, flushing full buffers to the
// underlying stream instead of making one write call per caller call.
type Writer struct {
	out stream.Output
	buf []byte
	n   int // number of valid bytes in buf, from 0
}

var _ stream.Output = (*Writer)(nil)

// NewWriter wraps out with a buffer of the given capacity.
func NewWriter(out stream.Output, size int) *Writer {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Writer{out: out, buf: make([]byte, size)}
}

// available returns the number of unused bytes remaining in buf.
func (w *Writer) available() int { return len(w.buf) - w.n }

// drain pushes buffered bytes to the underlying stream and resets n.
func (w *Writer) drain() error {
	if w.n == 0 {
		return nil
	}
	if err := w.out.EnsureWrite(w.buf[:w.n]); err != nil {
		return err
	}
	w.n = 0

	return nil
}

func (w *Writer) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if w.available() == 0 {
			if err := w.drain(); err != nil {
				return total, err
			}
		}

		k := copy(w.buf[w.n:], p)
		w.n += k
		total += k
		p = p[k:]
	}

	return total, nil
}

// EnsureWrite writes all of p, failing with errs.ErrOutOfSpace only if the
// underlying stream itself rejects a drain.
func (w *Writer) EnsureWrite(p []byte) error {
	_, err := w.Write(p)

	return err
}

func (w *Writer) WriteByte(b byte) error {
	if w.available() == 0 {
		if err := w.drain(); err != nil {
			return err
		}
	}

	w.buf[w.n] = b
	w.n++

	return nil
}

// Flush pushes any buffered bytes to the underlying stream and flushes it
// in turn.
func (w *Writer) Flush() error {
	if err := w.drain(); err != nil {
		return err
	}

	return w.out.Flush()
}

// RawWindow returns the unused tail of buf: the window a fast-path varint
// encoder may write into directly, after checking it is large enough via
// Available.
func (w *Writer) RawWindow() []byte { return w.buf[w.n:] }

// Available reports how many bytes RawWindow currently offers.
func (w *Writer) Available() int { return w.available() }

// Advance marks k bytes of RawWindow as written, typically after a
// fast-path encoder filled them directly.
func (w *Writer) Advance(k int) { w.n += k }

// MakeRoom ensures at least n bytes are available in RawWindow, draining
// the buffer first if necessary. It fails if n exceeds the buffer's total
// capacity.
func (w *Writer) MakeRoom(n int) error {
	if n > len(w.buf) {
		return wrapOutOfSpace(len(w.buf), n)
	}
	if w.available() < n {
		return w.drain()
	}

	return nil
}
