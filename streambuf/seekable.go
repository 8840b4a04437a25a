package streambuf

import (
	"errors"
	"io"

	"github.com/narkdb/narkcore/stream"
)

// SeekableReader is a Reader over a stream that also implements
// stream.Seekable: seeking within the currently buffered window just
// moves pos, seeking outside it invalidates the buffer and delegates to
// the underlying stream.
type SeekableReader struct {
	*Reader
	s   stream.Seekable
	// base is the stream offset corresponding to buf[0].
	base uint64
}

var _ stream.Input = (*SeekableReader)(nil)
var _ stream.Seekable = (*SeekableReader)(nil)

// NewSeekableReader wraps a stream.Input that also implements
// stream.Seekable.
func NewSeekableReader[T interface {
	stream.Input
	stream.Seekable
}](in T, size int) *SeekableReader {
	return &SeekableReader{Reader: NewReader(in, size), s: in}
}

func (r *SeekableReader) Tell() uint64 { return r.base + uint64(r.pos) }

func (r *SeekableReader) Size() uint64 { return r.s.Size() }

func (r *SeekableReader) Seek(pos uint64) error {
	if pos >= r.base && pos <= r.base+uint64(r.n) {
		r.pos = int(pos - r.base)

		return nil
	}

	if err := r.s.Seek(pos); err != nil {
		return err
	}
	r.invalidate(pos)

	return nil
}

func (r *SeekableReader) SeekWhence(offset int64, whence stream.Whence) error {
	if err := r.s.SeekWhence(offset, whence); err != nil {
		return err
	}
	r.invalidate(r.s.Tell())

	return nil
}

func (r *SeekableReader) Rewind() error { return r.Seek(0) }

func (r *SeekableReader) invalidate(pos uint64) {
	r.base = pos
	r.pos = 0
	r.n = 0
	r.eof = false
}

// SeekableWriter is a Writer over a stream that also implements
// stream.Seekable. Every seek flushes Write's buffer first so no bytes
// are lost or reordered.
type SeekableWriter struct {
	*Writer
	s stream.Seekable
}

var _ stream.Output = (*SeekableWriter)(nil)
var _ stream.Seekable = (*SeekableWriter)(nil)

// NewSeekableWriter wraps a stream.Output that also implements
// stream.Seekable.
func NewSeekableWriter[T interface {
	stream.Output
	stream.Seekable
}](out T, size int) *SeekableWriter {
	return &SeekableWriter{Writer: NewWriter(out, size), s: out}
}

func (w *SeekableWriter) Tell() uint64 { return w.s.Tell() + uint64(w.n) }

func (w *SeekableWriter) Size() uint64 { return w.s.Size() }

func (w *SeekableWriter) Seek(pos uint64) error {
	if err := w.drain(); err != nil {
		return err
	}

	return w.s.Seek(pos)
}

func (w *SeekableWriter) SeekWhence(offset int64, whence stream.Whence) error {
	if err := w.drain(); err != nil {
		return err
	}

	return w.s.SeekWhence(offset, whence)
}

func (w *SeekableWriter) Rewind() error { return w.Seek(0) }

// SeekableReadWriter overlays independent read and write buffers on a
// stream that is both an Input/Output and Seekable, tracking which
// direction the buffer is primed for: switching direction
// flushes pending writes and invalidates the read window before the new
// operation proceeds.
type SeekableReadWriter struct {
	s          interface {
		stream.Input
		stream.Output
		stream.Seekable
	}
	rbuf       []byte
	rpos, rn   int
	rbase      uint64
	reof       bool
	wbuf       []byte
	wn         int
	prefetched bool // true = buffer holds read data, false = write data (or empty)
}

var _ stream.Input = (*SeekableReadWriter)(nil)
var _ stream.Output = (*SeekableReadWriter)(nil)
var _ stream.Seekable = (*SeekableReadWriter)(nil)

type seekableRW interface {
	stream.Input
	stream.Output
	stream.Seekable
}

// NewSeekableReadWriter wraps a stream implementing Input, Output and
// Seekable with independent read/write buffers of the given capacity.
func NewSeekableReadWriter[T seekableRW](s T, size int) *SeekableReadWriter {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &SeekableReadWriter{
		s:    s,
		rbuf: make([]byte, size),
		wbuf: make([]byte, size),
	}
}

func (rw *SeekableReadWriter) drainWrite() error {
	if rw.wn == 0 {
		return nil
	}
	if err := rw.s.EnsureWrite(rw.wbuf[:rw.wn]); err != nil {
		return err
	}
	rw.wn = 0

	return nil
}

func (rw *SeekableReadWriter) invalidateRead() {
	rw.rpos, rw.rn = 0, 0
	rw.reof = false
}

// enterRead flushes any pending write buffer before a read begins.
func (rw *SeekableReadWriter) enterRead() error {
	if !rw.prefetched {
		if err := rw.drainWrite(); err != nil {
			return err
		}
		rw.prefetched = true
		rw.invalidateRead()
		rw.rbase = rw.s.Tell()
	}

	return nil
}

// enterWrite invalidates any buffered read-ahead before a write begins,
// seeking the underlying stream back to the logical write position.
func (rw *SeekableReadWriter) enterWrite() error {
	if rw.prefetched {
		if rw.rn > rw.rpos {
			if err := rw.s.Seek(rw.rbase + uint64(rw.rpos)); err != nil {
				return err
			}
		}
		rw.invalidateRead()
		rw.prefetched = false
	}

	return nil
}

func (rw *SeekableReadWriter) fillRead() error {
	if rw.rpos > 0 {
		copy(rw.rbuf, rw.rbuf[rw.rpos:rw.rn])
		rw.rn -= rw.rpos
		rw.rbase += uint64(rw.rpos)
		rw.rpos = 0
	}
	if rw.rn == len(rw.rbuf) {
		return nil
	}

	k, err := rw.s.Read(rw.rbuf[rw.rn:])
	rw.rn += k
	if err != nil {
		if errors.Is(err, io.EOF) {
			if k == 0 {
				rw.reof = true
			}

			return nil
		}

		return err
	}

	return nil
}

func (rw *SeekableReadWriter) Read(p []byte) (int, error) {
	if err := rw.enterRead(); err != nil {
		return 0, err
	}
	if rw.rn-rw.rpos == 0 {
		if err := rw.fillRead(); err != nil {
			return 0, err
		}
		if rw.rn-rw.rpos == 0 {
			return 0, io.EOF
		}
	}

	n := copy(p, rw.rbuf[rw.rpos:rw.rn])
	rw.rpos += n

	return n, nil
}

func (rw *SeekableReadWriter) EnsureRead(p []byte) error {
	total := 0
	for total < len(p) {
		n, err := rw.Read(p[total:])
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

func (rw *SeekableReadWriter) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := rw.Read(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

func (rw *SeekableReadWriter) EOF() bool { return rw.rn-rw.rpos == 0 && rw.reof }

func (rw *SeekableReadWriter) Write(p []byte) (int, error) {
	if err := rw.enterWrite(); err != nil {
		return 0, err
	}

	total := 0
	for len(p) > 0 {
		if len(rw.wbuf)-rw.wn == 0 {
			if err := rw.drainWrite(); err != nil {
				return total, err
			}
		}

		k := copy(rw.wbuf[rw.wn:], p)
		rw.wn += k
		total += k
		p = p[k:]
	}

	return total, nil
}

func (rw *SeekableReadWriter) EnsureWrite(p []byte) error {
	_, err := rw.Write(p)

	return err
}

func (rw *SeekableReadWriter) WriteByte(b byte) error {
	_, err := rw.Write([]byte{b})

	return err
}

func (rw *SeekableReadWriter) Flush() error {
	if err := rw.drainWrite(); err != nil {
		return err
	}

	return rw.s.Flush()
}

func (rw *SeekableReadWriter) Tell() uint64 {
	if rw.prefetched {
		return rw.rbase + uint64(rw.rpos)
	}

	return rw.s.Tell() + uint64(rw.wn)
}

func (rw *SeekableReadWriter) Size() uint64 { return rw.s.Size() }

func (rw *SeekableReadWriter) Seek(pos uint64) error {
	if rw.prefetched && pos >= rw.rbase && pos <= rw.rbase+uint64(rw.rn) {
		rw.rpos = int(pos - rw.rbase)

		return nil
	}
	if err := rw.drainWrite(); err != nil {
		return err
	}
	if err := rw.s.Seek(pos); err != nil {
		return err
	}
	rw.invalidateRead()
	rw.prefetched = true
	rw.rbase = pos

	return nil
}

func (rw *SeekableReadWriter) SeekWhence(offset int64, whence stream.Whence) error {
	if err := rw.drainWrite(); err != nil {
		return err
	}
	if err := rw.s.SeekWhence(offset, whence); err != nil {
		return err
	}
	rw.invalidateRead()
	rw.prefetched = true
	rw.rbase = rw.s.Tell()

	return nil
}

func (rw *SeekableReadWriter) Rewind() error { return rw.Seek(0) }
