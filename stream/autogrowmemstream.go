package stream

import (
	"fmt"
	"io"

	"github.com/narkdb/narkcore/errs"
	"github.com/narkdb/narkcore/valvec"
)

// AutoGrowMemStream owns an expandable valvec.ByteVec and grows it as
// writes demand.
type AutoGrowMemStream struct {
	buf *valvec.ByteVec
	pos int
	eof bool
}

var (
	_ Input    = (*AutoGrowMemStream)(nil)
	_ Output   = (*AutoGrowMemStream)(nil)
	_ Seekable = (*AutoGrowMemStream)(nil)
)

// NewAutoGrowMemStream creates an empty, growable stream.
func NewAutoGrowMemStream() *AutoGrowMemStream {
	return &AutoGrowMemStream{buf: valvec.NewByteVec(0)}
}

// Bytes returns the stream's current contents. The returned slice aliases
// the stream's storage.
func (s *AutoGrowMemStream) Bytes() []byte { return s.buf.Bytes() }

func (s *AutoGrowMemStream) Read(buf []byte) (int, error) {
	data := s.buf.Bytes()
	if s.pos >= len(data) {
		s.eof = true

		return 0, io.EOF
	}

	n := copy(buf, data[s.pos:])
	s.pos += n
	if s.pos >= len(data) {
		s.eof = true
	}

	return n, nil
}

func (s *AutoGrowMemStream) EnsureRead(buf []byte) error { return ensureRead(s, buf) }

func (s *AutoGrowMemStream) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := s.Read(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

func (s *AutoGrowMemStream) EOF() bool { return s.eof }

// Write appends or overwrites at the current position, growing the
// backing vector as needed; unlike MemStream, it never runs out of
// space.
func (s *AutoGrowMemStream) Write(buf []byte) (int, error) {
	end := s.pos + len(buf)
	if end > s.buf.Len() {
		s.buf.Resize(end)
	}

	copy(s.buf.Slice(s.pos, end), buf)
	s.pos = end
	s.eof = false

	return len(buf), nil
}

func (s *AutoGrowMemStream) EnsureWrite(buf []byte) error { return ensureWrite(s, buf) }

func (s *AutoGrowMemStream) WriteByte(b byte) error {
	_, err := s.Write([]byte{b})

	return err
}

func (s *AutoGrowMemStream) Flush() error { return nil }

func (s *AutoGrowMemStream) Tell() uint64 { return uint64(s.pos) }

func (s *AutoGrowMemStream) Size() uint64 { return uint64(s.buf.Len()) }

func (s *AutoGrowMemStream) Seek(pos uint64) error {
	return s.SeekWhence(int64(pos), SeekBegin)
}

func (s *AutoGrowMemStream) SeekWhence(offset int64, whence Whence) error {
	var base int64
	switch whence {
	case SeekBegin:
		base = 0
	case SeekCurrent:
		base = int64(s.pos)
	case SeekEnd:
		base = int64(s.buf.Len())
	}

	target := base + offset
	if target < 0 {
		return errs.ErrInvalidArgument
	}

	s.pos = int(target)
	s.eof = s.pos >= s.buf.Len()

	return nil
}

func (s *AutoGrowMemStream) Rewind() error { return s.Seek(0) }

// Printf formats according to format and writes the result at the
// current position, growing the stream as needed. Go's variadic
// fmt.Fprintf already covers both a fixed-args and varargs call shape,
// so a separate va_list-style entry point would add nothing.
func (s *AutoGrowMemStream) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(s, format, args...)
}

// ZCWrite exposes a writable window directly into the backing vector,
// growing it first if necessary.
func (s *AutoGrowMemStream) ZCWrite(n int) ([]byte, bool) {
	end := s.pos + n
	if end > s.buf.Len() {
		s.buf.Resize(end)
	}

	ptr := s.buf.Slice(s.pos, end)
	s.pos = end

	return ptr, true
}

// ZCRead exposes a read-only window directly into the backing vector.
func (s *AutoGrowMemStream) ZCRead(n int) ([]byte, bool) {
	if s.pos+n > s.buf.Len() {
		return nil, false
	}

	ptr := s.buf.Slice(s.pos, s.pos+n)
	s.pos += n

	return ptr, true
}

var (
	_ ZeroCopyReader = (*AutoGrowMemStream)(nil)
	_ ZeroCopyWriter = (*AutoGrowMemStream)(nil)
)
