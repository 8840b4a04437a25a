package stream

import (
	"io"

	"github.com/narkdb/narkcore/errs"
)

// MemStream is a non-owning, fixed-size view over a caller-provided
// buffer: I+O only, no Seekable, since the view has no concept of
// growing past its backing slice.
type MemStream struct {
	data []byte
	pos  int
	eof  bool
}

var (
	_ Input  = (*MemStream)(nil)
	_ Output = (*MemStream)(nil)
)

// NewMemStream wraps data for reading and in-place writing. The returned
// stream does not own data and never reallocates it.
func NewMemStream(data []byte) *MemStream {
	return &MemStream{data: data}
}

func (s *MemStream) Read(buf []byte) (int, error) {
	if s.pos >= len(s.data) {
		s.eof = true

		return 0, io.EOF
	}

	n := copy(buf, s.data[s.pos:])
	s.pos += n
	if s.pos >= len(s.data) {
		s.eof = true
	}

	return n, nil
}

func (s *MemStream) EnsureRead(buf []byte) error { return ensureRead(s, buf) }

func (s *MemStream) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := s.Read(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

func (s *MemStream) EOF() bool { return s.eof }

func (s *MemStream) Write(buf []byte) (int, error) {
	room := len(s.data) - s.pos
	n := len(buf)
	if n > room {
		n = room
	}

	copy(s.data[s.pos:s.pos+n], buf[:n])
	s.pos += n

	if n < len(buf) {
		return n, errs.ErrOutOfSpace
	}

	return n, nil
}

func (s *MemStream) EnsureWrite(buf []byte) error { return ensureWrite(s, buf) }

func (s *MemStream) WriteByte(b byte) error {
	_, err := s.Write([]byte{b})

	return err
}

func (s *MemStream) Flush() error { return nil }

// ZCRead exposes a read-only window directly into the backing buffer.
func (s *MemStream) ZCRead(n int) ([]byte, bool) {
	if s.pos+n > len(s.data) {
		return nil, false
	}

	ptr := s.data[s.pos : s.pos+n]
	s.pos += n

	return ptr, true
}

// ZCWrite exposes a writable window directly into the backing buffer.
func (s *MemStream) ZCWrite(n int) ([]byte, bool) {
	if s.pos+n > len(s.data) {
		return nil, false
	}

	ptr := s.data[s.pos : s.pos+n]
	s.pos += n

	return ptr, true
}

var (
	_ ZeroCopyReader = (*MemStream)(nil)
	_ ZeroCopyWriter = (*MemStream)(nil)
)
