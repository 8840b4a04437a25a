package stream

import (
	"io"

	"github.com/narkdb/narkcore/errs"
)

// SeekableMemStream is MemStream plus the Seekable role: a fixed-size
// buffer that additionally supports tell/seek/size/rewind.
type SeekableMemStream struct {
	data []byte
	pos  int
	eof  bool
}

var (
	_ Input    = (*SeekableMemStream)(nil)
	_ Output   = (*SeekableMemStream)(nil)
	_ Seekable = (*SeekableMemStream)(nil)
)

// NewSeekableMemStream wraps a fixed-size buffer.
func NewSeekableMemStream(data []byte) *SeekableMemStream {
	return &SeekableMemStream{data: data}
}

func (s *SeekableMemStream) Read(buf []byte) (int, error) {
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

func (s *SeekableMemStream) EnsureRead(buf []byte) error { return ensureRead(s, buf) }

func (s *SeekableMemStream) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := s.Read(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

func (s *SeekableMemStream) EOF() bool { return s.eof }

func (s *SeekableMemStream) Write(buf []byte) (int, error) {
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

func (s *SeekableMemStream) EnsureWrite(buf []byte) error { return ensureWrite(s, buf) }

func (s *SeekableMemStream) WriteByte(b byte) error {
	_, err := s.Write([]byte{b})

	return err
}

func (s *SeekableMemStream) Flush() error { return nil }

func (s *SeekableMemStream) Tell() uint64 { return uint64(s.pos) }

func (s *SeekableMemStream) Size() uint64 { return uint64(len(s.data)) }

func (s *SeekableMemStream) Seek(pos uint64) error {
	return s.SeekWhence(int64(pos), SeekBegin)
}

func (s *SeekableMemStream) SeekWhence(offset int64, whence Whence) error {
	var base int64
	switch whence {
	case SeekBegin:
		base = 0
	case SeekCurrent:
		base = int64(s.pos)
	case SeekEnd:
		base = int64(len(s.data))
	}

	target := base + offset
	if target < 0 || target > int64(len(s.data)) {
		return errs.ErrInvalidArgument
	}

	s.pos = int(target)
	s.eof = s.pos >= len(s.data)

	return nil
}

func (s *SeekableMemStream) Rewind() error { return s.Seek(0) }
