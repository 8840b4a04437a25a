package stream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/narkdb/narkcore/errs"
)

// FileStream wraps an *os.File as an Input+Output+Seekable stream. It
// performs unbuffered syscalls per call; wrap it in a
// streambuf.Reader/Writer for amortized I/O.
type FileStream struct {
	f   *os.File
	eof bool
}

var (
	_ Input    = (*FileStream)(nil)
	_ Output   = (*FileStream)(nil)
	_ Seekable = (*FileStream)(nil)
)

// OpenFileStream opens name with the given flag/perm, wrapping os.OpenFile
// failures in errs.ErrOpenFile.
func OpenFileStream(name string, flag int, perm os.FileMode) (*FileStream, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrOpenFile, err)
	}

	return &FileStream{f: f}, nil
}

// NewFileStream wraps an already-open file.
func NewFileStream(f *os.File) *FileStream { return &FileStream{f: f} }

// Close closes the underlying file.
func (s *FileStream) Close() error { return s.f.Close() }

func (s *FileStream) Read(buf []byte) (int, error) {
	n, err := s.f.Read(buf)
	if errors.Is(err, io.EOF) {
		s.eof = true
	}

	return n, err
}

func (s *FileStream) EnsureRead(buf []byte) error { return ensureRead(s, buf) }

func (s *FileStream) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := s.Read(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

func (s *FileStream) EOF() bool { return s.eof }

func (s *FileStream) Write(buf []byte) (int, error) {
	s.eof = false

	return s.f.Write(buf)
}

func (s *FileStream) EnsureWrite(buf []byte) error { return ensureWrite(s, buf) }

func (s *FileStream) WriteByte(b byte) error {
	_, err := s.Write([]byte{b})

	return err
}

// Flush syncs the file to stable storage, wrapping failure in
// errs.ErrDelayWrite.
func (s *FileStream) Flush() error {
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDelayWrite, err)
	}

	return nil
}

func (s *FileStream) Tell() uint64 {
	pos, _ := s.f.Seek(0, io.SeekCurrent)

	return uint64(pos)
}

func (s *FileStream) Size() uint64 {
	info, err := s.f.Stat()
	if err != nil {
		return 0
	}

	return uint64(info.Size())
}

func (s *FileStream) Seek(pos uint64) error {
	_, err := s.f.Seek(int64(pos), io.SeekStart)
	s.eof = false

	return err
}

func (s *FileStream) SeekWhence(offset int64, whence Whence) error {
	var w int
	switch whence {
	case SeekBegin:
		w = io.SeekStart
	case SeekCurrent:
		w = io.SeekCurrent
	case SeekEnd:
		w = io.SeekEnd
	}

	_, err := s.f.Seek(offset, w)
	s.eof = false

	return err
}

func (s *FileStream) Rewind() error { return s.Seek(0) }
