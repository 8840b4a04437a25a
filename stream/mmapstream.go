package stream

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/narkdb/narkcore/errs"
)

// mmapAlignment is the page/allocation-granularity alignment this package
// requires mmap-backed streams to round their mapped region to. mmap-go
// does not expose the OS's allocation granularity directly; 4096 matches
// every mainstream target's page size closely enough for this rounding
// to be safe (worst case it over-rounds slightly on Windows, which is
// harmless since the mapping only ever grows).
const mmapAlignment = 4096

// MmapStream is a memory-mapped file stream: I+O+S,
// remapping whenever a seek or write would land outside the currently
// mapped window.
type MmapStream struct {
	f      *os.File
	region mmap.MMap
	pos    int64
	eof    bool
}

var (
	_ Input    = (*MmapStream)(nil)
	_ Output   = (*MmapStream)(nil)
	_ Seekable = (*MmapStream)(nil)
)

// OpenMmapStream opens name read-write and maps its current contents.
func OpenMmapStream(name string) (*MmapStream, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrOpenFile, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("%w: %v", errs.ErrOpenFile, err)
	}

	s := &MmapStream{f: f}
	if info.Size() > 0 {
		if err := s.remap(info.Size()); err != nil {
			_ = f.Close()

			return nil, err
		}
	}

	return s, nil
}

// Close unmaps and closes the underlying file.
func (s *MmapStream) Close() error {
	if s.region != nil {
		if err := s.region.Unmap(); err != nil {
			return err
		}
	}

	return s.f.Close()
}

func roundUpAlignment(n int64) int64 {
	if n%mmapAlignment == 0 {
		return n
	}

	return n + (mmapAlignment - n%mmapAlignment)
}

// remap grows the backing file to at least minSize, rounded to
// mmapAlignment, and re-establishes the mapping.
func (s *MmapStream) remap(minSize int64) error {
	if s.region != nil {
		if err := s.region.Unmap(); err != nil {
			return err
		}
	}

	target := roundUpAlignment(minSize)
	if target == 0 {
		s.region = nil

		return nil
	}

	if err := s.f.Truncate(target); err != nil {
		return err
	}

	region, err := mmap.Map(s.f, mmap.RDWR, 0)
	if err != nil {
		return err
	}

	s.region = region

	return nil
}

// ensureWindow remaps if pos is outside the currently mapped region.
func (s *MmapStream) ensureWindow(pos int64) error {
	if pos < int64(len(s.region)) {
		return nil
	}

	return s.remap(pos + 1)
}

func (s *MmapStream) Read(buf []byte) (int, error) {
	if s.pos >= int64(len(s.region)) {
		s.eof = true

		return 0, io.EOF
	}

	n := copy(buf, s.region[s.pos:])
	s.pos += int64(n)
	if s.pos >= int64(len(s.region)) {
		s.eof = true
	}

	return n, nil
}

func (s *MmapStream) EnsureRead(buf []byte) error { return ensureRead(s, buf) }

func (s *MmapStream) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := s.Read(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

func (s *MmapStream) EOF() bool { return s.eof }

func (s *MmapStream) Write(buf []byte) (int, error) {
	if err := s.ensureWindow(s.pos + int64(len(buf)) - 1); err != nil {
		return 0, err
	}

	n := copy(s.region[s.pos:], buf)
	s.pos += int64(n)
	s.eof = false

	return n, nil
}

func (s *MmapStream) EnsureWrite(buf []byte) error { return ensureWrite(s, buf) }

func (s *MmapStream) WriteByte(b byte) error {
	_, err := s.Write([]byte{b})

	return err
}

// Flush syncs the mapped region to disk.
func (s *MmapStream) Flush() error {
	if s.region == nil {
		return nil
	}
	if err := s.region.Flush(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDelayWrite, err)
	}

	return nil
}

func (s *MmapStream) Tell() uint64 { return uint64(s.pos) }

func (s *MmapStream) Size() uint64 { return uint64(len(s.region)) }

func (s *MmapStream) Seek(pos uint64) error {
	return s.SeekWhence(int64(pos), SeekBegin)
}

func (s *MmapStream) SeekWhence(offset int64, whence Whence) error {
	var base int64
	switch whence {
	case SeekBegin:
		base = 0
	case SeekCurrent:
		base = s.pos
	case SeekEnd:
		base = int64(len(s.region))
	}

	target := base + offset
	if target < 0 {
		return errs.ErrInvalidArgument
	}

	if target >= int64(len(s.region)) {
		if err := s.ensureWindow(target); err != nil {
			return err
		}
	}

	s.pos = target
	s.eof = s.pos >= int64(len(s.region))

	return nil
}

func (s *MmapStream) Rewind() error { return s.Seek(0) }
