package stream

import (
	"fmt"
	"io"

	"github.com/narkdb/narkcore/errs"
)

// Input is the read role: Read follows io.Reader's
// contract (returns io.EOF once exhausted), EnsureRead additionally fails
// with errs.ErrEndOfFile on a short read, ReadByte reads a single byte,
// and EOF reports whether the last Read hit the end of the stream.
type Input interface {
	io.Reader
	EnsureRead(buf []byte) error
	ReadByte() (byte, error)
	EOF() bool
}

// Output is the write role: Write follows io.Writer's
// contract, EnsureWrite fails with errs.ErrOutOfSpace on a short write,
// WriteByte writes a single byte, and Flush pushes any buffered bytes to
// the underlying sink.
type Output interface {
	io.Writer
	EnsureWrite(buf []byte) error
	WriteByte(b byte) error
	Flush() error
}

// Whence selects the reference point for Seekable.SeekWhence.
type Whence int

const (
	SeekBegin Whence = iota
	SeekCurrent
	SeekEnd
)

// Seekable is the positioning role
type Seekable interface {
	Tell() uint64
	Size() uint64
	Seek(pos uint64) error
	SeekWhence(offset int64, whence Whence) error
	Rewind() error
}

// ZeroCopyReader exposes a window directly into a stream's backing
// storage for len bytes, avoiding a copy; ok is false if fewer than len
// bytes remain.
type ZeroCopyReader interface {
	ZCRead(n int) (ptr []byte, ok bool)
}

// ZeroCopyWriter exposes a writable window directly into a stream's
// backing storage for len bytes, growing it first if the stream owns its
// storage; ok is false if the stream cannot provide the window.
type ZeroCopyWriter interface {
	ZCWrite(n int) (ptr []byte, ok bool)
}

// ensureRead is the shared EnsureRead implementation: read exactly
// len(buf) bytes via the role's own Read, or fail with errs.ErrEndOfFile.
func ensureRead(in Input, buf []byte) error {
	n, err := io.ReadFull(in, buf)
	if err != nil {
		return fmt.Errorf("%w: read %d of %d bytes: %v", errs.ErrEndOfFile, n, len(buf), err)
	}

	return nil
}

// ensureWrite is the shared EnsureWrite implementation.
func ensureWrite(out Output, buf []byte) error {
	n, err := out.Write(buf)
	if err != nil {
		return err
	}
	if n < len(buf) {
		return fmt.Errorf("%w: wrote %d of %d bytes", errs.ErrOutOfSpace, n, len(buf))
	}

	return nil
}
