// Package errs centralizes the sentinel errors raised across narkcore.
//
// Go has no exception mechanism, so every distinct fault condition is
// represented here as a package-level error value. Callers compare with
// errors.Is; call sites that need extra context wrap these with
// fmt.Errorf("%w: ...", errs.ErrXxx).
package errs

import "errors"

var (
	// ErrEndOfFile is returned when an ensureRead (or equivalent) call hits
	// end of stream before the requested number of bytes was read.
	ErrEndOfFile = errors.New("narkcore: end of file")

	// ErrOutOfSpace is returned when an ensureWrite call could not write
	// the requested number of bytes (e.g. a fixed-size mem stream is full).
	ErrOutOfSpace = errors.New("narkcore: out of space")

	// ErrDelayWrite is returned when a buffered writer fails to flush
	// previously accepted bytes to the underlying stream.
	ErrDelayWrite = errors.New("narkcore: delayed write failed")

	// ErrOpenFile is returned when opening a backing file fails.
	ErrOpenFile = errors.New("narkcore: open file failed")

	// ErrBrokenPipe is returned when writing to a closed pipe-like stream.
	ErrBrokenPipe = errors.New("narkcore: broken pipe")

	// ErrDataFormat is returned when a codec encounters malformed input,
	// e.g. a varint that never terminates within its maximum byte count.
	ErrDataFormat = errors.New("narkcore: malformed data")

	// ErrInvalidObject is returned when a decoded object fails structural
	// validation (bad tag, inconsistent lengths, ...).
	ErrInvalidObject = errors.New("narkcore: invalid object")

	// ErrSizeTooLarge is returned when a length/size value exceeds what
	// the target representation (or a documented limit) can hold.
	ErrSizeTooLarge = errors.New("narkcore: size value too large")

	// ErrBadVersion is returned when a versioned record's on-wire version
	// is newer than the version the reader understands.
	ErrBadVersion = errors.New("narkcore: unsupported version")

	// ErrNotFoundFactory is returned when a named factory (e.g. a stream
	// or codec constructor looked up by a tag) is unknown.
	ErrNotFoundFactory = errors.New("narkcore: factory not found")

	// ErrInvalidArgument is returned for programmer-visible misuse (e.g.
	// a bit width outside the supported range) that does not fit any of
	// the above categories.
	ErrInvalidArgument = errors.New("narkcore: invalid argument")

	// ErrClosed is returned by operations attempted on an already-closed
	// stream or pool.
	ErrClosed = errors.New("narkcore: use of closed resource")
)
