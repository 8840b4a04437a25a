// Package streambuf overlays a fixed-capacity buffer on a stream.Input,
// stream.Output, or stream.Seekable, amortizing syscall-per-call streams like stream.FileStream
// into syscall-per-buffer.
//
// Every buffered type exposes RawWindow (the currently buffered,
// unconsumed/unflushed bytes) and Advance, letting varint's fast-path
// codecs operate directly on the buffer when it is known to hold enough
// trailing bytes to cover the worst case, instead of going through
// Read/Write one byte at a time.
//
// SeekableReader, and SeekableReadWriter while it holds read data,
// reposition within [base, base+buffered] without touching the underlying
// stream; a seek outside that range invalidates the buffer before
// delegating to the underlying Seek. SeekableWriter flushes its buffer on
// every seek.
package streambuf
