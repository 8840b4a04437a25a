package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/narkdb/narkcore/errs"
	"github.com/pierrec/lz4/v4"
)

// compressReaderStream adapts any io.ReadCloser produced by a compression
// library into the Input role; every Gzip/Bzip2/Zstd/S2/LZ4 reader stream
// below is a thin constructor around it.
type compressReaderStream struct {
	r       io.Reader
	closeFn func() error
	eof     bool
}

var _ Input = (*compressReaderStream)(nil)

func (s *compressReaderStream) Read(buf []byte) (int, error) {
	n, err := s.r.Read(buf)
	if errors.Is(err, io.EOF) {
		s.eof = true
	}

	return n, err
}

func (s *compressReaderStream) EnsureRead(buf []byte) error { return ensureRead(s, buf) }

func (s *compressReaderStream) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := s.Read(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

func (s *compressReaderStream) EOF() bool { return s.eof }

// Close releases any resources the underlying decompressor holds.
func (s *compressReaderStream) Close() error {
	if s.closeFn != nil {
		return s.closeFn()
	}

	return nil
}

// compressWriterStream adapts any io.Writer produced by a compression
// library into the Output role. Flush calls the library's own Flush
// where one exists; Close must be called once writing is done to emit
// the trailing frame/checksum.
type compressWriterStream struct {
	w     io.Writer
	flush func() error
	close func() error
}

var _ Output = (*compressWriterStream)(nil)

func (s *compressWriterStream) Write(buf []byte) (int, error) { return s.w.Write(buf) }

func (s *compressWriterStream) EnsureWrite(buf []byte) error { return ensureWrite(s, buf) }

func (s *compressWriterStream) WriteByte(b byte) error {
	_, err := s.Write([]byte{b})

	return err
}

func (s *compressWriterStream) Flush() error {
	if s.flush == nil {
		return nil
	}
	if err := s.flush(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDelayWrite, err)
	}

	return nil
}

// Close finalizes the compressed stream (trailer, checksum).
func (s *compressWriterStream) Close() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}

// NewGzipReaderStream wraps in as a gzip-decompressing Input.
func NewGzipReaderStream(in Input) (*compressReaderStream, error) {
	r, err := gzip.NewReader(in)
	if err != nil {
		return nil, err
	}

	return &compressReaderStream{r: r, closeFn: r.Close}, nil
}

// NewGzipWriterStream wraps out as a gzip-compressing Output.
func NewGzipWriterStream(out Output) *compressWriterStream {
	w := gzip.NewWriter(out)

	return &compressWriterStream{w: w, flush: w.Flush, close: w.Close}
}

// NewBzip2ReaderStream wraps in as a bzip2-decompressing Input.
func NewBzip2ReaderStream(in Input) (*compressReaderStream, error) {
	r, err := bzip2.NewReader(in, nil)
	if err != nil {
		return nil, err
	}

	return &compressReaderStream{r: r, closeFn: r.Close}, nil
}

// NewBzip2WriterStream wraps out as a bzip2-compressing Output.
func NewBzip2WriterStream(out Output) (*compressWriterStream, error) {
	w, err := bzip2.NewWriter(out, nil)
	if err != nil {
		return nil, err
	}

	return &compressWriterStream{w: w, close: w.Close}, nil
}

// NewZstdReaderStream wraps in as a zstd-decompressing Input.
func NewZstdReaderStream(in Input) (*compressReaderStream, error) {
	r, err := zstd.NewReader(in)
	if err != nil {
		return nil, err
	}

	return &compressReaderStream{r: r, closeFn: func() error { r.Close(); return nil }}, nil
}

// NewZstdWriterStream wraps out as a zstd-compressing Output.
func NewZstdWriterStream(out Output) (*compressWriterStream, error) {
	w, err := zstd.NewWriter(out)
	if err != nil {
		return nil, err
	}

	return &compressWriterStream{w: w, flush: w.Flush, close: w.Close}, nil
}

// NewS2ReaderStream wraps in as an s2-decompressing Input.
func NewS2ReaderStream(in Input) *compressReaderStream {
	return &compressReaderStream{r: s2.NewReader(in)}
}

// NewS2WriterStream wraps out as an s2-compressing Output.
func NewS2WriterStream(out Output) *compressWriterStream {
	w := s2.NewWriter(out)

	return &compressWriterStream{w: w, flush: w.Flush, close: w.Close}
}

// NewLZ4ReaderStream wraps in as an lz4-decompressing Input.
func NewLZ4ReaderStream(in Input) *compressReaderStream {
	return &compressReaderStream{r: lz4.NewReader(in)}
}

// NewLZ4WriterStream wraps out as an lz4-compressing Output.
func NewLZ4WriterStream(out Output) *compressWriterStream {
	w := lz4.NewWriter(out)

	return &compressWriterStream{w: w, flush: w.Flush, close: w.Close}
}
