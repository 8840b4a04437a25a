package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

type GzipCompressor struct {
	level int
}

var _ Codec = GzipCompressor{}

// NewGzipCompressor creates a gzip compressor using the default compression
// level.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{level: gzip.DefaultCompression}
}

// NewGzipCompressorLevel creates a gzip compressor at the given level
// (gzip.BestSpeed .. gzip.BestCompression).
func NewGzipCompressorLevel(level int) GzipCompressor {
	return GzipCompressor{level: level}
}

// Compress compresses the input data using gzip.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer

	w, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses gzip-compressed data.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
