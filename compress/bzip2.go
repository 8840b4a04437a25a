package compress

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// Bzip2Compressor compresses using bzip2. Unlike Go's standard library,
// which only exposes a bzip2 reader, dsnet/compress/bzip2 can also write,
// making it the only pack dependency that covers both directions.
type Bzip2Compressor struct {
	level int
}

var _ Codec = Bzip2Compressor{}

// NewBzip2Compressor creates a bzip2 compressor at the default level.
func NewBzip2Compressor() Bzip2Compressor {
	return Bzip2Compressor{level: 6}
}

// NewBzip2CompressorLevel creates a bzip2 compressor at the given level
// (1..9).
func NewBzip2CompressorLevel(level int) Bzip2Compressor {
	return Bzip2Compressor{level: level}
}

// Compress compresses the input data using bzip2.
func (c Bzip2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer

	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: c.level})
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

// Decompress decompresses bzip2-compressed data.
func (c Bzip2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
