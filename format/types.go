// Package format holds small fixed-width enums shared across narkcore's
// packages: compression algorithm tags used by compress and stream, and
// the integer encoding policy used by dataio.
package format

type (
	// CompressionType tags which Compressor/Decompressor a payload was
	// written with.
	CompressionType uint8

	// IntegerPolicy selects how dataio.Writer/Reader encode fixed-width
	// integers: as their raw native bytes, or as a variable-length varint.
	IntegerPolicy uint8
)

const (
	CompressionNone  CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd  CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2    CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4   CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionGzip  CompressionType = 0x5 // CompressionGzip represents gzip compression.
	CompressionBzip2 CompressionType = 0x6 // CompressionBzip2 represents bzip2 compression.

	// IntegerFixed writes integers as their native little/big-endian byte
	// representation, at a fixed width.
	IntegerFixed IntegerPolicy = 0x1
	// IntegerVar writes integers through the varint codec (ZigZag for
	// signed types), trading a branch per value for smaller payloads.
	IntegerVar IntegerPolicy = 0x2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	case CompressionBzip2:
		return "Bzip2"
	default:
		return "Unknown"
	}
}

func (p IntegerPolicy) String() string {
	switch p {
	case IntegerFixed:
		return "Fixed"
	case IntegerVar:
		return "Var"
	default:
		return "Unknown"
	}
}
