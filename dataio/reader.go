package dataio

import (
	"fmt"
	"math"

	"github.com/narkdb/narkcore/endian"
	"github.com/narkdb/narkcore/errs"
	"github.com/narkdb/narkcore/format"
	"github.com/narkdb/narkcore/internal/options"
	"github.com/narkdb/narkcore/stream"
	"github.com/narkdb/narkcore/varint"
)

// rawWindowReader is satisfied by streambuf.Reader: a stream.Input that
// also exposes its unconsumed buffered bytes directly, letting Reader use
// varint's fast path instead of decoding one byte at a time.
type rawWindowReader interface {
	RawWindow() []byte
	Advance(n int)
	Refill() error
}

// Reader decodes primitives and containers from a stream.Input.
type Reader struct {
	in     stream.Input
	engine endian.EndianEngine
	policy format.IntegerPolicy
	maxLen uint64
}

// NewReader builds a Reader over in, using engine for fixed-width byte
// order and policy to decide whether primitive integers are fixed-width
// or varint-encoded.
func NewReader(in stream.Input, engine endian.EndianEngine, policy format.IntegerPolicy, opts ...ReaderOption) *Reader {
	r := &Reader{in: in, engine: engine, policy: policy, maxLen: DefaultMaxContainerLen}
	_ = options.Apply(r, opts...)

	return r
}

func (r *Reader) readVarUint64() (uint64, error) {
	if rw, ok := r.in.(rawWindowReader); ok {
		if err := rw.Refill(); err != nil {
			return 0, err
		}
		if v, n, ok := varint.Uvarint64FastPath(rw.RawWindow()); ok {
			rw.Advance(n)

			return v, nil
		}
	}

	var buf [varint.MaxVarint64Bytes]byte
	for i := range buf {
		b, err := r.in.ReadByte()
		if err != nil {
			return 0, err
		}

		buf[i] = b
		if b < 0x80 {
			v, _ := varint.Uvarint64(buf[:i+1])

			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: varint exceeds %d bytes", errs.ErrDataFormat, varint.MaxVarint64Bytes)
}

func (r *Reader) readVarInt64() (int64, error) {
	u, err := r.readVarUint64()
	if err != nil {
		return 0, err
	}

	return varint.DecodeZigZag64(u), nil
}

// ReadBool reads a single boolean byte.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.in.ReadByte()

	return b != 0, err
}

// ReadUint8 reads a single unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) { return r.in.ReadByte() }

// ReadInt8 reads a single signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.in.ReadByte()

	return int8(b), err
}

// ReadUint16 reads a 16-bit unsigned integer per the Reader's IntegerPolicy.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.policy == format.IntegerVar {
		v, err := r.readVarUint64()

		return uint16(v), err
	}

	var buf [2]byte
	if err := r.in.EnsureRead(buf[:]); err != nil {
		return 0, err
	}

	return r.engine.Uint16(buf[:]), nil
}

// ReadInt16 reads a 16-bit signed integer per the Reader's IntegerPolicy.
func (r *Reader) ReadInt16() (int16, error) {
	if r.policy == format.IntegerVar {
		v, err := r.readVarInt64()

		return int16(v), err
	}

	v, err := r.ReadUint16()

	return int16(v), err
}

// ReadUint32 reads a 32-bit unsigned integer per the Reader's IntegerPolicy.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.policy == format.IntegerVar {
		v, err := r.readVarUint64()

		return uint32(v), err
	}

	var buf [4]byte
	if err := r.in.EnsureRead(buf[:]); err != nil {
		return 0, err
	}

	return r.engine.Uint32(buf[:]), nil
}

// ReadInt32 reads a 32-bit signed integer per the Reader's IntegerPolicy.
func (r *Reader) ReadInt32() (int32, error) {
	if r.policy == format.IntegerVar {
		v, err := r.readVarInt64()

		return int32(v), err
	}

	v, err := r.ReadUint32()

	return int32(v), err
}

// ReadUint64 reads a 64-bit unsigned integer per the Reader's IntegerPolicy.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.policy == format.IntegerVar {
		return r.readVarUint64()
	}

	var buf [8]byte
	if err := r.in.EnsureRead(buf[:]); err != nil {
		return 0, err
	}

	return r.engine.Uint64(buf[:]), nil
}

// ReadInt64 reads a 64-bit signed integer per the Reader's IntegerPolicy.
func (r *Reader) ReadInt64() (int64, error) {
	if r.policy == format.IntegerVar {
		return r.readVarInt64()
	}

	v, err := r.ReadUint64()

	return int64(v), err
}

// ReadFloat32 reads an IEEE 754 single-precision float; float encoding is
// always fixed-width regardless of IntegerPolicy.
func (r *Reader) ReadFloat32() (float32, error) {
	var buf [4]byte
	if err := r.in.EnsureRead(buf[:]); err != nil {
		return 0, err
	}

	return math.Float32frombits(r.engine.Uint32(buf[:])), nil
}

// ReadFloat64 reads an IEEE 754 double-precision float.
func (r *Reader) ReadFloat64() (float64, error) {
	var buf [8]byte
	if err := r.in.EnsureRead(buf[:]); err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(buf[:])), nil
}

// readLen reads a container element count, rejecting anything above
// maxLen to guard against a corrupt or hostile length prefix.
func (r *Reader) readLen() (int, error) {
	n, err := r.readVarUint64()
	if err != nil {
		return 0, err
	}
	if n > r.maxLen {
		return 0, fmt.Errorf("%w: container length %d exceeds limit %d", errs.ErrSizeTooLarge, n, r.maxLen)
	}

	return int(n), nil
}

// ReadBytes reads a variable-length-prefixed raw byte slice.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if err := r.in.EnsureRead(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// ReadString reads a variable-length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}
