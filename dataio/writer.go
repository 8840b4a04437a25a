package dataio

import (
	"math"

	"github.com/narkdb/narkcore/endian"
	"github.com/narkdb/narkcore/format"
	"github.com/narkdb/narkcore/internal/options"
	"github.com/narkdb/narkcore/stream"
	"github.com/narkdb/narkcore/varint"
)

// rawWindowWriter is satisfied by streambuf.Writer: a stream.Output that
// also exposes its unwritten buffer space directly, letting Writer use
// varint's fast path instead of encoding through a temporary array and a
// syscall-sized write.
type rawWindowWriter interface {
	RawWindow() []byte
	Advance(n int)
	MakeRoom(n int) error
}

// Writer encodes primitives and containers to a stream.Output.
type Writer struct {
	out    stream.Output
	engine endian.EndianEngine
	policy format.IntegerPolicy
}

// NewWriter builds a Writer over out, using engine for fixed-width byte
// order and policy to decide whether primitive integers are fixed-width
// or varint-encoded.
func NewWriter(out stream.Output, engine endian.EndianEngine, policy format.IntegerPolicy, opts ...WriterOption) *Writer {
	w := &Writer{out: out, engine: engine, policy: policy}
	_ = options.Apply(w, opts...)

	return w
}

func (w *Writer) writeVarUint64(v uint64) error {
	if rw, ok := w.out.(rawWindowWriter); ok {
		if err := rw.MakeRoom(varint.MaxVarint64Bytes); err == nil {
			n := varint.PutUvarint64(rw.RawWindow(), v)
			rw.Advance(n)

			return nil
		}
	}

	var buf [varint.MaxVarint64Bytes]byte
	n := varint.PutUvarint64(buf[:], v)

	return w.out.EnsureWrite(buf[:n])
}

func (w *Writer) writeVarInt64(v int64) error {
	return w.writeVarUint64(varint.EncodeZigZag64(v))
}

// WriteBool writes a single boolean byte.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.out.WriteByte(1)
	}

	return w.out.WriteByte(0)
}

// WriteUint8 writes a single unsigned byte.
func (w *Writer) WriteUint8(v uint8) error { return w.out.WriteByte(v) }

// WriteInt8 writes a single signed byte.
func (w *Writer) WriteInt8(v int8) error { return w.out.WriteByte(byte(v)) }

// WriteUint16 writes a 16-bit unsigned integer per the Writer's IntegerPolicy.
func (w *Writer) WriteUint16(v uint16) error {
	if w.policy == format.IntegerVar {
		return w.writeVarUint64(uint64(v))
	}

	var buf [2]byte
	w.engine.PutUint16(buf[:], v)

	return w.out.EnsureWrite(buf[:])
}

// WriteInt16 writes a 16-bit signed integer per the Writer's IntegerPolicy.
func (w *Writer) WriteInt16(v int16) error {
	if w.policy == format.IntegerVar {
		return w.writeVarInt64(int64(v))
	}

	return w.WriteUint16(uint16(v))
}

// WriteUint32 writes a 32-bit unsigned integer per the Writer's IntegerPolicy.
func (w *Writer) WriteUint32(v uint32) error {
	if w.policy == format.IntegerVar {
		return w.writeVarUint64(uint64(v))
	}

	var buf [4]byte
	w.engine.PutUint32(buf[:], v)

	return w.out.EnsureWrite(buf[:])
}

// WriteInt32 writes a 32-bit signed integer per the Writer's IntegerPolicy.
func (w *Writer) WriteInt32(v int32) error {
	if w.policy == format.IntegerVar {
		return w.writeVarInt64(int64(v))
	}

	return w.WriteUint32(uint32(v))
}

// WriteUint64 writes a 64-bit unsigned integer per the Writer's IntegerPolicy.
func (w *Writer) WriteUint64(v uint64) error {
	if w.policy == format.IntegerVar {
		return w.writeVarUint64(v)
	}

	var buf [8]byte
	w.engine.PutUint64(buf[:], v)

	return w.out.EnsureWrite(buf[:])
}

// WriteInt64 writes a 64-bit signed integer per the Writer's IntegerPolicy.
func (w *Writer) WriteInt64(v int64) error {
	if w.policy == format.IntegerVar {
		return w.writeVarInt64(v)
	}

	return w.WriteUint64(uint64(v))
}

// WriteFloat32 writes an IEEE 754 single-precision float; float encoding
// is always fixed-width regardless of IntegerPolicy.
func (w *Writer) WriteFloat32(v float32) error {
	var buf [4]byte
	w.engine.PutUint32(buf[:], math.Float32bits(v))

	return w.out.EnsureWrite(buf[:])
}

// WriteFloat64 writes an IEEE 754 double-precision float.
func (w *Writer) WriteFloat64(v float64) error {
	var buf [8]byte
	w.engine.PutUint64(buf[:], math.Float64bits(v))

	return w.out.EnsureWrite(buf[:])
}

// WriteBytes writes a variable-length-prefixed raw byte slice.
func (w *Writer) WriteBytes(b []byte) error {
	if err := w.writeVarUint64(uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}

	return w.out.EnsureWrite(b)
}

// WriteString writes a variable-length-prefixed UTF-8 string.
func (w *Writer) WriteString(s string) error { return w.WriteBytes([]byte(s)) }
