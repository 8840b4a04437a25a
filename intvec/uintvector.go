package intvec

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/narkdb/narkcore/errs"
	"github.com/narkdb/narkcore/valvec"
)

// MaxWidth is the largest bit width intvec supports on a 64-bit host:
// above this, an unaligned word load can overflow past the allocation.
const MaxWidth = 58

const (
	wordSize  = 8  // bytes in the natural machine word used for unaligned loads
	padExtra  = wordSize + 16
	padToSize = 16
)

// Uint64Vector is a sequence of unsigned integers packed at a fixed bit
// width.
type Uint64Vector struct {
	buf   *valvec.ByteVec
	width int
	mask  uint64
	count int
}

// storageBytes returns the number of bytes to allocate for count elements
// of the given width, including the unaligned-load overallocation.
func storageBytes(count, width int) int {
	if count == 0 || width == 0 {
		return 0
	}

	bits := count * width
	needed := (bits + 7) / 8
	total := needed + padExtra

	return roundUp(total, padToSize)
}

func roundUp(n, multiple int) int {
	if n%multiple == 0 {
		return n
	}

	return n + (multiple - n%multiple)
}

// BitsNeeded returns the minimum bit width needed to represent every
// value in [0, maxValue].
func BitsNeeded(maxValue uint64) int {
	return bits.Len64(maxValue)
}

// NewUint64Vector constructs a vector of count zero-valued elements wide
// enough to hold maxValue.
func NewUint64Vector(count int, maxValue uint64) (*Uint64Vector, error) {
	width := BitsNeeded(maxValue)
	if width > MaxWidth {
		return nil, fmt.Errorf("%w: bit width %d exceeds maximum %d", errs.ErrInvalidArgument, width, MaxWidth)
	}

	v := &Uint64Vector{
		buf:   valvec.NewByteVec(storageBytes(count, width)),
		width: width,
		mask:  widthMask(width),
		count: count,
	}
	v.buf.Resize(storageBytes(count, width))

	return v, nil
}

// BuildUint64Vector scans seq to determine the minimum bit width and
// returns a vector holding its values.
func BuildUint64Vector(seq []uint64) (*Uint64Vector, error) {
	var maxValue uint64
	for _, v := range seq {
		if v > maxValue {
			maxValue = v
		}
	}

	v, err := NewUint64Vector(len(seq), maxValue)
	if err != nil {
		return nil, err
	}

	for i, val := range seq {
		v.Set(i, val)
	}

	return v, nil
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<uint(width) - 1
}

// Width returns the fixed bit width of every element.
func (v *Uint64Vector) Width() int { return v.width }

// Len returns the number of elements.
func (v *Uint64Vector) Len() int { return v.count }

// Bytes returns the raw packed storage (read-only view).
func (v *Uint64Vector) Bytes() []byte { return v.buf.Bytes() }

// Get returns the element at index i.
func (v *Uint64Vector) Get(i int) uint64 {
	if v.width == 0 {
		return 0
	}

	data := v.buf.Bytes()
	bitPos := i * v.width
	byteOff := bitPos / 8
	shift := uint(bitPos % 8)

	lo := binary.LittleEndian.Uint64(data[byteOff : byteOff+8])
	lo >>= shift

	if shift+uint(v.width) > 64 {
		extra := uint64(data[byteOff+8])
		lo |= extra << (64 - shift)
	}

	return lo & v.mask
}

// Get2 reads the two adjacent elements at index i and i+1.
func (v *Uint64Vector) Get2(i int) (uint64, uint64) {
	return v.Get(i), v.Get(i + 1)
}

// Back returns the last element. Panics if empty.
func (v *Uint64Vector) Back() uint64 {
	return v.Get(v.count - 1)
}

// checkFits panics if val does not fit in the vector's current width;
// a fixed-width vector never silently truncates a stored value.
func (v *Uint64Vector) checkFits(val uint64) {
	if val&^v.mask != 0 {
		panic(fmt.Sprintf("intvec: value %d does not fit in %d-bit width", val, v.width))
	}
}

// Set overwrites the element at index i with val. Panics if val does not
// fit in Width() bits.
func (v *Uint64Vector) Set(i int, val uint64) {
	v.checkFits(val)

	if v.width == 0 {
		return
	}

	data := v.buf.Bytes()
	bitPos := i * v.width
	byteOff := bitPos / 8
	shift := uint(bitPos % 8)

	word := binary.LittleEndian.Uint64(data[byteOff : byteOff+8])
	loMask := v.mask << shift
	word = (word &^ loMask) | (val << shift)
	binary.LittleEndian.PutUint64(data[byteOff:byteOff+8], word)

	if shift+uint(v.width) > 64 {
		extraBits := shift + uint(v.width) - 64
		hiPart := byte(val >> (64 - shift))
		hiMask := byte(uint(1)<<extraBits - 1)
		data[byteOff+8] = (data[byteOff+8] &^ hiMask) | (hiPart & hiMask)
	}
}

// PushBack appends val, growing storage as needed. Panics if val does not
// fit in Width() bits; construct with a large enough max-value up front,
// or rebuild via BuildUint64Vector, to hold a wider range.
func (v *Uint64Vector) PushBack(val uint64) {
	v.checkFits(val)

	v.Resize(v.count + 1)
	v.Set(v.count-1, val)
}

// Resize changes the element count, growing storage as needed. Newly
// exposed elements read as 0.
func (v *Uint64Vector) Resize(n int) {
	oldCount := v.count
	needed := storageBytes(n, v.width)

	v.buf.Resize(needed)
	v.count = n

	if v.width > 0 {
		for i := oldCount; i < n; i++ {
			v.Set(i, 0)
		}
	}
}

// Clear resets the element count to 0, keeping storage.
func (v *Uint64Vector) Clear() { v.count = 0 }

// ShrinkToFit releases storage beyond what Len() requires.
func (v *Uint64Vector) ShrinkToFit() {
	v.buf.Resize(storageBytes(v.count, v.width))
	v.buf.ShrinkToFit()
}

// Swap exchanges the contents of v and other in O(1).
func (v *Uint64Vector) Swap(other *Uint64Vector) {
	v.buf.Swap(other.buf)
	v.width, other.width = other.width, v.width
	v.mask, other.mask = other.mask, v.mask
	v.count, other.count = other.count, v.count
}
