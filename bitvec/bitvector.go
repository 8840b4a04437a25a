package bitvec

import (
	"unsafe"

	"github.com/narkdb/narkcore/bitops"
	"github.com/narkdb/narkcore/valvec"
)

const wordBytes = 8 // 64-bit allocation unit

// BitVector is the triple (words-pointer, size-in-bits, capacity-in-bits).
type BitVector struct {
	buf  *valvec.ByteVec // always sized to a multiple of wordBytes
	size uint            // logical size in bits
}

// New creates an empty BitVector.
func New() *BitVector {
	return &BitVector{buf: valvec.NewByteVec(0)}
}

// NewWithCapacity creates an empty BitVector reserved for at least
// capacityBits bits.
func NewWithCapacity(capacityBits uint) *BitVector {
	b := New()
	b.Reserve(capacityBits)

	return b
}

// words returns the current backing storage reinterpreted as a []uint64.
// It must be recomputed after any operation that may reallocate buf.
func (b *BitVector) words() []uint64 {
	data := b.buf.Bytes()
	n := len(data) / wordBytes
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), n)
}

// Len returns the logical size in bits.
func (b *BitVector) Len() uint { return b.size }

// Cap returns the capacity in bits (always a multiple of 64).
func (b *BitVector) Cap() uint { return uint(b.buf.Cap()) * 8 }

// wordCount returns the number of whole+partial words needed for n bits.
func wordCount(n uint) uint {
	return (n + 63) / 64
}

// Reserve grows capacity to at least capacityBits without changing Len().
func (b *BitVector) Reserve(capacityBits uint) {
	neededBytes := int(wordCount(capacityBits)) * wordBytes
	b.buf.Reserve(neededBytes)
}

// growForPush ensures capacity for one more bit beyond size, following the
// documented max(64, 2*old) growth rule.
func (b *BitVector) growForPush() {
	if b.size < b.Cap() {
		return
	}

	newCap := b.Cap() * 2
	if newCap < 64 {
		newCap = 64
	}
	b.Reserve(newCap)
}

// Resize sets the logical size to n bits, zero-filling any newly exposed
// bits and growing capacity as needed.
func (b *BitVector) Resize(n uint) {
	oldSize := b.size
	b.ResizeNoInit(n)
	if n > oldSize {
		bitops.RangeSet(b.words(), oldSize, n, false)
	}
}

// ResizeNoInit sets the logical size to n bits without initializing newly
// exposed bits.
func (b *BitVector) ResizeNoInit(n uint) {
	neededBytes := int(wordCount(n)) * wordBytes
	b.buf.Resize(neededBytes)
	b.size = n
}

// Clear resets the logical size to 0, keeping capacity.
func (b *BitVector) Clear() { b.size = 0 }

// EraseAll is an alias for Clear.
func (b *BitVector) EraseAll() { b.Clear() }

// ShrinkToFit releases any capacity beyond what Len() requires.
func (b *BitVector) ShrinkToFit() {
	neededBytes := int(wordCount(b.size)) * wordBytes
	b.buf.Resize(neededBytes)
	b.buf.ShrinkToFit()
}

// Swap exchanges the contents of b and other in O(1).
func (b *BitVector) Swap(other *BitVector) {
	b.buf.Swap(other.buf)
	b.size, other.size = other.size, b.size
}

// PushBack appends a single bit, growing capacity if needed.
func (b *BitVector) PushBack(bit bool) {
	b.growForPush()
	b.UncheckedPushBack(bit)
}

// UncheckedPushBack appends a single bit assuming capacity was already
// reserved via Reserve.
func (b *BitVector) UncheckedPushBack(bit bool) {
	i := b.size
	if i >= b.Cap() {
		panic("bitvec: UncheckedPushBack without sufficient capacity")
	}
	b.ResizeNoInit(i + 1)
	if bit {
		bitops.SetBit(b.words(), i)
	} else {
		bitops.ClearBit(b.words(), i)
	}
}

// PopBack removes and returns the last bit. Panics if empty.
func (b *BitVector) PopBack() bool {
	if b.size == 0 {
		panic("bitvec: PopBack on empty BitVector")
	}
	v := b.Test(b.size - 1)
	b.size--

	return v
}

// Set sets bit i to 1. i must be < Len().
func (b *BitVector) Set(i uint) { bitops.SetBit(b.words(), i) }

// ClearBit clears bit i to 0. i must be < Len().
func (b *BitVector) ClearBit(i uint) { bitops.ClearBit(b.words(), i) }

// Test returns bit i. i must be < Len().
func (b *BitVector) Test(i uint) bool { return bitops.TestBit(b.words(), i) }

// RangeSet sets or clears every bit in [beg, end).
func (b *BitVector) RangeSet(beg, end uint, value bool) {
	bitops.RangeSet(b.words(), beg, end, value)
}

// RangeSetN sets or clears count bits starting at beg.
func (b *BitVector) RangeSetN(beg, count uint, value bool) {
	b.RangeSet(beg, beg+count, value)
}

// IsAll0 reports whether every bit in [0, Len()) is 0.
func (b *BitVector) IsAll0() bool { return b.isAllConst(false) }

// IsAll1 reports whether every bit in [0, Len()) is 1.
func (b *BitVector) IsAll1() bool { return b.isAllConst(true) }

func (b *BitVector) isAllConst(value bool) bool {
	if b.size == 0 {
		return true
	}

	words := b.words()
	full := b.size / 64
	rem := b.size % 64

	want := uint64(0)
	if value {
		want = ^uint64(0)
	}

	for i := uint(0); i < full; i++ {
		if words[i] != want {
			return false
		}
	}

	if rem == 0 {
		return true
	}

	mask := uint64(1)<<rem - 1
	tail := words[full] & mask
	if value {
		return tail == mask
	}

	return tail == 0
}
