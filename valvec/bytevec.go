package valvec

// DefaultGrowChunk is the fixed amount ByteVec grows by while its capacity
// is still small; above growThresholdBytes it instead grows by a quarter
// of its current capacity, the same two-regime growth strategy
// internal/pool's scratch buffers use.
const (
	DefaultGrowChunk   = 4096
	growThresholdBytes = 4 * DefaultGrowChunk
)

// ByteVec is a contiguous growable byte buffer: the triple
// (data-pointer, logical-size, capacity).
//
// The zero value is a valid, empty ByteVec with capacity 0. Invariants:
// 0 <= Len() <= Cap(); shrinking (Resize or ResizeNoInit to a smaller
// length) is non-destructive and never reallocates.
type ByteVec struct {
	data []byte
}

// NewByteVec creates a ByteVec with the given initial capacity.
func NewByteVec(capacity int) *ByteVec {
	if capacity < 0 {
		capacity = 0
	}

	return &ByteVec{data: make([]byte, 0, capacity)}
}

// Bytes returns the logical contents. The returned slice aliases the
// ByteVec's storage and is invalidated by any call that reallocates.
func (v *ByteVec) Bytes() []byte { return v.data }

// Len returns the logical size in bytes.
func (v *ByteVec) Len() int { return len(v.data) }

// Cap returns the current capacity in bytes.
func (v *ByteVec) Cap() int { return cap(v.data) }

// Empty reports whether Len() == 0.
func (v *ByteVec) Empty() bool { return len(v.data) == 0 }

// At returns the byte at index i, panicking if i is out of [0, Len()).
func (v *ByteVec) At(i int) byte { return v.data[i] }

// Set overwrites the byte at index i.
func (v *ByteVec) Set(i int, b byte) { v.data[i] = b }

// Slice returns the sub-slice [beg, end) of the logical contents.
func (v *ByteVec) Slice(beg, end int) []byte { return v.data[beg:end] }

// Clear resets the logical size to 0 without releasing capacity.
func (v *ByteVec) Clear() { v.data = v.data[:0] }

// EraseAll is an alias for Clear.
func (v *ByteVec) EraseAll() { v.Clear() }

// Reserve ensures the backing array can hold at least n bytes without
// reallocating, growing if necessary. It does not change Len().
func (v *ByteVec) Reserve(n int) {
	if cap(v.data) >= n {
		return
	}

	newData := make([]byte, len(v.data), n)
	copy(newData, v.data)
	v.data = newData
}

// Grow ensures extraBytes more bytes can be appended without a further
// reallocation, using the fixed-chunk-then-fractional growth strategy.
func (v *ByteVec) Grow(extraBytes int) {
	available := cap(v.data) - len(v.data)
	if available >= extraBytes {
		return
	}

	growBy := DefaultGrowChunk
	if cap(v.data) > growThresholdBytes {
		growBy = cap(v.data) / 4
	}
	if growBy < extraBytes {
		growBy = extraBytes
	}

	v.Reserve(len(v.data) + growBy)
}

// Resize sets the logical size to n, growing and zero-filling new bytes
// as needed.
func (v *ByteVec) Resize(n int) {
	if n <= len(v.data) {
		v.data = v.data[:n]

		return
	}

	v.Grow(n - len(v.data))
	old := len(v.data)
	v.data = v.data[:n]
	for i := old; i < n; i++ {
		v.data[i] = 0
	}
}

// ResizeNoInit sets the logical size to n, growing as needed but leaving
// newly exposed bytes uninitialized (their previous contents, or zero for
// freshly allocated memory).
func (v *ByteVec) ResizeNoInit(n int) {
	if n <= len(v.data) {
		v.data = v.data[:n]

		return
	}

	v.Grow(n - len(v.data))
	v.data = v.data[:n]
}

// Append appends data to the end of the vector, growing as needed.
func (v *ByteVec) Append(data []byte) {
	v.Grow(len(data))
	v.data = append(v.data, data...)
}

// PushByte appends a single byte.
func (v *ByteVec) PushByte(b byte) {
	v.Grow(1)
	v.data = append(v.data, b)
}

// PopByte removes and returns the last byte. Panics if empty.
func (v *ByteVec) PopByte() byte {
	n := len(v.data) - 1
	b := v.data[n]
	v.data = v.data[:n]

	return b
}

// ShrinkToFit reallocates the backing array to exactly Len() bytes.
func (v *ByteVec) ShrinkToFit() {
	if cap(v.data) == len(v.data) {
		return
	}

	newData := make([]byte, len(v.data))
	copy(newData, v.data)
	v.data = newData
}

// Swap exchanges the contents of v and other in O(1).
func (v *ByteVec) Swap(other *ByteVec) {
	v.data, other.data = other.data, v.data
}

// TakeBytes returns the backing array and resets v to the null state
// (Cap() == 0): moving out leaves the source null. The caller owns the
// returned slice.
func (v *ByteVec) TakeBytes() []byte {
	data := v.data
	v.data = nil

	return data
}
