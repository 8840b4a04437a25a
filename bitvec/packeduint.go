package bitvec

// widthMask returns a mask of width set low bits (width in [0, 64]).
func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<uint(width) - 1
}

// GetUint reads a width-bit unsigned integer starting at bit position i.
// width must be in [1, 64] and i+width must not exceed Len().
func (b *BitVector) GetUint(i uint, width int) uint64 {
	words := b.words()
	wordIdx := i / 64
	bitOff := i % 64

	v := words[wordIdx] >> bitOff
	if bitOff+uint(width) > 64 {
		v |= words[wordIdx+1] << (64 - bitOff)
	}

	return v & widthMask(width)
}

// Get2Uints reads two adjacent width-bit unsigned integers starting at
// bit position i: the first occupies [i, i+width), the second
// [i+width, i+2*width).
func (b *BitVector) Get2Uints(i uint, width int) (uint64, uint64) {
	return b.GetUint(i, width), b.GetUint(i+uint(width), width)
}

// SetUint overwrites the width-bit unsigned integer at bit position i with
// val (masked to width bits). i+width must not exceed Len().
func (b *BitVector) SetUint(i uint, width int, val uint64) {
	words := b.words()
	wordIdx := i / 64
	bitOff := i % 64
	mask := widthMask(width)
	val &= mask

	words[wordIdx] = (words[wordIdx] &^ (mask << bitOff)) | (val << bitOff)

	if bitOff+uint(width) > 64 {
		hiBits := uint(width) - (64 - bitOff)
		hiMask := widthMask(int(hiBits))
		words[wordIdx+1] = (words[wordIdx+1] &^ hiMask) | (val >> (64 - bitOff))
	}
}

// SSetUint ("safe set") overwrites the width-bit unsigned integer at bit
// position i, growing the vector first if i+width exceeds the current
// size. New bits introduced by growth other than the written value are
// zero-filled.
func (b *BitVector) SSetUint(i uint, width int, val uint64) {
	end := i + uint(width)
	if end > b.size {
		b.Resize(end)
	}
	b.SetUint(i, width, val)
}

// PushUint appends a width-bit unsigned integer at the current end of the
// vector, growing capacity as needed.
func (b *BitVector) PushUint(width int, val uint64) {
	i := b.size
	b.Resize(i + uint(width))
	b.SetUint(i, width, val)
}
