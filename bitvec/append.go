package bitvec

// Append copies all bits of other onto the end of b.
func (b *BitVector) Append(other *BitVector) {
	b.AppendRange(other, 0, other.size)
}

// AppendRange copies the sub-range [beg, end) of other onto the end of b.
func (b *BitVector) AppendRange(other *BitVector, beg, end uint) {
	if beg >= end {
		return
	}

	n := end - beg
	start := b.size
	b.Resize(start + n)

	for i := uint(0); i < n; i++ {
		if other.Test(beg + i) {
			b.Set(start + i)
		}
	}
}

// BlockOr ORs the word range [wordBeg, wordEnd) of src into the same word
// range of b. Both vectors must have at least wordEnd words of capacity.
func (b *BitVector) BlockOr(src *BitVector, wordBeg, wordEnd uint) {
	bw := b.words()
	sw := src.words()
	for i := wordBeg; i < wordEnd; i++ {
		bw[i] |= sw[i]
	}
}

// BlockAnd ANDs the word range [wordBeg, wordEnd) of src into the same
// word range of b.
func (b *BitVector) BlockAnd(src *BitVector, wordBeg, wordEnd uint) {
	bw := b.words()
	sw := src.words()
	for i := wordBeg; i < wordEnd; i++ {
		bw[i] &= sw[i]
	}
}

func minWords(a, b *BitVector) uint {
	aw := uint(len(a.words()))
	bw := uint(len(b.words()))
	if aw < bw {
		return aw
	}

	return bw
}

// Or performs b |= other over the word-count minimum of the two vectors.
func (b *BitVector) Or(other *BitVector) {
	n := minWords(b, other)
	bw := b.words()
	ow := other.words()
	for i := uint(0); i < n; i++ {
		bw[i] |= ow[i]
	}
}

// And performs b &= other over the word-count minimum of the two vectors.
func (b *BitVector) And(other *BitVector) {
	n := minWords(b, other)
	bw := b.words()
	ow := other.words()
	for i := uint(0); i < n; i++ {
		bw[i] &= ow[i]
	}
}

// Xor performs b ^= other over the word-count minimum of the two vectors.
func (b *BitVector) Xor(other *BitVector) {
	n := minWords(b, other)
	bw := b.words()
	ow := other.words()
	for i := uint(0); i < n; i++ {
		bw[i] ^= ow[i]
	}
}

// AndNot performs b -= other (b &= ^other) over the word-count minimum of
// the two vectors.
func (b *BitVector) AndNot(other *BitVector) {
	n := minWords(b, other)
	bw := b.words()
	ow := other.words()
	for i := uint(0); i < n; i++ {
		bw[i] &^= ow[i]
	}
}
