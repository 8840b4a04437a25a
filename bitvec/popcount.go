package bitvec

import "github.com/narkdb/narkcore/bitops"

// PopCount returns the total number of set bits in [0, Len()).
func (b *BitVector) PopCount() int {
	return b.PopCountRange(0, b.size)
}

// PopCountRange returns the number of set bits in [beg, end). The caller
// is responsible for computing word-aligned bounds when that matters for
// performance; this implementation walks whole words where possible and
// masks the two partial boundary words.
func (b *BitVector) PopCountRange(beg, end uint) int {
	if beg >= end {
		return 0
	}

	words := b.words()
	begWord := beg / 64
	endWord := (end - 1) / 64
	begBit := beg % 64
	endBit := (end - 1) % 64

	if begWord == endWord {
		mask := (^uint64(0) << begBit) & maskInclusive(endBit)

		return bitops.PopCount64(words[begWord] & mask)
	}

	count := bitops.PopCount64(words[begWord] & (^uint64(0) << begBit))
	for w := begWord + 1; w < endWord; w++ {
		count += bitops.PopCount64(words[w])
	}
	count += bitops.PopCount64(words[endWord] & maskInclusive(endBit))

	return count
}

func maskInclusive(bit uint) uint64 {
	if bit == 63 {
		return ^uint64(0)
	}

	return uint64(1)<<(bit+1) - 1
}
