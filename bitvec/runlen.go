package bitvec

import "github.com/narkdb/narkcore/bitops"

// OneSeqLen returns the length of the maximal run of 1-bits starting at
// bit i (0 if bit i itself is 0 or i is out of range).
func (b *BitVector) OneSeqLen(i uint) uint { return b.seqLen(i, true) }

// ZeroSeqLen returns the length of the maximal run of 0-bits starting at
// bit i.
func (b *BitVector) ZeroSeqLen(i uint) uint { return b.seqLen(i, false) }

// seqLen walks forward word-by-word from bit i, masking the partial
// leading word first, stopping as soon as a mismatching bit or the
// logical size is reached. Complexity is O(run-length / 64).
func (b *BitVector) seqLen(i uint, value bool) uint {
	if i >= b.size {
		return 0
	}

	words := b.words()
	pos := i
	count := uint(0)

	for pos < b.size {
		wordIdx := pos / 64
		bitOff := pos % 64

		target := words[wordIdx] >> bitOff
		if !value {
			target = ^target
		}

		avail := 64 - bitOff
		remaining := b.size - pos
		limit := avail
		if remaining < limit {
			limit = remaining
		}

		raw := uint(bitops.TrailingZeros64(^target))
		if raw > limit {
			raw = limit
		}

		count += raw
		pos += raw

		if raw < limit {
			break
		}
	}

	return count
}

// OneSeqRevLen returns the length of the maximal run of 1-bits ending at
// bit end-1 (i.e. [end-len, end) are all 1), walking backwards.
func (b *BitVector) OneSeqRevLen(end uint) uint { return b.seqRevLen(end, true) }

// ZeroSeqRevLen returns the length of the maximal run of 0-bits ending at
// bit end-1, walking backwards.
func (b *BitVector) ZeroSeqRevLen(end uint) uint { return b.seqRevLen(end, false) }

// seqRevLen mirrors seqLen but walks backward using leading-zero counts.
func (b *BitVector) seqRevLen(end uint, value bool) uint {
	if end == 0 || end > b.size {
		return 0
	}

	words := b.words()
	pos := end
	count := uint(0)

	for pos > 0 {
		wordIdx := (pos - 1) / 64
		bitOff := (pos - 1) % 64

		shifted := words[wordIdx] << (63 - bitOff)
		target := shifted
		if !value {
			target = ^target
		}

		avail := bitOff + 1
		raw := uint(bitops.LeadingZeros64(^target))
		if raw > avail {
			raw = avail
		}

		count += raw
		pos -= raw

		if raw < avail {
			break
		}
	}

	return count
}
