package bitops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetClearTestBit(t *testing.T) {
	words := make([]uint64, 2)

	SetBit(words, 0)
	SetBit(words, 63)
	SetBit(words, 64)
	require.True(t, TestBit(words, 0))
	require.True(t, TestBit(words, 63))
	require.True(t, TestBit(words, 64))
	require.False(t, TestBit(words, 1))

	ClearBit(words, 63)
	require.False(t, TestBit(words, 63))
}

func TestRangeSetWithinSingleWord(t *testing.T) {
	words := []uint64{0}
	RangeSet(words, 2, 5, true)
	require.Equal(t, uint64(0b11100), words[0])

	RangeSet(words, 3, 4, false)
	require.Equal(t, uint64(0b10100), words[0])
}

func TestRangeSetAcrossWords(t *testing.T) {
	words := make([]uint64, 3)
	RangeSet(words, 60, 70, true)

	require.Equal(t, uint64(0xF)<<60, words[0])
	require.Equal(t, uint64(0b111111), words[1])
	require.Equal(t, uint64(0), words[2])
}

func TestRangeSetFullWords(t *testing.T) {
	words := make([]uint64, 4)
	RangeSet(words, 0, 256, true)
	for _, w := range words {
		require.Equal(t, ^uint64(0), w)
	}

	RangeSet(words, 64, 192, false)
	require.Equal(t, ^uint64(0), words[0])
	require.Equal(t, uint64(0), words[1])
	require.Equal(t, uint64(0), words[2])
	require.Equal(t, ^uint64(0), words[3])
}

func TestRangeSetEmptyRange(t *testing.T) {
	words := []uint64{0}
	RangeSet(words, 5, 5, true)
	require.Equal(t, uint64(0), words[0])
}

func TestRangeSetLastBitOfWord(t *testing.T) {
	words := []uint64{0, 0}
	RangeSet(words, 0, 64, true)
	require.Equal(t, ^uint64(0), words[0])
	require.Equal(t, uint64(0), words[1])
}
