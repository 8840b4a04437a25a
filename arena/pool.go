package arena

import "github.com/narkdb/narkcore/valvec"

// NullOffset marks the absence of an allocation: offset-null is ~0,
// since 0 is itself a valid allocation.
const NullOffset uint64 = ^uint64(0)

// DefaultMaxSizeClass is the number of per-size-class free lists a Pool
// keeps before falling back to the skip list.
const DefaultMaxSizeClass = 32

// Pool is an offset-indexed memory pool over a single growable byte
// buffer. It is not safe for concurrent use; callers needing concurrent
// allocation should shard pools or wrap one in a mutex.
type Pool struct {
	buf          *valvec.ByteVec
	alignSize    int
	maxSizeClass int
	freeList     [][]uint64
	large        *skipList
	fragBytes    uint64
}

// NewPool creates a Pool whose every live block is aligned to alignSize
// bytes. alignSize must be a power of two.
func NewPool(alignSize int) *Pool {
	return &Pool{
		buf:          valvec.NewByteVec(0),
		alignSize:    alignSize,
		maxSizeClass: DefaultMaxSizeClass,
		freeList:     make([][]uint64, DefaultMaxSizeClass),
		large:        newSkipList(),
	}
}

// AlignSize returns the pool's alignment.
func (p *Pool) AlignSize() int { return p.alignSize }

// Len returns the size of the backing vector, including both live and
// freed bytes.
func (p *Pool) Len() int { return p.buf.Len() }

// Fragmentation returns the total number of bytes currently held in free
// structures (size-class free lists plus the skip list).
func (p *Pool) Fragmentation() uint64 { return p.fragBytes }

// At returns the byte slice backing the live allocation [offset,
// offset+length).
func (p *Pool) At(offset uint64, length int) []byte {
	return p.buf.Slice(int(offset), int(offset)+length)
}

func (p *Pool) roundUp(n int) int {
	if n <= 0 {
		return 0
	}

	rem := n % p.alignSize
	if rem == 0 {
		return n
	}

	return n + (p.alignSize - rem)
}

// classIndex returns the size-class index for n aligned bytes, and
// whether n fits within a size class at all.
func (p *Pool) classIndex(n int) (int, bool) {
	if n == 0 || n > p.maxSizeClass*p.alignSize {
		return 0, false
	}

	return n/p.alignSize - 1, true
}

func (p *Pool) classSize(idx int) int {
	return (idx + 1) * p.alignSize
}

// Alloc returns an aligned offset to a block of at least request bytes.
func (p *Pool) Alloc(request int) uint64 {
	n := p.roundUp(request)
	if n == 0 {
		return NullOffset
	}

	if cls, ok := p.classIndex(n); ok {
		if stack := p.freeList[cls]; len(stack) > 0 {
			off := stack[len(stack)-1]
			p.freeList[cls] = stack[:len(stack)-1]
			p.fragBytes -= uint64(p.classSize(cls))

			return off
		}

		return p.bump(n)
	}

	if off, size, ok := p.large.removeSmallestAtLeast(n); ok {
		p.fragBytes -= uint64(size)
		if remainder := size - n; remainder > 0 {
			p.sfreeAligned(off+uint64(n), remainder)
		}

		return off
	}

	return p.bump(n)
}

func (p *Pool) bump(n int) uint64 {
	off := uint64(p.buf.Len())
	p.buf.Resize(p.buf.Len() + n)

	return off
}

// SFree returns the block [offset, offset+length) to the pool, rounding
// length up to alignment.
func (p *Pool) SFree(offset uint64, length int) {
	p.sfreeAligned(offset, p.roundUp(length))
}

// sfreeAligned frees a block whose length is already alignment-rounded.
func (p *Pool) sfreeAligned(offset uint64, n int) {
	if n == 0 {
		return
	}

	if offset+uint64(n) == uint64(p.buf.Len()) {
		p.buf.Resize(p.buf.Len() - n)

		return
	}

	if cls, ok := p.classIndex(n); ok {
		p.freeList[cls] = append(p.freeList[cls], offset)
		p.fragBytes += uint64(n)

		return
	}

	p.large.insert(offset, n)
	p.fragBytes += uint64(n)
}

// Realloc3 resizes the live block at offset from oldLen to newLen bytes:
// shrinks in place, grows in place when the block sits at the end of the
// backing vector, and otherwise allocates a fresh block, copies, and
// frees the original.
func (p *Pool) Realloc3(offset uint64, oldLen, newLen int) uint64 {
	oldN := p.roundUp(oldLen)
	newN := p.roundUp(newLen)

	if newN == oldN {
		return offset
	}

	if newN < oldN {
		p.sfreeAligned(offset+uint64(newN), oldN-newN)

		return offset
	}

	if offset+uint64(oldN) == uint64(p.buf.Len()) {
		p.buf.Resize(p.buf.Len() + (newN - oldN))

		return offset
	}

	newOff := p.Alloc(newLen)
	copy(p.At(newOff, oldLen), p.At(offset, oldLen))
	p.sfreeAligned(offset, oldN)

	return newOff
}
