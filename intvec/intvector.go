package intvec

// Int64Vector is a sequence of signed integers stored as a single int64
// base plus a bit-packed vector of non-negative offsets from that base,
// letting a narrow bit width cover a range anywhere on the int64 line
// rather than only ranges starting at 0.
type Int64Vector struct {
	base   int64
	offset *Uint64Vector
}

// NewInt64Vector constructs a vector of count elements equal to base,
// wide enough to additionally hold values up to base+maxOffset.
func NewInt64Vector(count int, base int64, maxOffset uint64) (*Int64Vector, error) {
	offset, err := NewUint64Vector(count, maxOffset)
	if err != nil {
		return nil, err
	}

	return &Int64Vector{base: base, offset: offset}, nil
}

// BuildInt64Vector scans seq for its minimum, uses that as the base, and
// packs every element as an offset from it.
func BuildInt64Vector(seq []int64) (*Int64Vector, error) {
	if len(seq) == 0 {
		return &Int64Vector{offset: &Uint64Vector{}}, nil
	}

	base := seq[0]
	for _, v := range seq {
		if v < base {
			base = v
		}
	}

	var maxOffset uint64
	for _, v := range seq {
		off := uint64(v - base)
		if off > maxOffset {
			maxOffset = off
		}
	}

	iv, err := NewInt64Vector(len(seq), base, maxOffset)
	if err != nil {
		return nil, err
	}

	for i, v := range seq {
		iv.Set(i, v)
	}

	return iv, nil
}

// Base returns the vector's stored base value.
func (iv *Int64Vector) Base() int64 { return iv.base }

// Width returns the bit width of the packed offset vector.
func (iv *Int64Vector) Width() int { return iv.offset.Width() }

// Len returns the number of elements.
func (iv *Int64Vector) Len() int { return iv.offset.Len() }

// Get returns the element at index i.
func (iv *Int64Vector) Get(i int) int64 {
	return iv.base + int64(iv.offset.Get(i))
}

// Get2 reads the two adjacent elements at index i and i+1.
func (iv *Int64Vector) Get2(i int) (int64, int64) {
	return iv.Get(i), iv.Get(i + 1)
}

// Back returns the last element. Panics if empty.
func (iv *Int64Vector) Back() int64 {
	return iv.Get(iv.Len() - 1)
}

// Set overwrites the element at index i with val. val must not be less
// than Base(), and val-Base() must fit in the vector's current width.
func (iv *Int64Vector) Set(i int, val int64) {
	iv.offset.Set(i, uint64(val-iv.base))
}

// PushBack appends val, growing storage as needed. Panics if val < Base();
// callers needing a wider range must rebuild via BuildInt64Vector.
func (iv *Int64Vector) PushBack(val int64) {
	iv.offset.PushBack(uint64(val - iv.base))
}

// Resize changes the element count, growing storage as needed. Newly
// exposed elements read as Base().
func (iv *Int64Vector) Resize(n int) { iv.offset.Resize(n) }

// Clear resets the element count to 0, keeping storage.
func (iv *Int64Vector) Clear() { iv.offset.Clear() }

// ShrinkToFit releases storage beyond what Len() requires.
func (iv *Int64Vector) ShrinkToFit() { iv.offset.ShrinkToFit() }

// Swap exchanges the contents of iv and other in O(1).
func (iv *Int64Vector) Swap(other *Int64Vector) {
	iv.base, other.base = other.base, iv.base
	iv.offset.Swap(other.offset)
}
