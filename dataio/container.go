package dataio

import (
	"cmp"
	"slices"
)

// WriteSlice writes a variable-length-prefixed sequence, calling writeElem
// for each element in order. Byte vector, vector, list, and deque all
// share this wire shape.
func WriteSlice[T any](w *Writer, s []T, writeElem func(*Writer, T) error) error {
	if err := w.writeVarUint64(uint64(len(s))); err != nil {
		return err
	}

	for _, v := range s {
		if err := writeElem(w, v); err != nil {
			return err
		}
	}

	return nil
}

// ReadSlice reads a sequence written by WriteSlice.
func ReadSlice[T any](r *Reader, readElem func(*Reader) (T, error)) ([]T, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}

	out := make([]T, n)
	for i := range out {
		v, err := readElem(r)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// WriteMap writes a variable-length-prefixed associative container in
// key order. Go has no built-in ordered map, so WriteMap sorts m's keys
// itself, a documented deviation from iterating a pre-ordered container
// directly.
func WriteMap[K cmp.Ordered, V any](w *Writer, m map[K]V, writeKey func(*Writer, K) error, writeVal func(*Writer, V) error) error {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	if err := w.writeVarUint64(uint64(len(keys))); err != nil {
		return err
	}

	for _, k := range keys {
		if err := writeKey(w, k); err != nil {
			return err
		}
		if err := writeVal(w, m[k]); err != nil {
			return err
		}
	}

	return nil
}

// ReadMap reads an associative container written by WriteMap.
func ReadMap[K cmp.Ordered, V any](r *Reader, readKey func(*Reader) (K, error), readVal func(*Reader) (V, error)) (map[K]V, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}

	m := make(map[K]V, n)
	for i := 0; i < n; i++ {
		k, err := readKey(r)
		if err != nil {
			return nil, err
		}

		v, err := readVal(r)
		if err != nil {
			return nil, err
		}

		m[k] = v
	}

	return m, nil
}

// WriteSet writes a variable-length-prefixed set in key order.
func WriteSet[K cmp.Ordered](w *Writer, s map[K]struct{}, writeKey func(*Writer, K) error) error {
	keys := make([]K, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	if err := w.writeVarUint64(uint64(len(keys))); err != nil {
		return err
	}

	for _, k := range keys {
		if err := writeKey(w, k); err != nil {
			return err
		}
	}

	return nil
}

// ReadSet reads a set written by WriteSet.
func ReadSet[K cmp.Ordered](r *Reader, readKey func(*Reader) (K, error)) (map[K]struct{}, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}

	s := make(map[K]struct{}, n)
	for i := 0; i < n; i++ {
		k, err := readKey(r)
		if err != nil {
			return nil, err
		}

		s[k] = struct{}{}
	}

	return s, nil
}

// Pair is a two-element container: first then second, no length prefix.
type Pair[A, B any] struct {
	First  A
	Second B
}

// WritePair writes p's two fields in order.
func WritePair[A, B any](w *Writer, p Pair[A, B], writeA func(*Writer, A) error, writeB func(*Writer, B) error) error {
	if err := writeA(w, p.First); err != nil {
		return err
	}

	return writeB(w, p.Second)
}

// ReadPair reads a pair written by WritePair.
func ReadPair[A, B any](r *Reader, readA func(*Reader) (A, error), readB func(*Reader) (B, error)) (Pair[A, B], error) {
	a, err := readA(r)
	if err != nil {
		return Pair[A, B]{}, err
	}

	b, err := readB(r)
	if err != nil {
		return Pair[A, B]{}, err
	}

	return Pair[A, B]{First: a, Second: b}, nil
}

// WriteFixedArray writes arr's elements in order with no length prefix.
// Go has no generic fixed-size array type, so the element count is
// implicit in len(arr) and must match on both sides by construction.
func WriteFixedArray[T any](w *Writer, arr []T, writeElem func(*Writer, T) error) error {
	for _, v := range arr {
		if err := writeElem(w, v); err != nil {
			return err
		}
	}

	return nil
}

// ReadFixedArray reads n elements with no length prefix, as written by
// WriteFixedArray.
func ReadFixedArray[T any](r *Reader, n int, readElem func(*Reader) (T, error)) ([]T, error) {
	out := make([]T, n)
	for i := range out {
		v, err := readElem(r)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}
