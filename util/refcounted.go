package util

import "sync/atomic"

// RefCounted adds an atomic intrusive refcount to a value of type T: an
// add_ref/release pointer where AddRef increments the count and Release
// decrements it and reports whether the caller holding this release was
// the last one (and so owns cleanup).
type RefCounted[T any] struct {
	Value T

	count atomic.Int64
}

// NewRefCounted wraps v with an initial refcount of 1.
func NewRefCounted[T any](v T) *RefCounted[T] {
	r := &RefCounted[T]{Value: v}
	r.count.Store(1)

	return r
}

// AddRef increments the refcount and returns its new value.
func (r *RefCounted[T]) AddRef() int64 { return r.count.Add(1) }

// Release decrements the refcount and reports whether it reached zero,
// i.e. whether this call was the last reference.
func (r *RefCounted[T]) Release() bool { return r.count.Add(-1) == 0 }

// Count returns the current refcount.
func (r *RefCounted[T]) Count() int64 { return r.count.Load() }

// SharedPtr is a non-intrusive refcounted pointer: the refcount lives
// alongside the value rather than inside it, so it works for types that
// can't carry their own counter (e.g. values from another package).
type SharedPtr[T any] struct {
	shared *sharedState[T]
}

type sharedState[T any] struct {
	value T
	count atomic.Int64
}

// NewSharedPtr returns a SharedPtr owning v with an initial refcount of 1.
func NewSharedPtr[T any](v T) SharedPtr[T] {
	s := &sharedState[T]{value: v}
	s.count.Store(1)

	return SharedPtr[T]{shared: s}
}

// Clone returns a new handle to the same value, incrementing the shared
// refcount.
func (p SharedPtr[T]) Clone() SharedPtr[T] {
	p.shared.count.Add(1)
	return p
}

// Release decrements the shared refcount and reports whether this handle
// was the last one. The caller should not use p after a true result.
func (p SharedPtr[T]) Release() bool { return p.shared.count.Add(-1) == 0 }

// Get returns the shared value.
func (p SharedPtr[T]) Get() T { return p.shared.value }

// Count returns the current shared refcount.
func (p SharedPtr[T]) Count() int64 { return p.shared.count.Load() }
