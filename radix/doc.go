// Package radix implements a length-bucketing-then-character-bucketing
// LSD radix sort: records are first grouped by key length,
// then repeatedly merged longest-group-first into a working list that
// receives one counting-sort pass per remaining character position, from
// the highest position down to zero. Because every pass is a stable
// append-only bucketing, the final order preserves input order among
// records sharing a key.
//
// SortKeyed computes the resulting permutation purely from the key bytes
// and only then reorders the caller's underlying storage, via swap, along
// the permutation's cycle decomposition — the idiomatic stand-in for a
// size-dispatched memcpy when record values aren't raw bytes.
package radix
