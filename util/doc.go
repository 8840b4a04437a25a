// Package util collects the small, independent helpers used across
// narkcore that don't warrant a package of their own: a monotonic
// profiling timer, a growable line buffer, a thin INI adapter, an
// immutable string view, reference-counted pointers, and a bounded
// concurrent queue.
package util
