package dataio

import (
	"reflect"
	"sync"
)

// Dumpable is implemented by types that assert their own memory layout is
// trivially serializable: every field is a fixed-width primitive (or an
// array/struct of such), laid out with no padding, so IsDumpable can treat
// a value as a single fixed-size block instead of walking it field by
// field. Go has no SFINAE-style trait detection, so this
// marker interface is the explicit opt-in; RegisterDumpable and the
// reflective fallback below cover types that can't implement it directly.
type Dumpable interface {
	dumpableMarker()
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]bool{}
)

// RegisterDumpable marks T as trivially dumpable for IsDumpable, for
// types — generated code, external packages — that cannot implement the
// Dumpable marker interface themselves.
func RegisterDumpable[T any]() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeFor[T]()] = true
}

// IsDumpable reports whether T's values can be treated as a single
// fixed-size, memcpy-able block. It checks, in order: whether T
// implements Dumpable, whether T was registered via RegisterDumpable, and
// finally a reflective structural check (every field is itself dumpable
// and the field sizes sum to exactly the struct's own size, i.e. no
// compiler-inserted padding). The reflective path is for cold paths and
// diagnostics; hot-path callers should implement Dumpable directly.
func IsDumpable[T any]() bool {
	var zero T
	if _, ok := any(zero).(Dumpable); ok {
		return true
	}

	t := reflect.TypeFor[T]()

	registryMu.RLock()
	v, cached := registry[t]
	registryMu.RUnlock()
	if cached {
		return v
	}

	dumpable := isStructurallyDumpable(t)

	registryMu.Lock()
	registry[t] = dumpable
	registryMu.Unlock()

	return dumpable
}

func isStructurallyDumpable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Uint8,
		reflect.Int16, reflect.Uint16,
		reflect.Int32, reflect.Uint32,
		reflect.Int64, reflect.Uint64,
		reflect.Int, reflect.Uint,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Array:
		return isStructurallyDumpable(t.Elem())
	case reflect.Struct:
		var sum uintptr
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !isStructurallyDumpable(f.Type) {
				return false
			}

			sum += f.Type.Size()
		}

		return sum == t.Size()
	default:
		return false
	}
}
