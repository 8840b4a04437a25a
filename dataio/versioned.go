package dataio

// WriteVersioned writes a variable-length version tag v followed by
// whatever save writes for that version.
func WriteVersioned(w *Writer, v uint32, save func(*Writer) error) error {
	if err := w.writeVarUint64(uint64(v)); err != nil {
		return err
	}

	return save(w)
}

// ReadVersioned reads the version tag a matching WriteVersioned call
// wrote, then invokes load with it. load is responsible for rejecting a
// loaded version it does not understand (typically with errs.ErrBadVersion)
// and for gating optional trailing fields via Since.
func ReadVersioned(r *Reader, load func(r *Reader, loaded uint32) error) (uint32, error) {
	v, err := r.readVarUint64()
	if err != nil {
		return 0, err
	}

	loaded := uint32(v)

	return loaded, load(r, loaded)
}

// Since reports whether loaded is at least minVersion. Go has no
// preprocessor macros, so this is a plain function callers use to gate
// an optional field's read/write behind a version check.
func Since(minVersion, loaded uint32) bool { return loaded >= minVersion }
