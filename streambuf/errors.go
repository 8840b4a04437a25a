package streambuf

import (
	"fmt"

	"github.com/narkdb/narkcore/errs"
)

func wrapEOF(got, want int) error {
	return fmt.Errorf("%w: read %d of %d bytes", errs.ErrEndOfFile, got, want)
}

func wrapOutOfSpace(got, want int) error {
	return fmt.Errorf("%w: wrote %d of %d bytes", errs.ErrOutOfSpace, got, want)
}
