package importer

import (
	"errors"
	"fmt"
)

// UnsupportedTypeError is the only fatal fault in a criterion build: the
// type code is outside the dispatch table, so the document was produced
// against a schema this engine cannot interpret. Per-field lookup misses
// and parse failures are recovered locally and never surface as errors.
type UnsupportedTypeError struct {
	TypeCode    string
	Name        string
	CriterionID string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("could not build criterion %q with id %q having type code %q",
		e.Name, e.CriterionID, e.TypeCode)
}

// IsUnsupportedType reports whether err is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	var ute *UnsupportedTypeError
	return errors.As(err, &ute)
}
