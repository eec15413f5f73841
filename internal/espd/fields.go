package espd

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/espdhub/qualimport/internal/value"
)

// fieldTable maps configured field names to typed setters for one
// record variant. Tables are package-level values built once; SetField
// on a variant is a lookup plus one typed write.
type fieldTable[T any] map[string]func(*T, value.Value) error

func applyField[T any](tbl fieldTable[T], rec *T, name string, v value.Value) error {
	set, ok := tbl[name]
	if !ok {
		return &UnknownFieldError{Field: name}
	}
	return set(rec, v)
}

// The set* helpers coerce a Value into the concrete field type. A kind
// mismatch means the definition's response type disagrees with the
// record field; the caller logs and skips the write.

func setBool(dst **bool, v value.Value) error {
	b, ok := v.(value.Bool)
	if !ok {
		return typeMismatch("indicator", v)
	}
	val := bool(b)
	*dst = &val
	return nil
}

func setText(dst **string, v value.Value) error {
	t, ok := v.(value.Text)
	if !ok {
		return typeMismatch("text", v)
	}
	val := string(t)
	*dst = &val
	return nil
}

func setDate(dst **value.Date, v value.Value) error {
	d, ok := v.(value.Date)
	if !ok {
		return typeMismatch("date", v)
	}
	*dst = &d
	return nil
}

func setInt(dst **int64, v value.Value) error {
	n, ok := v.(value.Integer)
	if !ok {
		return typeMismatch("integer", v)
	}
	val := int64(n)
	*dst = &val
	return nil
}

func setDecimal(dst **apd.Decimal, v value.Value) error {
	d, ok := v.(value.Decimal)
	if !ok {
		return typeMismatch("decimal", v)
	}
	*dst = d.Dec
	return nil
}

func typeMismatch(want string, v value.Value) error {
	return fmt.Errorf("field expects a %s response, got %T", want, v)
}
