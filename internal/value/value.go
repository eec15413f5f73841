package value

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Value is a sealed interface over the typed response values an ESPD
// requirement can carry. Only Bool, Text, Date, Integer, Decimal, and
// Amount implement it. Consumers dispatch with an exhaustive type switch
// instead of runtime type inspection.
type Value interface {
	value() // Sealed - only these types implement it
}

// Bool represents an indicator (yes/no) response.
type Bool bool

func (Bool) value() {}

// MarshalJSON implements json.Marshaler for Bool.
func (v Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(v))
}

// Text represents a free-text, code, URL, or period response.
type Text string

func (Text) value() {}

// MarshalJSON implements json.Marshaler for Text.
func (v Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// Date represents a calendar date response. The time component is always
// midnight UTC; only year, month, and day are significant.
type Date time.Time

func (Date) value() {}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns the date as a time.Time at midnight UTC.
func (v Date) Time() time.Time {
	return time.Time(v)
}

// Equal reports whether two dates represent the same calendar day.
func (v Date) Equal(other Date) bool {
	return time.Time(v).Equal(time.Time(other))
}

// String returns the ISO 8601 representation (YYYY-MM-DD).
func (v Date) String() string {
	return time.Time(v).Format("2006-01-02")
}

// MarshalJSON implements json.Marshaler for Date using ISO 8601.
func (v Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// Integer represents a whole-number response (quantities, years).
// Always int64, never float64.
type Integer int64

func (Integer) value() {}

// MarshalJSON implements json.Marshaler for Integer.
func (v Integer) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(v))
}

// Decimal represents an arbitrary-precision numeric response
// (quantities, ratios, percentages). Binary floats are never used;
// the original scale of the response text is preserved.
type Decimal struct {
	Dec *apd.Decimal
}

func (Decimal) value() {}

// MarshalJSON implements json.Marshaler for Decimal. Decimals are
// serialized as strings to preserve scale exactly.
func (v Decimal) MarshalJSON() ([]byte, error) {
	if v.Dec == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v.Dec.String())
}

// Amount represents a monetary response: a decimal amount paired with an
// ISO 4217 currency code. On assignment an Amount always decomposes into
// two target fields (value and currency); it never lands in a record as
// a single field.
type Amount struct {
	Amount   *apd.Decimal
	Currency string
}

func (Amount) value() {}

// MarshalJSON implements json.Marshaler for Amount.
func (v Amount) MarshalJSON() ([]byte, error) {
	var amount string
	if v.Amount != nil {
		amount = v.Amount.String()
	}
	return json.Marshal(struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}{Amount: amount, Currency: v.Currency})
}

// Marshal serializes any Value to JSON bytes.
// Uses type-switch dispatch to handle all Value types.
func Marshal(v Value) ([]byte, error) {
	switch val := v.(type) {
	case Bool:
		return val.MarshalJSON()
	case Text:
		return val.MarshalJSON()
	case Date:
		return val.MarshalJSON()
	case Integer:
		return val.MarshalJSON()
	case Decimal:
		return val.MarshalJSON()
	case Amount:
		return val.MarshalJSON()
	default:
		return nil, fmt.Errorf("unknown value type: %T", v)
	}
}
