package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/currency"
)

// ResponseType tags the declared value kind of a requirement's answer.
// The tag is carried by a requirement definition and selects the parse
// routine for the raw response text.
type ResponseType string

const (
	// ResponseIndicator is a yes/no answer ("true"/"false").
	ResponseIndicator ResponseType = "INDICATOR"
	// ResponseDescription is free text.
	ResponseDescription ResponseType = "DESCRIPTION"
	// ResponseDate is a calendar date.
	ResponseDate ResponseType = "DATE"
	// ResponseQuantity is an arbitrary-precision decimal quantity.
	ResponseQuantity ResponseType = "QUANTITY"
	// ResponseQuantityInteger is a whole-number quantity.
	ResponseQuantityInteger ResponseType = "QUANTITY_INTEGER"
	// ResponseQuantityYear is a calendar year, parsed as an integer.
	ResponseQuantityYear ResponseType = "QUANTITY_YEAR"
	// ResponsePercentage is a decimal percentage value.
	ResponsePercentage ResponseType = "PERCENTAGE"
	// ResponseAmount is a monetary value with an ISO 4217 currency code,
	// encoded as a single "<number> <code>" token.
	ResponseAmount ResponseType = "AMOUNT"
	// ResponseCode is a code-list entry (country codes and similar).
	ResponseCode ResponseType = "CODE"
	// ResponsePeriod is a free-text period description.
	ResponsePeriod ResponseType = "PERIOD"
	// ResponseURL is a web address.
	ResponseURL ResponseType = "URL"
)

// KnownResponseType reports whether rt is one of the supported tags.
func KnownResponseType(rt ResponseType) bool {
	switch rt {
	case ResponseIndicator, ResponseDescription, ResponseDate,
		ResponseQuantity, ResponseQuantityInteger, ResponseQuantityYear,
		ResponsePercentage, ResponseAmount, ResponseCode,
		ResponsePeriod, ResponseURL:
		return true
	}
	return false
}

// IsAmount reports whether rt produces Amount values, which decompose
// into two target fields on assignment.
func (rt ResponseType) IsAmount() bool {
	return rt == ResponseAmount
}

// dateLayouts lists accepted date formats, ISO 8601 first. The dotted
// layout appears in responses produced by older schema revisions.
var dateLayouts = []string{"2006-01-02", "02.01.2006"}

// Parse converts a raw response string into a typed Value according to
// the response-type tag. It is a pure function; a non-nil error means
// the response is malformed for its declared type and the caller should
// treat the value as absent.
func Parse(rt ResponseType, raw string) (Value, error) {
	raw = strings.TrimSpace(raw)

	switch rt {
	case ResponseIndicator:
		return parseIndicator(raw)

	case ResponseDescription, ResponseCode, ResponsePeriod, ResponseURL:
		return Text(raw), nil

	case ResponseDate:
		return parseDate(raw)

	case ResponseQuantityInteger, ResponseQuantityYear:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse integer %q: %w", raw, err)
		}
		return Integer(n), nil

	case ResponseQuantity, ResponsePercentage:
		dec, err := parseDecimal(raw)
		if err != nil {
			return nil, err
		}
		return Decimal{Dec: dec}, nil

	case ResponseAmount:
		return parseAmount(raw)

	default:
		return nil, fmt.Errorf("unknown response type %q", rt)
	}
}

func parseIndicator(raw string) (Value, error) {
	switch strings.ToLower(raw) {
	case "true", "1":
		return Bool(true), nil
	case "false", "0":
		return Bool(false), nil
	}
	return nil, fmt.Errorf("parse indicator: %q is not a boolean token", raw)
}

func parseDate(raw string) (Value, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Date(t), nil
		}
	}
	return nil, fmt.Errorf("parse date: %q does not match any accepted layout", raw)
}

func parseDecimal(raw string) (*apd.Decimal, error) {
	dec, _, err := new(apd.Decimal).SetString(raw)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", raw, err)
	}
	if dec.Form != apd.Finite {
		return nil, fmt.Errorf("parse decimal %q: not a finite number", raw)
	}
	return dec, nil
}

// parseAmount splits a "<number> <currency>" token into its components.
// The currency code is validated against ISO 4217.
func parseAmount(raw string) (Value, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return nil, fmt.Errorf("parse amount: %q is not of the form \"<number> <currency>\"", raw)
	}

	dec, err := parseDecimal(parts[0])
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}

	unit, err := currency.ParseISO(parts[1])
	if err != nil {
		return nil, fmt.Errorf("parse amount: invalid currency code %q: %w", parts[1], err)
	}

	return Amount{Amount: dec, Currency: unit.String()}, nil
}
