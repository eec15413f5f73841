package importer

import (
	"log/slog"

	"github.com/espdhub/qualimport/internal/espd"
	"github.com/espdhub/qualimport/internal/registry"
	"github.com/espdhub/qualimport/internal/value"
)

// assign writes one parsed value onto its destination field(s). Amounts
// decompose into two writes: the numeric value into the first target
// field and the currency code into the second. Reports whether at least
// one field write succeeded.
//
// The caller has already handled the unmapped (blank first field) case
// and picked the target; assign never distinguishes fixed-field records
// from dynamic occurrences.
func assign(log *slog.Logger, target espd.Target, def registry.RequirementDefinition, v value.Value) bool {
	if amt, ok := v.(value.Amount); ok {
		wroteAmount := setField(log, target, def.Fields[0], value.Decimal{Dec: amt.Amount})
		wroteCurrency := setField(log, target, def.Fields[1], value.Text(amt.Currency))
		return wroteAmount || wroteCurrency
	}
	return setField(log, target, def.Fields[0], v)
}

// setField performs a single field write. A mismatch between the
// definition and the record variant (stale configuration) loses that
// one value, never the surrounding build.
func setField(log *slog.Logger, target espd.Target, field string, v value.Value) bool {
	if err := target.SetField(field, v); err != nil {
		log.Error("field write failed", "field", field, "error", err)
		return false
	}
	return true
}
