package espd

import (
	"fmt"

	"github.com/espdhub/qualimport/internal/value"
)

// Target is anything a requirement value can be written onto: a fixed-
// field criterion record or a DynamicGroup occurrence. The walker picks
// the target; the assigner never needs to know which kind it holds.
type Target interface {
	SetField(name string, v value.Value) error
}

// Record is the sealed interface over all criterion record variants.
// A record is either fully absent (Exists() false, all fields default)
// or populated by one traversal pass.
type Record interface {
	Target

	// Meta returns the identifying metadata shared by all variants.
	Meta() *Base

	// Exists reports whether the criterion was answered in the source
	// document.
	Exists() bool

	record() // Sealed - only the variants in this package implement it
}

// Unbounded is implemented by record variants that capture occurrences
// of unbounded requirement groups.
type Unbounded interface {
	// NewGroup allocates a fresh occurrence, appends it to the record,
	// and returns it.
	NewGroup() *DynamicGroup
}

// Base carries the identifying metadata of a criterion. It is preserved
// even when the criterion was not answered, so downstream document
// assembly can still reference the criterion.
type Base struct {
	CriterionID    string `json:"criterion_id"`
	Name           string `json:"name"`
	TypeCode       string `json:"type_code"`
	LegislationRef string `json:"legislation_ref,omitempty"`
	Answered       bool   `json:"exists"`
}

// Meta implements Record for every variant embedding Base.
func (b *Base) Meta() *Base { return b }

// Exists implements Record.
func (b *Base) Exists() bool { return b.Answered }

func (b *Base) record() {}

// SelfCleaning captures the reliability measures sub-answer shared by
// several exclusion variants.
type SelfCleaning struct {
	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AvailableElectronically captures the "is this information available
// electronically" sub-answer shared by most variants.
type AvailableElectronically struct {
	Answer *bool   `json:"answer,omitempty"`
	URL    *string `json:"url,omitempty"`
	Code   *string `json:"code,omitempty"`
	Issuer *string `json:"issuer,omitempty"`
}

// UnboundedGroups holds the dynamic occurrences of a record's unbounded
// requirement groups, in traversal order.
type UnboundedGroups struct {
	Groups []*DynamicGroup `json:"unbounded_groups,omitempty"`
}

// NewGroup implements Unbounded.
func (u *UnboundedGroups) NewGroup() *DynamicGroup {
	g := NewDynamicGroup()
	u.Groups = append(u.Groups, g)
	return g
}

// UnknownFieldError reports a definition naming a field that does not
// exist on the target record variant (stale configuration). The fault
// is local: callers log it and skip the single write.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("no field %q on record", e.Field)
}
