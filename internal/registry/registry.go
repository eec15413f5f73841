package registry

import (
	"fmt"

	"github.com/espdhub/qualimport/internal/value"
)

// RequirementDefinition describes one atomic sub-question of a criterion:
// how its raw response is typed and which record field(s) receive it.
// Immutable once loaded.
type RequirementDefinition struct {
	// ID is the canonical requirement identifier.
	ID string
	// Description is the human-readable question text.
	Description string
	// Response selects the parse routine for the raw response.
	Response value.ResponseType
	// Fields lists the destination field names, in order. Exactly two
	// entries for amount-typed requirements (value, currency code), one
	// otherwise. An empty first entry means the requirement is not
	// mapped to any record field.
	Fields []string
}

// GroupDefinition describes a requirement group. Unbounded groups may
// occur any number of times per criterion; each occurrence is captured
// as an independent dynamic record.
type GroupDefinition struct {
	ID        string
	Unbounded bool
}

// Set is a loaded definition set prior to indexing: the requirement and
// group definitions plus the alias tables mapping pre-2016.12 ids to
// their canonical counterparts.
type Set struct {
	Requirements []RequirementDefinition
	Groups       []GroupDefinition

	// RequirementAliases maps legacy requirement ids to canonical ids.
	RequirementAliases map[string]string
	// GroupAliases maps legacy group ids to canonical ids.
	GroupAliases map[string]string
}

// Registry is the process-wide lookup from requirement and group ids to
// their definitions. It is built once at startup and read-only afterwards,
// so lookups are safe from any goroutine without locking.
type Registry struct {
	requirements map[string]RequirementDefinition
	groups       map[string]GroupDefinition
	reqAliases   map[string]string
	groupAliases map[string]string
}

// New indexes a definition set into a Registry.
//
// It validates that ids are unique, that alias targets exist, that every
// response type is known, and that the field list shape matches the
// response type (two fields for amounts, one otherwise).
func New(set Set) (*Registry, error) {
	r := &Registry{
		requirements: make(map[string]RequirementDefinition, len(set.Requirements)),
		groups:       make(map[string]GroupDefinition, len(set.Groups)),
		reqAliases:   make(map[string]string, len(set.RequirementAliases)),
		groupAliases: make(map[string]string, len(set.GroupAliases)),
	}

	for _, def := range set.Requirements {
		if def.ID == "" {
			return nil, fmt.Errorf("requirement definition with empty id (%q)", def.Description)
		}
		if _, dup := r.requirements[def.ID]; dup {
			return nil, fmt.Errorf("duplicate requirement id %q", def.ID)
		}
		if !value.KnownResponseType(def.Response) {
			return nil, fmt.Errorf("requirement %q: unknown response type %q", def.ID, def.Response)
		}
		if err := validateFields(def); err != nil {
			return nil, err
		}
		r.requirements[def.ID] = def
	}

	for _, def := range set.Groups {
		if def.ID == "" {
			return nil, fmt.Errorf("group definition with empty id")
		}
		if _, dup := r.groups[def.ID]; dup {
			return nil, fmt.Errorf("duplicate group id %q", def.ID)
		}
		r.groups[def.ID] = def
	}

	for legacy, canonical := range set.RequirementAliases {
		if _, ok := r.requirements[canonical]; !ok {
			return nil, fmt.Errorf("requirement alias %q points at unknown id %q", legacy, canonical)
		}
		if _, clash := r.requirements[legacy]; clash {
			return nil, fmt.Errorf("requirement alias %q clashes with a canonical id", legacy)
		}
		r.reqAliases[legacy] = canonical
	}

	for legacy, canonical := range set.GroupAliases {
		if _, ok := r.groups[canonical]; !ok {
			return nil, fmt.Errorf("group alias %q points at unknown id %q", legacy, canonical)
		}
		if _, clash := r.groups[legacy]; clash {
			return nil, fmt.Errorf("group alias %q clashes with a canonical id", legacy)
		}
		r.groupAliases[legacy] = canonical
	}

	return r, nil
}

func validateFields(def RequirementDefinition) error {
	switch {
	case def.Response.IsAmount():
		if len(def.Fields) != 2 {
			return fmt.Errorf("requirement %q: amount response needs exactly 2 target fields, has %d",
				def.ID, len(def.Fields))
		}
	case len(def.Fields) != 1:
		return fmt.Errorf("requirement %q: needs exactly 1 target field, has %d", def.ID, len(def.Fields))
	}
	return nil
}

// FindRequirement looks up a requirement definition by id, transparently
// resolving legacy ids to their canonical counterparts. The aliased
// result reports whether the given id was a legacy alias. Absence
// (ok=false) is a normal outcome, not an error.
func (r *Registry) FindRequirement(id string) (def RequirementDefinition, aliased, ok bool) {
	if canonical, isAlias := r.reqAliases[id]; isAlias {
		id = canonical
		aliased = true
	}
	def, ok = r.requirements[id]
	return def, aliased, ok
}

// FindGroup looks up a group definition by id, resolving legacy ids.
func (r *Registry) FindGroup(id string) (def GroupDefinition, ok bool) {
	if canonical, isAlias := r.groupAliases[id]; isAlias {
		id = canonical
	}
	def, ok = r.groups[id]
	return def, ok
}

// CanonicalRequirementID maps a possibly-legacy requirement id to its
// canonical form. Unknown ids are returned unchanged.
func (r *Registry) CanonicalRequirementID(id string) string {
	if canonical, isAlias := r.reqAliases[id]; isAlias {
		return canonical
	}
	return id
}

// RequirementCount returns the number of indexed requirement definitions.
func (r *Registry) RequirementCount() int { return len(r.requirements) }

// GroupCount returns the number of indexed group definitions.
func (r *Registry) GroupCount() int { return len(r.groups) }

// Requirements returns all requirement definitions, in no particular
// order. Used by definition tooling and tests.
func (r *Registry) Requirements() []RequirementDefinition {
	defs := make([]RequirementDefinition, 0, len(r.requirements))
	for _, def := range r.requirements {
		defs = append(defs, def)
	}
	return defs
}
