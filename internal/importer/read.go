package importer

import (
	"github.com/espdhub/qualimport/internal/registry"
	"github.com/espdhub/qualimport/internal/value"
)

// ReadAnswer searches the answer tree for one requirement and returns
// its parsed response. It reuses the walker's depth-first order but
// checks a level's requirements before descending, since the sought
// requirement usually sits near the root. Legacy ids match their
// canonical counterparts in both directions.
//
// Used for fields whose handling depends on an ad hoc cross-check
// rather than the generic group walk. The bool reports presence; parse
// failures read as absent.
func (imp *Importer) ReadAnswer(def registry.RequirementDefinition, groups []GroupNode) (value.Value, bool) {
	want := imp.reg.CanonicalRequirementID(def.ID)

	for _, g := range groups {
		if v, ok := imp.readFromGroup(want, def, g); ok {
			return v, true
		}
	}
	return nil, false
}

func (imp *Importer) readFromGroup(want string, def registry.RequirementDefinition, g GroupNode) (value.Value, bool) {
	for _, req := range g.Requirements {
		if imp.reg.CanonicalRequirementID(req.ID) != want {
			continue
		}
		raw, ok := req.Response()
		if !ok {
			continue
		}
		v, err := value.Parse(def.Response, raw)
		if err != nil {
			imp.log.Warn("unparseable response",
				"requirement_id", req.ID, "response_type", string(def.Response),
				"raw", raw, "error", err)
			continue
		}
		return v, true
	}

	for _, sub := range g.Groups {
		if v, ok := imp.readFromGroup(want, def, sub); ok {
			return v, true
		}
	}
	return nil, false
}
