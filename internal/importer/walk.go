package importer

import (
	"log/slog"

	"github.com/espdhub/qualimport/internal/espd"
	"github.com/espdhub/qualimport/internal/registry"
	"github.com/espdhub/qualimport/internal/value"
)

// walker traverses one criterion's answer tree. One instance per Build
// call; it carries the per-call write-precedence state.
type walker struct {
	reg *registry.Registry
	log *slog.Logger

	// written tracks which (target, field) slots have received a value.
	// Canonical writes always proceed, so between duplicates the last
	// canonical one wins. A write arriving through a legacy alias is
	// skipped once the slot is taken, so the canonical form wins
	// regardless of document order and the first legacy occurrence wins
	// among legacy duplicates.
	written map[writeKey]struct{}
}

type writeKey struct {
	target espd.Target
	field  string
}

func newWalker(reg *registry.Registry, log *slog.Logger) *walker {
	return &walker{
		reg:     reg,
		log:     log,
		written: make(map[writeKey]struct{}),
	}
}

// apply walks the root groups depth first and populates rec.
//
// Entering a resolved unbounded group allocates a fresh occurrence
// before descending, so everything inside that subtree (until the next
// nested unbounded group) lands in its own isolated record. Resolved
// bounded groups pass the current occurrence through unchanged. An
// unresolved group contributes no occurrence; its subtree is still
// walked and its requirements fall back onto the record's fixed fields.
func (w *walker) apply(rec espd.Record, groups []GroupNode) {
	w.walkGroups(rec, rec, groups)
}

// walkGroups processes one tree level. rec is the criterion record
// (always the fixed-field fallback); target is where requirement values
// currently land, either rec itself or a dynamic occurrence.
func (w *walker) walkGroups(rec espd.Record, target espd.Target, groups []GroupNode) {
	for _, g := range groups {
		next := w.enterGroup(rec, target, g)

		// Subgroups first, then the requirements attached here. The
		// pre-order descent is what keeps sibling occurrences of the
		// same unbounded group isolated from each other.
		w.walkGroups(rec, next, g.Groups)

		for _, req := range g.Requirements {
			w.applyRequirement(next, req)
		}
	}
}

// enterGroup resolves a group node and picks the write target for its
// subtree.
func (w *walker) enterGroup(rec espd.Record, target espd.Target, g GroupNode) espd.Target {
	def, ok := w.reg.FindGroup(g.ID)
	if !ok {
		w.log.Warn("requirement group not in registry", "group_id", g.ID)
		return rec
	}
	if !def.Unbounded {
		return target
	}

	ug, ok := rec.(espd.Unbounded)
	if !ok {
		w.log.Warn("unbounded group on a record without dynamic occurrences",
			"group_id", g.ID, "type_code", rec.Meta().TypeCode)
		return target
	}
	return ug.NewGroup()
}

// applyRequirement resolves, parses, and writes one requirement's
// response. Every fault here is local: log and move on.
func (w *walker) applyRequirement(target espd.Target, req RequirementNode) {
	raw, ok := req.Response()
	if !ok {
		return
	}

	def, aliased, found := w.reg.FindRequirement(req.ID)
	if !found {
		w.log.Warn("requirement not in registry", "requirement_id", req.ID)
		return
	}
	if def.Fields[0] == "" {
		// Deliberately unmapped requirement.
		return
	}

	key := writeKey{target: target, field: def.Fields[0]}
	if _, taken := w.written[key]; taken && aliased {
		w.log.Debug("skipping superseded legacy write",
			"requirement_id", req.ID, "field", def.Fields[0])
		return
	}

	v, err := value.Parse(def.Response, raw)
	if err != nil {
		w.log.Warn("unparseable response",
			"requirement_id", req.ID, "response_type", string(def.Response),
			"raw", raw, "error", err)
		return
	}

	if assign(w.log, target, def, v) {
		w.written[key] = struct{}{}
	}
}
