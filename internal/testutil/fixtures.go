// Package testutil provides fixture builders shared by the package
// tests: a compact in-memory definition set and answer-tree
// constructors that keep test cases readable.
package testutil

import (
	"testing"

	"github.com/espdhub/qualimport/internal/importer"
	"github.com/espdhub/qualimport/internal/registry"
)

// Well-known fixture ids. The requirement ids map onto the fields most
// variants share; tests needing more register their own definitions.
const (
	ReqAnswer      = "req-answer"
	ReqDescription = "req-description"
	ReqDate        = "req-date"
	ReqAmount      = "req-amount"
	ReqUnmapped    = "req-unmapped"
	ReqLegacy      = "req-legacy-description"

	GroupMain      = "group-main"
	GroupUnbounded = "group-unbounded"
)

// FixtureSet returns a small definition set covering every response
// shape the engine handles: indicator, text, date, amount, an unmapped
// requirement, and a legacy alias for the description requirement.
func FixtureSet() registry.Set {
	return registry.Set{
		Requirements: []registry.RequirementDefinition{
			{ID: ReqAnswer, Description: "Your answer?", Response: "INDICATOR", Fields: []string{"answer"}},
			{ID: ReqDescription, Description: "Please describe them", Response: "DESCRIPTION", Fields: []string{"description"}},
			{ID: ReqDate, Description: "Date of conviction", Response: "DATE", Fields: []string{"dateOfConviction"}},
			{ID: ReqAmount, Description: "Amount concerned", Response: "AMOUNT", Fields: []string{"amount", "currency"}},
			{ID: ReqUnmapped, Description: "National apostille reference", Response: "DESCRIPTION", Fields: []string{""}},
		},
		Groups: []registry.GroupDefinition{
			{ID: GroupMain, Unbounded: false},
			{ID: GroupUnbounded, Unbounded: true},
		},
		RequirementAliases: map[string]string{
			ReqLegacy: ReqDescription,
		},
	}
}

// FixtureRegistry indexes FixtureSet, failing the test on error.
func FixtureRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(FixtureSet())
	if err != nil {
		t.Fatalf("build fixture registry: %v", err)
	}
	return reg
}

// Group builds a group node from child groups and requirements.
func Group(id string, groups []importer.GroupNode, reqs ...importer.RequirementNode) importer.GroupNode {
	return importer.GroupNode{ID: id, Groups: groups, Requirements: reqs}
}

// Req builds a requirement node carrying one raw response.
func Req(id, response string) importer.RequirementNode {
	return importer.RequirementNode{ID: id, Responses: []string{response}}
}
