package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() Set {
	return Set{
		Requirements: []RequirementDefinition{
			{ID: "req-answer", Description: "Your answer?", Response: "INDICATOR", Fields: []string{"answer"}},
			{ID: "req-amount", Description: "Amount", Response: "AMOUNT", Fields: []string{"amount", "currency"}},
			{ID: "req-unmapped", Description: "Apostille", Response: "DESCRIPTION", Fields: []string{""}},
		},
		Groups: []GroupDefinition{
			{ID: "group-main", Unbounded: false},
			{ID: "group-repeat", Unbounded: true},
		},
		RequirementAliases: map[string]string{
			"req-answer-old": "req-answer",
		},
		GroupAliases: map[string]string{
			"group-repeat-old": "group-repeat",
		},
	}
}

func TestNewIndexesDefinitions(t *testing.T) {
	reg, err := New(testSet())
	require.NoError(t, err)

	assert.Equal(t, 3, reg.RequirementCount())
	assert.Equal(t, 2, reg.GroupCount())
}

func TestFindRequirement(t *testing.T) {
	reg, err := New(testSet())
	require.NoError(t, err)

	def, aliased, ok := reg.FindRequirement("req-answer")
	require.True(t, ok)
	assert.False(t, aliased)
	assert.Equal(t, "req-answer", def.ID)
	assert.Equal(t, []string{"answer"}, def.Fields)
}

func TestFindRequirementResolvesAlias(t *testing.T) {
	reg, err := New(testSet())
	require.NoError(t, err)

	def, aliased, ok := reg.FindRequirement("req-answer-old")
	require.True(t, ok)
	assert.True(t, aliased)
	assert.Equal(t, "req-answer", def.ID, "legacy id resolves to the canonical definition")
}

func TestFindRequirementAbsenceIsNotAnError(t *testing.T) {
	reg, err := New(testSet())
	require.NoError(t, err)

	_, _, ok := reg.FindRequirement("no-such-id")
	assert.False(t, ok)
}

func TestFindGroupResolvesAlias(t *testing.T) {
	reg, err := New(testSet())
	require.NoError(t, err)

	def, ok := reg.FindGroup("group-repeat-old")
	require.True(t, ok)
	assert.Equal(t, "group-repeat", def.ID)
	assert.True(t, def.Unbounded)
}

func TestCanonicalRequirementID(t *testing.T) {
	reg, err := New(testSet())
	require.NoError(t, err)

	assert.Equal(t, "req-answer", reg.CanonicalRequirementID("req-answer-old"))
	assert.Equal(t, "req-answer", reg.CanonicalRequirementID("req-answer"))
	assert.Equal(t, "unknown", reg.CanonicalRequirementID("unknown"), "unknown ids pass through unchanged")
}

func TestNewRejectsDuplicateRequirementID(t *testing.T) {
	set := testSet()
	set.Requirements = append(set.Requirements, set.Requirements[0])

	_, err := New(set)
	assert.ErrorContains(t, err, "duplicate requirement id")
}

func TestNewRejectsUnknownResponseType(t *testing.T) {
	set := testSet()
	set.Requirements = append(set.Requirements, RequirementDefinition{
		ID: "req-bad", Description: "x", Response: "MYSTERY", Fields: []string{"x"},
	})

	_, err := New(set)
	assert.ErrorContains(t, err, "unknown response type")
}

func TestNewRejectsWrongFieldCount(t *testing.T) {
	set := testSet()
	set.Requirements = append(set.Requirements, RequirementDefinition{
		ID: "req-bad", Description: "x", Response: "AMOUNT", Fields: []string{"amount"},
	})

	_, err := New(set)
	assert.ErrorContains(t, err, "exactly 2 target fields")

	set = testSet()
	set.Requirements = append(set.Requirements, RequirementDefinition{
		ID: "req-bad", Description: "x", Response: "DESCRIPTION", Fields: []string{"a", "b"},
	})

	_, err = New(set)
	assert.ErrorContains(t, err, "exactly 1 target field")
}

func TestNewRejectsDanglingAlias(t *testing.T) {
	set := testSet()
	set.RequirementAliases["req-old"] = "no-such-id"

	_, err := New(set)
	assert.ErrorContains(t, err, "unknown id")
}

func TestNewRejectsAliasClashingWithCanonicalID(t *testing.T) {
	set := testSet()
	set.RequirementAliases["req-amount"] = "req-answer"

	_, err := New(set)
	assert.ErrorContains(t, err, "clashes with a canonical id")
}
