package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espdhub/qualimport/internal/value"
)

func TestLoadEmbeddedDefinitionSet(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	assert.Greater(t, reg.RequirementCount(), 30)
	assert.Greater(t, reg.GroupCount(), 5)
}

func TestLoadEmbeddedSpotChecks(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	// The main exclusion answer requirement.
	def, aliased, ok := reg.FindRequirement("974c8196-9d1c-419c-9ca9-45bb9f5fd59a")
	require.True(t, ok)
	assert.False(t, aliased)
	assert.Equal(t, value.ResponseIndicator, def.Response)
	assert.Equal(t, []string{"answer"}, def.Fields)

	// Amount requirements carry two target fields.
	def, _, ok = reg.FindRequirement("5e52d30b-8f2e-4a88-bf03-9d63b1f7eefa")
	require.True(t, ok)
	assert.True(t, def.Response.IsAmount())
	assert.Equal(t, []string{"amount", "currency"}, def.Fields)

	// The pre-2016.12 please-specify id aliases to the canonical one.
	def, aliased, ok = reg.FindRequirement("3aaca389-4a7b-406b-a4b9-080845d127e7")
	require.True(t, ok)
	assert.True(t, aliased)
	assert.Equal(t, "0622bbd1-7378-45e1-8fb9-25429740ac22", def.ID)

	// Unbounded flag on the contract references group.
	group, ok := reg.FindGroup("96d4f0d0-b0f5-4b55-a27a-27074ebcf86b")
	require.True(t, ok)
	assert.True(t, group.Unbounded)
}

func TestLoadDirUnifiesMultipleFiles(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "a.cue", `
requirements: "req-one": {
	description: "One"
	response:    "INDICATOR"
	fields: ["answer"]
}
groups: "group-one": {unbounded: false}
`)
	writeFile(t, dir, "b.cue", `
requirements: "req-two": {
	description: "Two"
	response:    "DESCRIPTION"
	fields: ["description"]
}
aliases: requirements: "req-one-old": "req-one"
`)

	reg, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, reg.RequirementCount())
	assert.Equal(t, 1, reg.GroupCount())

	_, aliased, ok := reg.FindRequirement("req-one-old")
	assert.True(t, ok)
	assert.True(t, aliased)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "not found")
}

func TestLoadDirNoCUEFiles(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.ErrorContains(t, err, "no CUE files")
}

func TestLoadDirRejectsMissingDescription(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.cue", `
requirements: "req-one": {
	response: "INDICATOR"
	fields: ["answer"]
}
`)

	_, err := LoadDir(dir)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Contains(t, compileErr.Message, "description is required")
}

func TestLoadDirRejectsConflictingRedefinition(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cue", `
requirements: "req-one": {
	description: "One"
	response:    "INDICATOR"
	fields: ["answer"]
}
`)
	writeFile(t, dir, "b.cue", `
requirements: "req-one": {
	description: "A different one"
	response:    "INDICATOR"
	fields: ["answer"]
}
`)

	_, err := LoadDir(dir)
	assert.Error(t, err, "unification rejects conflicting values for the same id")
}

func TestLoadDirRejectsBadResponseType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.cue", `
requirements: "req-one": {
	description: "One"
	response:    "MYSTERY"
	fields: ["answer"]
}
`)

	_, err := LoadDir(dir)
	assert.ErrorContains(t, err, "unknown response type")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
