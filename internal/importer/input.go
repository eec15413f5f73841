package importer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is a parsed qualification response: the criteria answered by
// one economic operator. It is produced by an external binding layer or
// decoded from the YAML interchange form used by the CLI.
type Document struct {
	ID       string      `yaml:"id" json:"id"`
	Criteria []Criterion `yaml:"criteria" json:"criteria"`
}

// Criterion is one qualification question together with its answer
// tree. An empty Groups slice means the criterion was present in the
// document but not answered.
type Criterion struct {
	ID             string      `yaml:"id" json:"id"`
	Name           string      `yaml:"name" json:"name"`
	TypeCode       string      `yaml:"type_code" json:"type_code"`
	LegislationRef string      `yaml:"legislation_ref,omitempty" json:"legislation_ref,omitempty"`
	Groups         []GroupNode `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// GroupNode is one requirement-group occurrence in the answer tree.
type GroupNode struct {
	ID           string            `yaml:"id" json:"id"`
	Groups       []GroupNode       `yaml:"groups,omitempty" json:"groups,omitempty"`
	Requirements []RequirementNode `yaml:"requirements,omitempty" json:"requirements,omitempty"`
}

// RequirementNode carries the raw response(s) to one requirement. Only
// the first response is consulted; the schema permits repetition but
// assigns it no meaning.
type RequirementNode struct {
	ID        string   `yaml:"id" json:"id"`
	Responses []string `yaml:"responses,omitempty" json:"responses,omitempty"`
}

// Response returns the first raw response and whether one is present.
func (r RequirementNode) Response() (string, bool) {
	if len(r.Responses) == 0 {
		return "", false
	}
	return r.Responses[0], true
}

// DecodeDocument reads a YAML-encoded response document.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode response document: %w", err)
	}
	return doc, nil
}
