package espd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/espdhub/qualimport/internal/value"
)

// DynamicGroup captures one occurrence of an unbounded requirement
// group (e.g. one past contract reference) as an ordered field-name to
// value mapping. A fresh instance is allocated each time traversal
// enters an unbounded group node; sibling occurrences never share
// field values.
type DynamicGroup struct {
	keys   []string
	values map[string]value.Value
}

// NewDynamicGroup creates an empty occurrence.
func NewDynamicGroup() *DynamicGroup {
	return &DynamicGroup{values: make(map[string]value.Value)}
}

// SetField implements Target. Any field name is accepted; re-setting a
// name replaces the value but keeps its original position.
func (g *DynamicGroup) SetField(name string, v value.Value) error {
	if _, exists := g.values[name]; !exists {
		g.keys = append(g.keys, name)
	}
	g.values[name] = v
	return nil
}

// Get returns the value stored under name.
func (g *DynamicGroup) Get(name string) (value.Value, bool) {
	v, ok := g.values[name]
	return v, ok
}

// Fields returns the field names in insertion order.
func (g *DynamicGroup) Fields() []string {
	fields := make([]string, len(g.keys))
	copy(fields, g.keys)
	return fields
}

// Len returns the number of populated fields.
func (g *DynamicGroup) Len() int { return len(g.keys) }

// MarshalJSON serializes the group as a JSON object with keys in
// insertion order, so output is deterministic for a given traversal.
func (g *DynamicGroup) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := value.Marshal(g.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", k, err)
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
