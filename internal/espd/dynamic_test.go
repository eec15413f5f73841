package espd

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espdhub/qualimport/internal/value"
)

func TestDynamicGroupRoundTrip(t *testing.T) {
	g := NewDynamicGroup()

	require.NoError(t, g.SetField("description", value.Text("contract A")))
	require.NoError(t, g.SetField("answer", value.Bool(true)))

	v, ok := g.Get("description")
	require.True(t, ok)
	assert.Equal(t, value.Text("contract A"), v)

	v, ok = g.Get("answer")
	require.True(t, ok)
	assert.Equal(t, value.Bool(true), v)

	_, ok = g.Get("missing")
	assert.False(t, ok)
}

func TestDynamicGroupAcceptsAnyFieldName(t *testing.T) {
	g := NewDynamicGroup()
	assert.NoError(t, g.SetField("completely-novel-field", value.Integer(3)))
}

func TestDynamicGroupInsertionOrder(t *testing.T) {
	g := NewDynamicGroup()
	require.NoError(t, g.SetField("zebra", value.Text("z")))
	require.NoError(t, g.SetField("apple", value.Text("a")))
	require.NoError(t, g.SetField("mango", value.Text("m")))

	assert.Equal(t, []string{"zebra", "apple", "mango"}, g.Fields())
	assert.Equal(t, 3, g.Len())
}

func TestDynamicGroupReplaceKeepsPosition(t *testing.T) {
	g := NewDynamicGroup()
	require.NoError(t, g.SetField("first", value.Text("1")))
	require.NoError(t, g.SetField("second", value.Text("2")))
	require.NoError(t, g.SetField("first", value.Text("1b")))

	assert.Equal(t, []string{"first", "second"}, g.Fields())

	v, _ := g.Get("first")
	assert.Equal(t, value.Text("1b"), v)
}

func TestDynamicGroupMarshalJSON(t *testing.T) {
	g := NewDynamicGroup()
	require.NoError(t, g.SetField("description", value.Text("works")))
	require.NoError(t, g.SetField("date", value.NewDate(2016, time.June, 1)))
	require.NoError(t, g.SetField("amount", value.Integer(5)))

	data, err := json.Marshal(g)
	require.NoError(t, err)

	// Keys come out in insertion order, not sorted.
	assert.Equal(t, `{"description":"works","date":"2016-06-01","amount":5}`, string(data))
}
