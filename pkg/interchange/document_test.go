package interchange

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_SplitsFixedFieldsFromExtras(t *testing.T) {
	doc, err := Read(strings.NewReader(`{
	  "elements": {
	    "nodes": [
	      {"data": {"id": "A", "labels": ["class"], "name": "Account", "loc": 120}}
	    ],
	    "edges": [
	      {"data": {"source": "A", "target": "B", "label": "contains", "line": 14}}
	    ]
	  }
	}`))
	require.NoError(t, err)

	node := doc.Elements.Nodes[0].Data
	assert.Equal(t, "A", node.ID)
	assert.Equal(t, []string{"class"}, node.Labels)
	assert.Equal(t, map[string]any{"name": "Account", "loc": float64(120)}, node.Extra)

	edge := doc.Elements.Edges[0].Data
	assert.Equal(t, "A", edge.Source)
	assert.Equal(t, "B", edge.Target)
	assert.Equal(t, "contains", edge.Label)
	assert.Nil(t, edge.Labels)
	assert.Equal(t, map[string]any{"line": float64(14)}, edge.Extra)
}

func TestRead_LabelsPresenceIsDistinguishable(t *testing.T) {
	doc, err := Read(strings.NewReader(`{
	  "elements": {
	    "nodes": [
	      {"data": {"id": "A", "labels": []}},
	      {"data": {"id": "B"}}
	    ],
	    "edges": []
	  }
	}`))
	require.NoError(t, err)

	// Present but empty decodes to an empty slice, absent stays nil
	assert.NotNil(t, doc.Elements.Nodes[0].Data.Labels)
	assert.Empty(t, doc.Elements.Nodes[0].Data.Labels)
	assert.Nil(t, doc.Elements.Nodes[1].Data.Labels)
}

func TestNormalize_JoinsMultiLabelEdges(t *testing.T) {
	doc, err := Read(strings.NewReader(`{
	  "elements": {
	    "nodes": [],
	    "edges": [
	      {"data": {"source": "A", "target": "B", "labels": ["reads", "writes"]}},
	      {"data": {"source": "A", "target": "B", "label": "calls", "labels": ["ignored"]}}
	    ]
	  }
	}`))
	require.NoError(t, err)

	doc.Normalize()

	assert.Equal(t, "reads,writes", doc.Elements.Edges[0].Data.Label)
	// An edge that already carries a label is left alone
	assert.Equal(t, "calls", doc.Elements.Edges[1].Data.Label)
}

func TestMarshal_RoundTripsExtras(t *testing.T) {
	in := `{
	  "elements": {
	    "nodes": [
	      {"data": {"id": "A", "labels": ["class"], "name": "Account"}}
	    ],
	    "edges": [
	      {"data": {"source": "A", "target": "B", "label": "contains", "line": 14}}
	    ]
	  }
	}`
	doc, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	again, err := Read(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestMarshal_OmitsAbsentLabelFields(t *testing.T) {
	data, err := json.Marshal(EdgeData{Source: "A", Target: "B"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"source": "A", "target": "B"}`, string(data))
}

func TestReadYAML(t *testing.T) {
	doc, err := ReadYAML(strings.NewReader(`
elements:
  nodes:
    - data:
        id: A
        labels: [class]
        name: Account
  edges:
    - data:
        source: A
        target: B
        label: contains
`))
	require.NoError(t, err)

	require.Len(t, doc.Elements.Nodes, 1)
	assert.Equal(t, "A", doc.Elements.Nodes[0].Data.ID)
	assert.Equal(t, "Account", doc.Elements.Nodes[0].Data.Extra["name"])
	require.Len(t, doc.Elements.Edges, 1)
	assert.Equal(t, "contains", doc.Elements.Edges[0].Data.Label)
}
