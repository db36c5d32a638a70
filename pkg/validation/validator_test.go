package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/pkg/interchange"
)

func validDocument() *interchange.Document {
	return &interchange.Document{
		Elements: interchange.Elements{
			Nodes: []interchange.NodeElement{
				{Data: interchange.NodeData{ID: "A", Labels: []string{"class"}}},
			},
			Edges: []interchange.EdgeElement{
				{Data: interchange.EdgeData{Source: "A", Target: "B", Label: "contains"}},
			},
		},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	assert.NoError(t, ValidateDocument(validDocument()))
}

func TestValidateDocument_Nil(t *testing.T) {
	assert.Error(t, ValidateDocument(nil))
}

func TestValidateDocument_EmptyLabelListAccepted(t *testing.T) {
	doc := validDocument()
	doc.Elements.Nodes[0].Data.Labels = []string{}

	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocument_MultiLabelEdgeAccepted(t *testing.T) {
	doc := validDocument()
	doc.Elements.Edges[0].Data.Label = ""
	doc.Elements.Edges[0].Data.Labels = []string{"reads", "writes"}

	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocument_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*interchange.Document)
		want   error
	}{
		{
			name:   "node missing id",
			mutate: func(d *interchange.Document) { d.Elements.Nodes[0].Data.ID = "" },
			want:   ErrMissingID,
		},
		{
			name:   "node missing labels",
			mutate: func(d *interchange.Document) { d.Elements.Nodes[0].Data.Labels = nil },
			want:   ErrMissingLabels,
		},
		{
			name:   "edge missing source",
			mutate: func(d *interchange.Document) { d.Elements.Edges[0].Data.Source = "" },
			want:   ErrMissingSource,
		},
		{
			name:   "edge missing target",
			mutate: func(d *interchange.Document) { d.Elements.Edges[0].Data.Target = "" },
			want:   ErrMissingTarget,
		},
		{
			name:   "edge missing label",
			mutate: func(d *interchange.Document) { d.Elements.Edges[0].Data.Label = "" },
			want:   ErrMissingLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			err := ValidateDocument(doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)

			var recordErr *RecordError
			require.True(t, errors.As(err, &recordErr))
			assert.Equal(t, 0, recordErr.Index)
		})
	}
}

func TestRecordError_Message(t *testing.T) {
	err := &RecordError{Kind: "node", Index: 3, Field: "id", Cause: ErrMissingID}

	assert.Equal(t, "node 3: id: id is required", err.Error())
	assert.ErrorIs(t, err, ErrMissingID)
}
