package interchange

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		Elements: Elements{
			Nodes: []NodeElement{
				{Data: NodeData{ID: "A", Labels: []string{"class"}}},
				{Data: NodeData{ID: "A1", Labels: []string{"method"}}},
			},
			Edges: []EdgeElement{
				{Data: EdgeData{Source: "A", Target: "A1", Label: "contains"}},
			},
		},
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"graph.json", FormatJSON},
		{"graph.yaml", FormatYAML},
		{"graph.yml", FormatYAML},
		{"graph.YAML", FormatYAML},
		{"graph", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestWriteRead(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	again, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestWriteReadYAML(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, doc))

	again, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestRead_InvalidJSON(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("{not json")))
	assert.Error(t, err)
}

func TestLoadSaveFile(t *testing.T) {
	doc := sampleDocument()
	dir := t.TempDir()

	for _, name := range []string{"graph.json", "graph.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, SaveFile(path, doc))

			loaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, doc, loaded)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
