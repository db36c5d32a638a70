package graph

import (
	"github.com/arcgraph/arcgraph/pkg/interchange"
	"github.com/arcgraph/arcgraph/pkg/logging"
)

// exportConfig is the resolved node-label policy of an export.
type exportConfig struct {
	allNodeLabels bool
	extraLabels   []string
}

// ExportOption adjusts which node labels a filtered export retains.
type ExportOption func(*exportConfig)

// WithAllNodeLabels retains every node label present in the graph
// instead of only the labels implicated by the selected edge labels.
func WithAllNodeLabels() ExportOption {
	return func(cfg *exportConfig) { cfg.allNodeLabels = true }
}

// WithNodeLabels retains the given node labels in addition to the labels
// implicated by the selected edge labels.
func WithNodeLabels(labels ...string) ExportOption {
	return func(cfg *exportConfig) {
		cfg.extraLabels = append(cfg.extraLabels, labels...)
	}
}

// ToDocument projects a filtered view of the graph back into the
// interchange shape the graph was built from. With no edge labels given,
// every label in the edge index is selected. Retained nodes are those
// whose label set intersects the implicated node labels: by default the
// union of the selected relations' type signatures, adjusted by the
// given options. The result is round-trip compatible; rebuilding a graph
// from it yields the same retained subset.
//
// Output is deterministic: nodes keep construction order, defaulted edge
// labels are sorted, and selected labels keep the order given.
func (g *Graph) ToDocument(edgeLabels []string, opts ...ExportOption) *interchange.Document {
	var cfg exportConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	selected := edgeLabels
	if len(selected) == 0 {
		selected = g.EdgeLabels()
	}

	nodeLabels := make(map[string]struct{})
	if cfg.allNodeLabels {
		for _, label := range g.NodeLabels() {
			nodeLabels[label] = struct{}{}
		}
	} else {
		for _, edgeLabel := range selected {
			for pair := range g.SourceAndTargetLabels(edgeLabel) {
				nodeLabels[pair.Source] = struct{}{}
				nodeLabels[pair.Target] = struct{}{}
			}
		}
	}
	for _, label := range cfg.extraLabels {
		nodeLabels[label] = struct{}{}
	}

	retained := g.FilterNodesByLabels(sortedKeys(nodeLabels))

	doc := &interchange.Document{
		Elements: interchange.Elements{
			Nodes: []interchange.NodeElement{},
			Edges: []interchange.EdgeElement{},
		},
	}
	for _, id := range g.nodeOrder {
		node, ok := retained[id]
		if !ok {
			continue
		}
		doc.Elements.Nodes = append(doc.Elements.Nodes, interchange.NodeElement{
			Data: interchange.NodeData{
				ID:     node.ID,
				Labels: append([]string{}, node.Labels...),
				Extra:  cloneProperties(node.Properties),
			},
		})
	}
	for _, edgeLabel := range selected {
		for _, edge := range g.edges[edgeLabel] {
			doc.Elements.Edges = append(doc.Elements.Edges, interchange.EdgeElement{
				Data: interchange.EdgeData{
					Source: edge.Source,
					Target: edge.Target,
					Label:  edge.Label,
					Extra:  cloneProperties(edge.Properties),
				},
			})
		}
	}

	g.metrics.RecordExport(len(doc.Elements.Nodes), len(doc.Elements.Edges))
	g.logger.Debug("document exported",
		logging.NodeCount(len(doc.Elements.Nodes)),
		logging.EdgeCount(len(doc.Elements.Edges)))
	return doc
}
