package graph

import (
	"github.com/arcgraph/arcgraph/pkg/interchange"
	"github.com/arcgraph/arcgraph/pkg/logging"
	"github.com/arcgraph/arcgraph/pkg/metrics"
	"github.com/arcgraph/arcgraph/pkg/validation"
)

// Graph owns a node index (id to node) and an edge index (relation label
// to ordered edge list), both built once from an interchange document.
// Derivation methods add new entries to the edge index; nothing is ever
// removed and node data is immutable after construction.
//
// A Graph performs no internal locking. Callers sharing one instance
// across goroutines must synchronize around the derivation methods.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string][]*Edge

	logger  logging.Logger
	metrics *metrics.Registry
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithLogger sets the logger used for derivation and export events.
func WithLogger(logger logging.Logger) Option {
	return func(g *Graph) { g.logger = logger }
}

// WithMetrics sets the registry derivations and exports are recorded to.
func WithMetrics(registry *metrics.Registry) Option {
	return func(g *Graph) { g.metrics = registry }
}

// New builds a Graph from an interchange document. The document is
// validated first and malformed records fail the build outright, so a
// partially-built index can never escape. Multi-label edges are
// normalized to a single comma-joined label, written back into the
// document's label field. Duplicate node ids keep their first position
// but the last record's data wins.
func New(doc *interchange.Document, opts ...Option) (*Graph, error) {
	if err := validation.ValidateDocument(doc); err != nil {
		return nil, err
	}
	doc.Normalize()

	g := &Graph{
		nodes:  make(map[string]*Node),
		edges:  make(map[string][]*Edge),
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, elem := range doc.Elements.Nodes {
		data := elem.Data
		if _, seen := g.nodes[data.ID]; !seen {
			g.nodeOrder = append(g.nodeOrder, data.ID)
		}
		g.nodes[data.ID] = &Node{
			ID:         data.ID,
			Labels:     append([]string{}, data.Labels...),
			Properties: cloneProperties(data.Extra),
		}
	}

	for _, elem := range doc.Elements.Edges {
		data := elem.Data
		edge := &Edge{
			Source:     data.Source,
			Target:     data.Target,
			Label:      data.Label,
			Properties: cloneProperties(data.Extra),
		}
		if data.Labels != nil {
			if edge.Properties == nil {
				edge.Properties = make(map[string]any)
			}
			edge.Properties["labels"] = append([]string{}, data.Labels...)
		}
		g.edges[data.Label] = append(g.edges[data.Label], edge)
	}

	g.metrics.SetGraphSize(len(g.nodes), len(g.edges))
	g.logger.Debug("graph built",
		logging.NodeCount(len(g.nodes)),
		logging.Count(len(g.edges)))
	return g, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// Nodes returns all nodes in construction order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Relation returns the ordered edge list stored under the given label,
// or nil when the label is unknown.
func (g *Graph) Relation(label string) []*Edge {
	return g.edges[label]
}

// HasRelation reports whether the given label is present in the edge index.
func (g *Graph) HasRelation(label string) bool {
	_, ok := g.edges[label]
	return ok
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumRelations returns the number of labels in the edge index, derived
// relations included.
func (g *Graph) NumRelations() int {
	return len(g.edges)
}

// InvertEdges inverts the relation stored under label and stores the
// result under newLabel, defaulting to "inv_" plus the original label.
// An unknown label is a no-op.
func (g *Graph) InvertEdges(label, newLabel string) {
	edges, ok := g.edges[label]
	if !ok {
		g.logger.Debug("relation not found, skipping invert", logging.Label(label))
		g.metrics.RecordSkippedDerivation("invert")
		return
	}

	inverted := Invert(edges, newLabel)
	if newLabel == "" {
		newLabel = invPrefix + label
	}
	g.edges[newLabel] = inverted
	g.afterDerivation("invert", newLabel, len(inverted))
}

// ComposeEdges joins the relations stored under label1 and label2 and
// stores the result under newLabel, defaulting to "label1_label2". The
// default is resolved before composing, so the composed edges carry the
// stored label either way. A missing input label is a no-op.
func (g *Graph) ComposeEdges(label1, label2, newLabel string) {
	edges1, ok1 := g.edges[label1]
	edges2, ok2 := g.edges[label2]
	if !ok1 || !ok2 {
		g.logger.Debug("relation not found, skipping compose",
			logging.String("label1", label1), logging.String("label2", label2))
		g.metrics.RecordSkippedDerivation("compose")
		return
	}

	if newLabel == "" {
		newLabel = label1 + "_" + label2
	}
	g.edges[newLabel] = Compose(edges1, edges2, newLabel)
	g.afterDerivation("compose", newLabel, len(g.edges[newLabel]))
}

// LiftEdges lifts the relation under label2 through the containment
// relation under label1 and stores the result under newLabel, defaulting
// to "lifted_label1_label2". The default names only the index entry:
// when no newLabel is given the lifted edges keep the comma-joined
// labels the inner compositions produce. A missing input label is a
// no-op.
func (g *Graph) LiftEdges(label1, label2, newLabel string) {
	edges1, ok1 := g.edges[label1]
	edges2, ok2 := g.edges[label2]
	if !ok1 || !ok2 {
		g.logger.Debug("relation not found, skipping lift",
			logging.String("label1", label1), logging.String("label2", label2))
		g.metrics.RecordSkippedDerivation("lift")
		return
	}

	lifted := Lift(edges1, edges2, newLabel)
	if newLabel == "" {
		newLabel = "lifted_" + label1 + "_" + label2
	}
	g.edges[newLabel] = lifted
	g.afterDerivation("lift", newLabel, len(lifted))
}

func (g *Graph) afterDerivation(operation, label string, edges int) {
	g.metrics.RecordDerivation(operation, edges)
	g.metrics.SetGraphSize(len(g.nodes), len(g.edges))
	g.logger.Debug("relation derived",
		logging.Operation(operation),
		logging.NewLabel(label),
		logging.EdgeCount(edges))
}
