package graph

// Node represents a vertex in the graph. A node carries one or more type
// labels and an open bag of additional properties that pass through the
// system unchanged.
type Node struct {
	ID         string
	Labels     []string
	Properties map[string]any
}

// Edge represents a directed, labeled relationship between two node ids.
// Endpoints are not validated against the node index; edges referencing
// unknown ids are accepted and simply contribute nothing to label queries.
type Edge struct {
	Source     string
	Target     string
	Label      string
	Properties map[string]any
}

// Clone creates a deep copy of a node
func (n *Node) Clone() *Node {
	clone := &Node{
		ID:         n.ID,
		Labels:     make([]string, len(n.Labels)),
		Properties: cloneProperties(n.Properties),
	}
	copy(clone.Labels, n.Labels)
	return clone
}

// HasLabel checks if node has a specific label
func (n *Node) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// HasAnyLabel checks if the node's label set intersects the given labels
func (n *Node) HasAnyLabel(labels []string) bool {
	for _, l := range labels {
		if n.HasLabel(l) {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of an edge
func (e *Edge) Clone() *Edge {
	return &Edge{
		Source:     e.Source,
		Target:     e.Target,
		Label:      e.Label,
		Properties: cloneProperties(e.Properties),
	}
}

func cloneProperties(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	clone := make(map[string]any, len(props))
	for k, v := range props {
		clone[k] = v
	}
	return clone
}
