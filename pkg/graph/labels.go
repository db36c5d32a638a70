package graph

import "sort"

// FilterNodesByLabels returns the nodes whose label set intersects the
// given labels, keyed by node id. The intersection test is
// order-independent on both sides.
func (g *Graph) FilterNodesByLabels(labels []string) map[string]*Node {
	filtered := make(map[string]*Node)
	for id, node := range g.nodes {
		if node.HasAnyLabel(labels) {
			filtered[id] = node
		}
	}
	return filtered
}

// NodeLabels returns the distinct labels present across all nodes, sorted.
func (g *Graph) NodeLabels() []string {
	set := make(map[string]struct{})
	for _, node := range g.nodes {
		for _, label := range node.Labels {
			set[label] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// EdgeLabels returns the distinct labels present in the edge index,
// derived relations included, sorted.
func (g *Graph) EdgeLabels() []string {
	set := make(map[string]struct{}, len(g.edges))
	for label := range g.edges {
		set[label] = struct{}{}
	}
	return sortedKeys(set)
}

// EdgesWithNodeLabels returns the edges under edgeLabel whose source and
// target node both carry nodeLabel. Edges with dangling endpoints never
// match.
func (g *Graph) EdgesWithNodeLabels(edgeLabel, nodeLabel string) []*Edge {
	edges, ok := g.edges[edgeLabel]
	if !ok {
		return []*Edge{}
	}
	matched := make([]*Edge, 0, len(edges))
	for _, edge := range edges {
		source, ok := g.nodes[edge.Source]
		if !ok || !source.HasLabel(nodeLabel) {
			continue
		}
		target, ok := g.nodes[edge.Target]
		if !ok || !target.HasLabel(nodeLabel) {
			continue
		}
		matched = append(matched, edge)
	}
	return matched
}

// EdgeNodeLabels returns the cross product of the source node's labels
// and the target node's labels: every (source type, target type)
// combination this one edge realizes. Dangling endpoints contribute no
// labels.
func (g *Graph) EdgeNodeLabels(edge *Edge) []LabelPair {
	var srcLabels, tgtLabels []string
	if node, ok := g.nodes[edge.Source]; ok {
		srcLabels = node.Labels
	}
	if node, ok := g.nodes[edge.Target]; ok {
		tgtLabels = node.Labels
	}

	pairs := make([]LabelPair, 0, len(srcLabels)*len(tgtLabels))
	for _, src := range srcLabels {
		for _, tgt := range tgtLabels {
			pairs = append(pairs, LabelPair{Source: src, Target: tgt})
		}
	}
	return pairs
}

// SourceAndTargetLabels returns the union, over every edge carrying
// edgeLabel, of the (source type, target type) pairs it realizes: the
// empirically observed type signature of the relation.
func (g *Graph) SourceAndTargetLabels(edgeLabel string) PairSet {
	signature := make(PairSet)
	for _, edge := range g.edges[edgeLabel] {
		for _, pair := range g.EdgeNodeLabels(edge) {
			signature.Add(pair)
		}
	}
	return signature
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
