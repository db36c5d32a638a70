package graph

// Relation algebra over ordered edge lists. Each function is pure: inputs
// are never mutated and results are freshly allocated.

// invPrefix is the default label prefix for inverted relations.
const invPrefix = "inv_"

// Invert swaps source and target of every edge. Each inverted edge is
// labeled newLabel when given, otherwise "inv_" plus the original label
// ("inv_edge" for unlabeled edges). All other properties are copied
// through unchanged; output order and length match the input exactly.
func Invert(edges []*Edge, newLabel string) []*Edge {
	inverted := make([]*Edge, 0, len(edges))
	for _, e := range edges {
		label := newLabel
		if label == "" {
			orig := e.Label
			if orig == "" {
				orig = "edge"
			}
			label = invPrefix + orig
		}
		inverted = append(inverted, &Edge{
			Source:     e.Target,
			Target:     e.Source,
			Label:      label,
			Properties: cloneProperties(e.Properties),
		})
	}
	return inverted
}

// joinEntry is the surviving (target, label) for a source id in the
// compose lookup.
type joinEntry struct {
	target string
	label  string
}

// Compose joins two relations: the result contains (a, c) whenever
// edges1 relates a to some b and edges2 relates that b to c. The lookup
// over edges2 keeps only the last edge per source id, so alternative
// branches of a one-to-many relation are dropped silently. Composed
// edges are labeled newLabel when given, otherwise the comma-join of the
// two input labels, and carry no other properties. Output follows the
// iteration order of edges1 and is at most its length.
func Compose(edges1, edges2 []*Edge, newLabel string) []*Edge {
	lookup := make(map[string]joinEntry, len(edges2))
	for _, e := range edges2 {
		lookup[e.Source] = joinEntry{target: e.Target, label: e.Label}
	}

	composed := make([]*Edge, 0, len(edges1))
	for _, e := range edges1 {
		entry, ok := lookup[e.Target]
		if !ok {
			continue
		}
		label := newLabel
		if label == "" {
			label = e.Label + "," + entry.label
		}
		composed = append(composed, &Edge{
			Source: e.Source,
			Target: entry.target,
			Label:  label,
		})
	}
	return composed
}

// Lift derives a parent-level relation from a containment relation and a
// child-level relation: with edges1 reading "parent contains child" and
// edges2 "child relates to child", the result relates parent1 to parent2
// whenever some child of parent1 is edges2-related to some child of
// parent2. Two related children of the same parent yield a self-loop on
// that parent; this is not a transitive closure.
func Lift(edges1, edges2 []*Edge, newLabel string) []*Edge {
	return Compose(Compose(edges1, edges2, ""), Invert(edges1, ""), newLabel)
}
