package graph

import (
	"sort"

	"github.com/arcgraph/arcgraph/pkg/logging"
)

// LabelPair is one observed (source type, target type) combination of a
// relation.
type LabelPair struct {
	Source string
	Target string
}

// PairSet is a set of label pairs.
type PairSet map[LabelPair]struct{}

// Add inserts a pair into the set.
func (s PairSet) Add(pair LabelPair) {
	s[pair] = struct{}{}
}

// Has reports whether the set contains the pair.
func (s PairSet) Has(pair LabelPair) bool {
	_, ok := s[pair]
	return ok
}

// Sorted returns the pairs ordered by source then target label.
func (s PairSet) Sorted() []LabelPair {
	pairs := make([]LabelPair, 0, len(s))
	for pair := range s {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Source != pairs[j].Source {
			return pairs[i].Source < pairs[j].Source
		}
		return pairs[i].Target < pairs[j].Target
	})
	return pairs
}

// Ontology maps every relation label to its observed type signature.
type Ontology map[string]PairSet

// Labels returns the relation labels of the ontology, sorted.
func (o Ontology) Labels() []string {
	labels := make([]string, 0, len(o))
	for label := range o {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// GenerateOntology infers a schema from instance data: for every label
// in the edge index, the set of (source type, target type) pairs
// observed across its edges. Relations whose edges all have dangling
// endpoints map to an empty set.
func (g *Graph) GenerateOntology() Ontology {
	ontology := make(Ontology, len(g.edges))
	for label := range g.edges {
		ontology[label] = g.SourceAndTargetLabels(label)
	}
	g.metrics.RecordOntology()
	g.logger.Debug("ontology generated", logging.Count(len(ontology)))
	return ontology
}
