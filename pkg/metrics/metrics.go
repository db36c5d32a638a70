package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph metrics
	GraphNodesTotal     prometheus.Gauge
	GraphRelationsTotal prometheus.Gauge

	// Derivation metrics
	DerivationsTotal   *prometheus.CounterVec
	DerivedEdgesTotal  *prometheus.CounterVec
	DerivationsSkipped *prometheus.CounterVec

	// Ontology and export metrics
	OntologyGenerationsTotal prometheus.Counter
	ExportsTotal             prometheus.Counter
	ExportedNodesTotal       prometheus.Counter
	ExportedEdgesTotal       prometheus.Counter

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "arcgraph_nodes_total",
			Help: "Number of nodes in the graph",
		},
	)

	r.GraphRelationsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "arcgraph_relations_total",
			Help: "Number of relation labels in the edge index, derived relations included",
		},
	)

	r.DerivationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcgraph_derivations_total",
			Help: "Relation derivations performed, by operation",
		},
		[]string{"operation"},
	)

	r.DerivedEdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcgraph_derived_edges_total",
			Help: "Edges produced by relation derivations, by operation",
		},
		[]string{"operation"},
	)

	r.DerivationsSkipped = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcgraph_derivations_skipped_total",
			Help: "Derivations skipped because an input relation label was absent",
		},
		[]string{"operation"},
	)

	r.OntologyGenerationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "arcgraph_ontology_generations_total",
			Help: "Ontology inferences performed",
		},
	)

	r.ExportsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "arcgraph_exports_total",
			Help: "Filtered document exports performed",
		},
	)

	r.ExportedNodesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "arcgraph_exported_nodes_total",
			Help: "Nodes written by filtered document exports",
		},
	)

	r.ExportedEdgesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "arcgraph_exported_edges_total",
			Help: "Edges written by filtered document exports",
		},
	)

	return r
}

// Prometheus returns the underlying prometheus registry for exposition
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// RecordDerivation records a completed derivation and the edges it produced.
// Nil-safe so library callers can leave metrics unset.
func (r *Registry) RecordDerivation(operation string, edges int) {
	if r == nil {
		return
	}
	r.DerivationsTotal.WithLabelValues(operation).Inc()
	r.DerivedEdgesTotal.WithLabelValues(operation).Add(float64(edges))
}

// RecordSkippedDerivation records a derivation skipped for a missing label
func (r *Registry) RecordSkippedDerivation(operation string) {
	if r == nil {
		return
	}
	r.DerivationsSkipped.WithLabelValues(operation).Inc()
}

// RecordOntology records an ontology inference
func (r *Registry) RecordOntology() {
	if r == nil {
		return
	}
	r.OntologyGenerationsTotal.Inc()
}

// RecordExport records a filtered export and its output sizes
func (r *Registry) RecordExport(nodes, edges int) {
	if r == nil {
		return
	}
	r.ExportsTotal.Inc()
	r.ExportedNodesTotal.Add(float64(nodes))
	r.ExportedEdgesTotal.Add(float64(edges))
}

// SetGraphSize updates the graph size gauges
func (r *Registry) SetGraphSize(nodes, relations int) {
	if r == nil {
		return
	}
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphRelationsTotal.Set(float64(relations))
}
