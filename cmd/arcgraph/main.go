package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/arcgraph/arcgraph/pkg/graph"
	"github.com/arcgraph/arcgraph/pkg/interchange"
	"github.com/arcgraph/arcgraph/pkg/logging"
	"github.com/arcgraph/arcgraph/pkg/metrics"
)

// operation is one derivation requested on the command line, kept in
// flag order so derivations can build on earlier results.
type operation struct {
	kind string // "invert", "compose" or "lift"
	arg  string
}

// operationFlag collects repeatable derivation flags into a shared,
// ordered list.
type operationFlag struct {
	kind string
	ops  *[]operation
}

func (f *operationFlag) String() string { return "" }

func (f *operationFlag) Set(value string) error {
	*f.ops = append(*f.ops, operation{kind: f.kind, arg: value})
	return nil
}

func main() {
	var ops []operation

	input := flag.String("input", "", "Input document (.json, .yaml or .yml)")
	output := flag.String("output", "", "Output path (default: stdout as JSON)")
	edges := flag.String("edges", "", "Comma-separated edge labels to export (default: all)")
	nodes := flag.String("nodes", "", "Node label policy: 'all' or comma-separated extra labels")
	ontology := flag.Bool("ontology", false, "Print the inferred ontology")
	showMetrics := flag.Bool("metrics", false, "Print collected metrics to stderr")
	flag.Var(&operationFlag{kind: "invert", ops: &ops}, "invert",
		"Invert a relation: label[=new_label] (repeatable)")
	flag.Var(&operationFlag{kind: "compose", ops: &ops}, "compose",
		"Compose two relations: label1,label2[=new_label] (repeatable)")
	flag.Var(&operationFlag{kind: "lift", ops: &ops}, "lift",
		"Lift a relation: label1,label2[=new_label] (repeatable)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "error: -input is required")
		flag.Usage()
		os.Exit(2)
	}

	// Logs go to stderr so the exported document owns stdout
	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")))
	registry := metrics.DefaultRegistry()

	doc, err := interchange.LoadFile(*input)
	if err != nil {
		fatal(err)
	}

	g, err := graph.New(doc, graph.WithLogger(logger), graph.WithMetrics(registry))
	if err != nil {
		fatal(err)
	}

	for _, op := range ops {
		if err := apply(g, op); err != nil {
			fatal(err)
		}
	}

	if *ontology {
		printOntology(g.GenerateOntology())
	}

	// Skip the export when only the ontology was asked for
	if !*ontology || *output != "" || *edges != "" || *nodes != "" {
		exported := export(g, *edges, *nodes)
		if err := writeDocument(exported, *output); err != nil {
			fatal(err)
		}
	}

	if *showMetrics {
		printMetrics(registry)
	}
}

// apply runs one derivation against the graph.
func apply(g *graph.Graph, op operation) error {
	labels, newLabel := splitArg(op.arg)

	switch op.kind {
	case "invert":
		if len(labels) != 1 {
			return fmt.Errorf("-invert wants label[=new_label], got %q", op.arg)
		}
		g.InvertEdges(labels[0], newLabel)
	case "compose":
		if len(labels) != 2 {
			return fmt.Errorf("-compose wants label1,label2[=new_label], got %q", op.arg)
		}
		g.ComposeEdges(labels[0], labels[1], newLabel)
	case "lift":
		if len(labels) != 2 {
			return fmt.Errorf("-lift wants label1,label2[=new_label], got %q", op.arg)
		}
		g.LiftEdges(labels[0], labels[1], newLabel)
	}
	return nil
}

// splitArg parses "l1,l2=new" into its labels and optional new label.
func splitArg(arg string) ([]string, string) {
	newLabel := ""
	if i := strings.Index(arg, "="); i >= 0 {
		newLabel = arg[i+1:]
		arg = arg[:i]
	}
	labels := strings.Split(arg, ",")
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
	}
	return labels, newLabel
}

// export builds the filtered view selected by -edges and -nodes.
func export(g *graph.Graph, edges, nodes string) *interchange.Document {
	var edgeLabels []string
	if edges != "" {
		edgeLabels = splitList(edges)
	}

	var opts []graph.ExportOption
	switch {
	case nodes == "all":
		opts = append(opts, graph.WithAllNodeLabels())
	case nodes != "":
		opts = append(opts, graph.WithNodeLabels(splitList(nodes)...))
	}

	return g.ToDocument(edgeLabels, opts...)
}

func splitList(csv string) []string {
	parts := strings.Split(csv, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// writeDocument writes the document to the given path, or to stdout as
// JSON when no path is given. The format follows the file extension.
func writeDocument(doc *interchange.Document, path string) error {
	if path == "" {
		return interchange.Write(os.Stdout, doc)
	}
	return interchange.SaveFile(path, doc)
}

// printOntology writes the inferred ontology to stderr, one relation per
// line.
func printOntology(ontology graph.Ontology) {
	for _, label := range ontology.Labels() {
		pairs := make([]string, 0, len(ontology[label]))
		for _, pair := range ontology[label].Sorted() {
			pairs = append(pairs, fmt.Sprintf("(%s -> %s)", pair.Source, pair.Target))
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", label, strings.Join(pairs, ", "))
	}
}

// printMetrics gathers the registry and writes non-zero samples to stderr.
func printMetrics(registry *metrics.Registry) {
	families, err := registry.Prometheus().Gather()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gather metrics: %v\n", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value := 0.0
			switch {
			case metric.GetCounter() != nil:
				value = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				value = metric.GetGauge().GetValue()
			}
			labels := ""
			for _, pair := range metric.GetLabel() {
				labels += fmt.Sprintf("{%s=%s}", pair.GetName(), pair.GetValue())
			}
			fmt.Fprintf(os.Stderr, "%s%s %g\n", family.GetName(), labels, value)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
