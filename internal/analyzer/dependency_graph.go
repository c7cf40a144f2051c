package analyzer

import (
	"errors"
	"slices"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/ludo-technologies/archscan/domain"
)

// DepGraph is a directed graph of file dependencies.
// Nodes keep insertion order; dependency lists keep import order and may
// contain duplicates and self references.
type DepGraph struct {
	order []string
	deps  map[string][]string
}

// NewDepGraph creates an empty dependency graph
func NewDepGraph() *DepGraph {
	return &DepGraph{
		deps: make(map[string][]string),
	}
}

// AddNode adds a file node; adding an existing node is a no-op
func (g *DepGraph) AddNode(name string) {
	if name == "" {
		return
	}
	if _, ok := g.deps[name]; ok {
		return
	}
	g.deps[name] = nil
	g.order = append(g.order, name)
}

// AddEdge appends to to the dependency list of from.
// Only from becomes a node; to is referenced as a value.
func (g *DepGraph) AddEdge(from, to string) {
	if from == "" || to == "" {
		return
	}
	g.AddNode(from)
	g.deps[from] = append(g.deps[from], to)
}

// HasNode reports whether name is a node of the graph
func (g *DepGraph) HasNode(name string) bool {
	_, ok := g.deps[name]
	return ok
}

// HasEdge reports whether from depends on to
func (g *DepGraph) HasEdge(from, to string) bool {
	return slices.Contains(g.deps[from], to)
}

// Nodes returns the node names in insertion order
func (g *DepGraph) Nodes() []string {
	return slices.Clone(g.order)
}

// Dependencies returns the dependency list of name
func (g *DepGraph) Dependencies(name string) []string {
	return slices.Clone(g.deps[name])
}

// NodeCount returns the number of nodes
func (g *DepGraph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of edges, duplicates included
func (g *DepGraph) EdgeCount() int {
	n := 0
	for _, to := range g.deps {
		n += len(to)
	}
	return n
}

// Edges returns all edges in node order then import order
func (g *DepGraph) Edges() []domain.DependencyEdge {
	edges := make([]domain.DependencyEdge, 0, g.EdgeCount())
	for _, from := range g.order {
		for _, to := range g.deps[from] {
			edges = append(edges, domain.DependencyEdge{From: from, To: to})
		}
	}
	return edges
}

// AsMap returns a copy of the adjacency lists keyed by node.
// Every node is present, including nodes without dependencies.
func (g *DepGraph) AsMap() map[string][]string {
	out := make(map[string][]string, len(g.order))
	for _, n := range g.order {
		deps := g.deps[n]
		if deps == nil {
			deps = []string{}
		}
		out[n] = slices.Clone(deps)
	}
	return out
}

// ToDOT renders the graph in Graphviz DOT, filling cycle members and
// colouring edges between them red. Duplicate edges are drawn once.
func (g *DepGraph) ToDOT(cycles []domain.Cycle) (string, error) {
	inCycle := make(map[string]struct{})
	for _, c := range cycles {
		for _, n := range c {
			inCycle[n] = struct{}{}
		}
	}

	dg := graph.New(graph.StringHash, graph.Directed())

	addVertex := func(n string) error {
		var opts []func(*graph.VertexProperties)
		if _, ok := inCycle[n]; ok {
			opts = append(opts,
				graph.VertexAttribute("style", "filled"),
				graph.VertexAttribute("fillcolor", "#ffe6e6"))
		}
		if err := dg.AddVertex(n, opts...); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return err
		}
		return nil
	}

	for _, n := range g.order {
		if err := addVertex(n); err != nil {
			return "", err
		}
	}
	for _, e := range g.Edges() {
		if err := addVertex(e.To); err != nil {
			return "", err
		}
		var opts []func(*graph.EdgeProperties)
		_, fromCycle := inCycle[e.From]
		_, toCycle := inCycle[e.To]
		if fromCycle && toCycle {
			opts = append(opts, graph.EdgeAttribute("color", "red"))
		}
		if err := dg.AddEdge(e.From, e.To, opts...); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return "", err
		}
	}

	var b strings.Builder
	if err := draw.DOT(dg, &b, draw.GraphAttribute("rankdir", "LR")); err != nil {
		return "", err
	}
	return b.String(), nil
}
