// Package gonumgraph lets graphs built with gonum.org/v1/gonum/graph be
// searched with the path package.
package gonumgraph

import (
	"cmp"
	"slices"

	gonum "gonum.org/v1/gonum/graph"
	gonumpath "gonum.org/v1/gonum/graph/path"

	"github.com/rogpeppe/astar/graph"
)

// Edge is a weighted edge between two gonum node IDs.
type Edge = graph.Edge[int64]

// Graph adapts a gonum weighted graph to graph.Weighted, identifying
// nodes by their gonum IDs.
//
// gonum graphs report neighbours in an unspecified order; Graph sorts
// them by ID so that searches are reproducible.
type Graph struct {
	g gonum.Weighted
}

// New returns an adapter for g. Weights are taken from g.Weight,
// so an unweighted gonum graph can be adapted by wrapping it to
// implement gonum.Weighted.
func New(g gonum.Weighted) *Graph {
	return &Graph{g: g}
}

// EdgesFrom implements graph.Graph.EdgesFrom.
func (g *Graph) EdgesFrom(id int64) []Edge {
	if g.g.Node(id) == nil {
		return nil
	}
	to := gonum.NodesOf(g.g.From(id))
	edges := make([]Edge, 0, len(to))
	for _, n := range to {
		w, ok := g.g.Weight(id, n.ID())
		if !ok {
			continue
		}
		edges = append(edges, Edge{From: id, To: n.ID(), Weight: w})
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.To, b.To)
	})
	return edges
}

// Nodes implements graph.Graph.Nodes.
func (g *Graph) Nodes(e Edge) (from, to int64) {
	return e.From, e.To
}

// EdgeWeight implements graph.Weighted.EdgeWeight.
func (g *Graph) EdgeWeight(e Edge) float64 {
	return e.Weight
}

// AllNodes returns the IDs of all the nodes in the graph in ascending order.
func (g *Graph) AllNodes() []int64 {
	nodes := gonum.NodesOf(g.g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)
	return ids
}

// Heuristic converts a gonum heuristic into one over node IDs.
// IDs unknown to the graph are passed to h as nil nodes.
func (g *Graph) Heuristic(h gonumpath.Heuristic) func(x, y int64) float64 {
	return func(x, y int64) float64 {
		return h(g.g.Node(x), g.g.Node(y))
	}
}
