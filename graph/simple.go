package graph

import (
	"fmt"
	"math"
)

// Simple implements Weighted for a concrete set of comparable nodes.
// Edges are reported in the order they were added, so searches over a
// Simple graph are reproducible.
// The zero value is an empty graph ready to use.
type Simple[Node comparable] struct {
	edges    map[Node][]Edge[Node]
	allNodes []Node
}

// Graph returns g as the Weighted interface. This avoids the annoying
// explicit type instantiation needed when passing g to generic functions.
func (g *Simple[Node]) Graph() Weighted[Node, Edge[Node]] {
	return g
}

// AddNode adds a node. Typically this is only used to add
// nodes with no incoming or outgoing edges.
func (g *Simple[Node]) AddNode(n Node) {
	g.addNode(n)
}

// AddEdge adds nodes from and to, and adds an edge from -> to
// with the given weight.
// You don't need to call AddNode first; the nodes will be implicitly added if they don't
// already exist. Parallel edges and self-loops are allowed.
// AddEdge panics if weight is negative or NaN.
func (g *Simple[Node]) AddEdge(from, to Node, weight float64) {
	if weight < 0 || math.IsNaN(weight) {
		panic(fmt.Sprintf("graph: invalid edge weight %v", weight))
	}
	g.addNode(from, Edge[Node]{From: from, To: to, Weight: weight})
	g.addNode(to)
}

// AddUndirected adds an edge in each direction between a and b.
func (g *Simple[Node]) AddUndirected(a, b Node, weight float64) {
	g.AddEdge(a, b, weight)
	if a != b {
		g.AddEdge(b, a, weight)
	}
}

// HasNode reports whether n has been added to the graph.
func (g *Simple[Node]) HasNode(n Node) bool {
	_, ok := g.edges[n]
	return ok
}

func (g *Simple[Node]) addNode(n Node, edges ...Edge[Node]) {
	if g.edges == nil {
		g.edges = make(map[Node][]Edge[Node])
	}
	if _, ok := g.edges[n]; !ok {
		g.allNodes = append(g.allNodes, n)
		g.edges[n] = nil
	}
	g.edges[n] = append(g.edges[n], edges...)
}

// AllNodes implements Enumerable.AllNodes.
// Note: the caller should not mutate the returned slice.
func (g *Simple[Node]) AllNodes() []Node {
	return g.allNodes
}

// EdgesFrom implements Graph.EdgesFrom.
// Note: the caller should not mutate the returned slice.
func (g *Simple[Node]) EdgesFrom(n Node) []Edge[Node] {
	return g.edges[n]
}

// Nodes implements Graph.Nodes.
func (g *Simple[Node]) Nodes(e Edge[Node]) (from, to Node) {
	return e.From, e.To
}

// EdgeWeight implements Weighted.EdgeWeight.
func (g *Simple[Node]) EdgeWeight(e Edge[Node]) float64 {
	return e.Weight
}
