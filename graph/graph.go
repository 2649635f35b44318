// Package graph defines the read-only view of a graph that the
// path package searches, together with a simple adjacency-list
// builder.
package graph

// Graph is the read-only view of a directed graph used by searches.
// Node must be usable as a map key and must keep a stable identity
// for the duration of any search over the graph.
type Graph[Node comparable, Edge any] interface {
	// EdgesFrom returns the edges leaving n. A node with no
	// outgoing edges, including a node the graph has never seen,
	// yields an empty slice rather than an error.
	// The caller must not mutate the returned slice.
	EdgesFrom(n Node) []Edge

	// Nodes returns the endpoints of e.
	Nodes(e Edge) (from, to Node)
}

// Weighted is implemented by graphs whose edges carry a cost.
// Weights must be non-negative.
type Weighted[Node comparable, Edge any] interface {
	Graph[Node, Edge]
	EdgeWeight(e Edge) float64
}

// Enumerable is implemented by graphs that can list all their nodes.
type Enumerable[Node comparable, Edge any] interface {
	Graph[Node, Edge]
	// AllNodes returns every node of the graph in a stable order.
	AllNodes() []Node
}

// Edge is a weighted directed edge. It is the edge type
// used by Simple and by the grid package.
type Edge[Node comparable] struct {
	From, To Node
	Weight   float64
}
