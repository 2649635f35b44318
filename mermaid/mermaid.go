// Package mermaid provides functionality for marshaling graph structures
// to Mermaid diagram format. Mermaid is a text-based diagramming tool that
// generates diagrams from markdown-like syntax.
//
// Besides plain graphs, it can draw the result of a path search with the
// path's edges and nodes highlighted.
package mermaid

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/rogpeppe/astar/graph"
)

// PathStyle is the style given to nodes on a highlighted path
// that have no style of their own.
const PathStyle = "fill:#f96,stroke:#c00"

// Marshaler represents a type that can be marshaled into Mermaid diagram format.
type Marshaler interface {
	// MarshalMermaid returns the Mermaid representation of the object.
	// It returns an error if the marshaling fails.
	MarshalMermaid() ([]byte, error)
}

// NewGraph creates a Marshaler from a GraphInterface. The resulting Marshaler
// can be used to generate a Mermaid graph diagram representation.
// If g implements graph.Weighted, each edge is labeled with its weight.
func NewGraph[Node comparable, Edge any](g GraphInterface[Node, Edge]) Marshaler {
	return &graphImpl[Node, Edge]{g: g}
}

// NewPathGraph is like NewGraph but highlights path, a sequence of nodes
// such as one returned by a search: edges joining consecutive path nodes
// are drawn as thick links and path nodes without a style of their own
// are given PathStyle.
func NewPathGraph[Node comparable, Edge any](g GraphInterface[Node, Edge], path []Node) Marshaler {
	impl := &graphImpl[Node, Edge]{
		g:        g,
		onPath:   make(map[Node]bool, len(path)),
		pathEdge: make(map[[2]Node]bool, len(path)),
	}
	for i, n := range path {
		impl.onPath[n] = true
		if i > 0 {
			impl.pathEdge[[2]Node{path[i-1], n}] = true
		}
	}
	return impl
}

// GraphInterface defines the interface required for a graph to be marshaled
// to Mermaid format. It extends the standard graph.Graph interface with
// methods to retrieve all nodes and node metadata.
type GraphInterface[Node comparable, Edge any] interface {
	graph.Graph[Node, Edge]
	// AllNodes returns all nodes in the graph.
	AllNodes() []Node
	// NodeInfo returns metadata about a node, including its ID, display text, and style.
	NodeInfo(Node) NodeInfo
}

// NodeInfo contains metadata about a graph node for Mermaid rendering.
type NodeInfo struct {
	// ID is the unique identifier for the node in the Mermaid diagram.
	ID string
	// Text is the display text for the node. If empty, ID is used instead.
	Text string
	// Style contains Mermaid style declarations for the node (e.g., "fill:#f9f,stroke:#333").
	Style string
}

// Labeled returns a GraphInterface for g that obtains node
// metadata by calling info.
// If g implements graph.Weighted, so does the result.
func Labeled[Node comparable, Edge any](g graph.Enumerable[Node, Edge], info func(Node) NodeInfo) GraphInterface[Node, Edge] {
	l := labeled[Node, Edge]{g, info}
	if wg, ok := g.(graph.Weighted[Node, Edge]); ok {
		return weightedLabeled[Node, Edge]{l, wg.EdgeWeight}
	}
	return l
}

type labeled[Node comparable, Edge any] struct {
	graph.Enumerable[Node, Edge]
	info func(Node) NodeInfo
}

func (g labeled[Node, Edge]) NodeInfo(n Node) NodeInfo {
	return g.info(n)
}

type weightedLabeled[Node comparable, Edge any] struct {
	labeled[Node, Edge]
	weight func(Edge) float64
}

func (g weightedLabeled[Node, Edge]) EdgeWeight(e Edge) float64 {
	return g.weight(e)
}

type graphImpl[Node comparable, Edge any] struct {
	g GraphInterface[Node, Edge]

	// onPath and pathEdge are nil unless a path is highlighted.
	onPath   map[Node]bool
	pathEdge map[[2]Node]bool
}

func (g *graphImpl[Node, Edge]) MarshalMermaid() ([]byte, error) {
	var weight func(Edge) float64
	if wg, ok := g.g.(graph.Weighted[Node, Edge]); ok {
		weight = wg.EdgeWeight
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for _, n := range g.g.AllNodes() {
		info := g.g.NodeInfo(n)
		if info.ID == "" {
			return nil, fmt.Errorf("mermaid: node %v has no ID", n)
		}
		if info.ID != info.Text && info.Text != "" {
			fmt.Fprintf(&buf, "  %s[%s]\n", info.ID, info.Text)
		}
		style := info.Style
		if style == "" && g.onPath[n] {
			style = PathStyle
		}
		if style != "" {
			fmt.Fprintf(&buf, "  style %s %s\n", info.ID, style)
		}
		for _, e := range g.g.EdgesFrom(n) {
			from, to := g.g.Nodes(e)
			arrow := "-->"
			if g.pathEdge[[2]Node{from, to}] {
				arrow = "==>"
			}
			if weight != nil {
				arrow += "|" + strconv.FormatFloat(weight(e), 'g', -1, 64) + "|"
			}
			fmt.Fprintf(&buf, "  %s%s%s\n", g.g.NodeInfo(from).ID, arrow, g.g.NodeInfo(to).ID)
		}
	}
	return buf.Bytes(), nil
}
