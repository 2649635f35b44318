// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/rogpeppe/astar/graph"
)

// Weighting returns the cost of traversing an edge.
// It follows the semantics of graph.Weighted.EdgeWeight.
type Weighting[Edge any] func(e Edge) float64

// UniformCost returns a Weighting that returns an edge cost of 1 for
// every edge except self-loops, which cost zero.
func UniformCost[Node comparable, Edge any](g graph.Graph[Node, Edge]) Weighting[Edge] {
	return func(e Edge) float64 {
		from, to := g.Nodes(e)
		if from == to {
			return 0
		}
		return 1
	}
}

// Heuristic returns an estimate of the cost of travelling from x to y.
//
// A heuristic is admissible if it never overestimates the true remaining
// cost, and consistent if h(x, t) <= w(x, y) + h(y, t) for every edge x->y.
// Both properties are preconditions that the search does not check:
// with an inadmissible heuristic the search still terminates and returns
// a path, but that path need not be the cheapest.
type Heuristic[Node comparable] func(x, y Node) float64

// HeuristicCoster can be implemented by a [graph.Graph] to
// provide a default cost heuristic for the graph.
type HeuristicCoster[Node comparable] interface {
	HeuristicCost(x, y Node) float64
}

// NullHeuristic is an admissible, consistent heuristic that will not speed up computation.
// Searching with it is uniform-cost search (Dijkstra's algorithm).
func NullHeuristic[Node any](_, _ Node) float64 {
	return 0
}

// weightingFor returns the edge weighting used to search g.
func weightingFor[Node comparable, Edge any](g graph.Graph[Node, Edge]) Weighting[Edge] {
	if wg, ok := g.(graph.Weighted[Node, Edge]); ok {
		return wg.EdgeWeight
	}
	return UniformCost(g)
}

// heuristicFor returns h, or a default heuristic for g when h is nil.
func heuristicFor[Node comparable, Edge any](g graph.Graph[Node, Edge], h Heuristic[Node]) Heuristic[Node] {
	if h != nil {
		return h
	}
	if hc, ok := g.(HeuristicCoster[Node]); ok {
		return hc.HeuristicCost
	}
	return NullHeuristic[Node]
}
