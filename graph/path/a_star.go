// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rogpeppe/astar/graph"
	"github.com/rogpeppe/astar/heap"
)

// ErrUnreachable is returned when no path leads from the start node to
// the goal. It is an ordinary outcome, not a failure of the search.
var ErrUnreachable = errors.New("path: goal unreachable")

// ErrLimitExceeded is returned when a search gives up after reaching
// its expansion limit. It matches ErrUnreachable under errors.Is.
var ErrLimitExceeded = fmt.Errorf("%w: expansion limit exceeded", ErrUnreachable)

// Result holds a path found by a search.
type Result[Node comparable] struct {
	// Path holds the nodes from start to goal inclusive.
	Path []Node

	// Cost holds the sum of the edge weights along Path.
	Cost float64

	// Expanded holds the number of nodes taken from the frontier
	// and examined, including the goal. This value may help
	// with heuristic tuning.
	Expanded int
}

// AStar finds the A*-shortest path from start to goal in g using the heuristic h.
// It is shorthand for NewSearcher(g, h, opts...).Search(start, goal).
func AStar[Node comparable, Edge any](g graph.Graph[Node, Edge], start, goal Node, h Heuristic[Node], opts ...Option) (Result[Node], error) {
	return NewSearcher(g, h, opts...).Search(start, goal)
}

// Dijkstra finds the cheapest path from start to goal in g
// without the help of a heuristic.
func Dijkstra[Node comparable, Edge any](g graph.Graph[Node, Edge], start, goal Node, opts ...Option) (Result[Node], error) {
	return AStar(g, start, goal, NullHeuristic[Node], opts...)
}

// Searcher runs A* searches over a single graph. The storage it uses is
// retained between calls to Search, but no search sees state left by
// another. A Searcher must not be used by more than one goroutine at a
// time; independent searches can run concurrently on separate Searchers
// provided the graph tolerates concurrent reads.
type Searcher[Node comparable, Edge any] struct {
	g      graph.Graph[Node, Edge]
	weight Weighting[Edge]
	h      Heuristic[Node]
	opts   Options

	// frontier holds candidate entries, some of which may be stale.
	frontier *heap.Heap[frontierEntry[Node]]
	// cost holds the cheapest known cost from the start to each
	// discovered node.
	cost map[Node]float64
	// prev holds the node each discovered node was most recently
	// reached from. The start node has no entry.
	prev map[Node]Node
	// seq numbers frontier entries in push order.
	seq uint64
}

// NewSearcher returns a Searcher over g using the heuristic h.
//
// If h is nil, the searcher will use the g.HeuristicCost method if g implements HeuristicCoster,
// falling back to NullHeuristic otherwise. If the graph does not implement graph.Weighted,
// UniformCost is used.
func NewSearcher[Node comparable, Edge any](g graph.Graph[Node, Edge], h Heuristic[Node], opts ...Option) *Searcher[Node, Edge] {
	return &Searcher[Node, Edge]{
		g:        g,
		weight:   weightingFor(g),
		h:        heuristicFor(g, h),
		opts:     newOptions(opts),
		frontier: heap.New(nil, frontierEntry[Node].less),
		cost:     make(map[Node]float64),
		prev:     make(map[Node]Node),
	}
}

// Search returns the cheapest path from start to goal. If goal cannot
// be reached it returns ErrUnreachable, or ErrLimitExceeded if the
// expansion limit stopped the search first; the Expanded field of the
// result is valid in both cases.
//
// The path will be the cheapest if the heuristic is admissible and
// consistent. When frontier entries tie on priority the earliest pushed
// wins, so repeated searches return identical paths.
//
// An edge of weight +Inf is treated as absent.
// Search will panic if it encounters a negative edge weight.
func (s *Searcher[Node, Edge]) Search(start, goal Node) (Result[Node], error) {
	if start == goal {
		return Result[Node]{Path: []Node{start}}, nil
	}
	s.reset()
	s.cost[start] = 0
	s.push(start, 0, s.h(start, goal))

	expanded := 0
	for s.frontier.Len() > 0 {
		u := s.frontier.Pop()
		if u.gscore > s.cost[u.node] {
			// Superseded by a cheaper entry for the same node.
			continue
		}
		if s.opts.MaxExpansions > 0 && expanded >= s.opts.MaxExpansions {
			return Result[Node]{Expanded: expanded}, ErrLimitExceeded
		}
		expanded++

		if u.node == goal {
			return Result[Node]{
				Path:     s.pathTo(start, goal),
				Cost:     u.gscore,
				Expanded: expanded,
			}, nil
		}

		for _, e := range s.g.EdgesFrom(u.node) {
			_, v := s.g.Nodes(e)
			w := s.weight(e)
			if w < 0 || math.IsNaN(w) {
				panic("path: A* negative edge weight")
			}
			if math.IsInf(w, 1) {
				// Impassable.
				continue
			}
			g := u.gscore + w
			if known, ok := s.cost[v]; ok && g >= known {
				continue
			}
			s.cost[v] = g
			s.prev[v] = u.node
			s.push(v, g, g+s.h(v, goal))
		}
	}
	return Result[Node]{Expanded: expanded}, ErrUnreachable
}

func (s *Searcher[Node, Edge]) reset() {
	s.frontier.Reset()
	clear(s.cost)
	clear(s.prev)
	s.seq = 0
}

func (s *Searcher[Node, Edge]) push(n Node, g, f float64) {
	s.frontier.Push(frontierEntry[Node]{node: n, gscore: g, fscore: f, seq: s.seq})
	s.seq++
}

// pathTo follows the predecessor links back from goal.
func (s *Searcher[Node, Edge]) pathTo(start, goal Node) []Node {
	path := []Node{goal}
	for n := goal; n != start; {
		n = s.prev[n]
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}

// frontierEntry adds A* accounting to a graph node.
type frontierEntry[Node any] struct {
	node   Node
	gscore float64
	fscore float64
	seq    uint64
}

// less orders entries by priority, then by push order.
func (e frontierEntry[Node]) less(f frontierEntry[Node]) bool {
	if e.fscore != f.fscore {
		return e.fscore < f.fscore
	}
	return e.seq < f.seq
}
