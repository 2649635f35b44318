// Package grid builds rectangular grid graphs for path searches.
//
// A Grid is a graph.Weighted over Point values. Moving into a cell
// costs that cell's entry cost (1 unless set otherwise); diagonal moves,
// when enabled, cost Sqrt2 times as much and may not cut the corner of
// a blocked cell.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rogpeppe/astar/graph"
)

// Point identifies a grid cell. X grows to the east and Y to the south.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Edge is the edge type of a Grid.
type Edge = graph.Edge[Point]

// ErrOutOfRange is returned when a point lies outside the grid.
var ErrOutOfRange = errors.New("grid: point out of range")

// Grid is a width×height grid of cells, some of which may be blocked.
// A Grid must not be modified while it is being searched; concurrent
// searches of an unchanging Grid are safe.
type Grid struct {
	width, height int
	diagonal      bool

	// blocked holds the index of each blocked cell.
	blocked *roaring.Bitmap
	// costs holds entry costs that differ from 1.
	costs map[Point]float64
	// minCost holds the smallest entry cost of any cell.
	minCost float64
}

// New returns an open grid with the given dimensions in which
// every cell costs 1 to enter. It panics if either dimension is not
// positive or the grid has more cells than fit in a uint32.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	if uint64(width)*uint64(height) > math.MaxUint32 {
		panic(fmt.Sprintf("grid: %dx%d grid too large", width, height))
	}
	return &Grid{
		width:   width,
		height:  height,
		blocked: roaring.New(),
		costs:   make(map[Point]float64),
		minCost: 1,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// SetDiagonal sets whether moves to the four diagonal neighbours are allowed.
func (g *Grid) SetDiagonal(diagonal bool) { g.diagonal = diagonal }

// Diagonal reports whether diagonal moves are allowed.
func (g *Grid) Diagonal() bool { return g.diagonal }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p Point) uint32 {
	return uint32(p.Y*g.width + p.X)
}

// Block marks p as impassable.
func (g *Grid) Block(p Point) error {
	if !g.Contains(p) {
		return fmt.Errorf("cannot block %v: %w", p, ErrOutOfRange)
	}
	g.blocked.Add(g.index(p))
	return nil
}

// Unblock marks p as passable again.
func (g *Grid) Unblock(p Point) error {
	if !g.Contains(p) {
		return fmt.Errorf("cannot unblock %v: %w", p, ErrOutOfRange)
	}
	g.blocked.Remove(g.index(p))
	return nil
}

// Blocked reports whether p is blocked. Points outside
// the grid are reported as blocked.
func (g *Grid) Blocked(p Point) bool {
	return !g.Contains(p) || g.blocked.Contains(g.index(p))
}

// NumBlocked returns the number of blocked cells.
func (g *Grid) NumBlocked() int {
	return int(g.blocked.GetCardinality())
}

// SetCost sets the cost of entering p. The cost must be non-negative.
func (g *Grid) SetCost(p Point, cost float64) error {
	if !g.Contains(p) {
		return fmt.Errorf("cannot set cost of %v: %w", p, ErrOutOfRange)
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("grid: invalid cost %v for %v", cost, p)
	}
	old := g.Cost(p)
	if cost == 1 {
		delete(g.costs, p)
	} else {
		g.costs[p] = cost
	}
	switch {
	case cost < g.minCost:
		g.minCost = cost
	case old == g.minCost && old < 1 && cost > old:
		// The cheapest cell got dearer; another may now be cheapest.
		g.minCost = 1
		for _, c := range g.costs {
			g.minCost = min(g.minCost, c)
		}
	}
	return nil
}

// Cost returns the cost of entering p.
func (g *Grid) Cost(p Point) float64 {
	if c, ok := g.costs[p]; ok {
		return c
	}
	return 1
}

// MinCost returns the smallest cost of entering any cell.
func (g *Grid) MinCost() float64 {
	return g.minCost
}

// steps lists neighbour offsets in the order EdgesFrom reports them:
// the orthogonal moves first, then the diagonal ones.
var steps = [...]Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// EdgesFrom implements graph.Graph.EdgesFrom. Blocked cells and
// points outside the grid have no edges.
func (g *Grid) EdgesFrom(p Point) []Edge {
	if g.Blocked(p) {
		return nil
	}
	n := 4
	if g.diagonal {
		n = 8
	}
	edges := make([]Edge, 0, n)
	for i, d := range steps[:n] {
		q := Point{p.X + d.X, p.Y + d.Y}
		if g.Blocked(q) {
			continue
		}
		w := g.Cost(q)
		if i >= 4 {
			// No squeezing past the corner of a blocked cell.
			if g.Blocked(Point{p.X + d.X, p.Y}) || g.Blocked(Point{p.X, p.Y + d.Y}) {
				continue
			}
			w *= math.Sqrt2
		}
		edges = append(edges, Edge{From: p, To: q, Weight: w})
	}
	return edges
}

// Nodes implements graph.Graph.Nodes.
func (g *Grid) Nodes(e Edge) (from, to Point) {
	return e.From, e.To
}

// EdgeWeight implements graph.Weighted.EdgeWeight.
func (g *Grid) EdgeWeight(e Edge) float64 {
	return e.Weight
}

// AllNodes returns every open cell in row-major order.
func (g *Grid) AllNodes() []Point {
	nodes := make([]Point, 0, g.width*g.height-g.NumBlocked())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if p := (Point{x, y}); !g.Blocked(p) {
				nodes = append(nodes, p)
			}
		}
	}
	return nodes
}

// HeuristicCost returns the default estimate of the cost from x to y:
// octile distance when diagonal moves are allowed and Manhattan distance
// otherwise, scaled by the cheapest cell cost so that it never
// overestimates.
func (g *Grid) HeuristicCost(x, y Point) float64 {
	h := Manhattan
	if g.diagonal {
		h = Octile
	}
	return g.minCost * h(x, y)
}
