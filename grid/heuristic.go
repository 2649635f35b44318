package grid

import (
	"fmt"
	"math"
	"slices"
)

// Heuristic estimates the cost of travelling between two points.
// It has the same underlying type as path.Heuristic[Point].
type Heuristic = func(a, b Point) float64

func delta(a, b Point) (dx, dy float64) {
	return math.Abs(float64(a.X - b.X)), math.Abs(float64(a.Y - b.Y))
}

// Manhattan returns the number of orthogonal steps between a and b.
// It is admissible and consistent on a 4-connected grid whose cells
// all cost at least 1.
func Manhattan(a, b Point) float64 {
	dx, dy := delta(a, b)
	return dx + dy
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	dx, dy := delta(a, b)
	return math.Hypot(dx, dy)
}

// Chebyshev returns the number of king moves between a and b.
func Chebyshev(a, b Point) float64 {
	dx, dy := delta(a, b)
	return max(dx, dy)
}

// Octile returns the cost of the cheapest unobstructed path from a to b
// when diagonal steps cost Sqrt2.
func Octile(a, b Point) float64 {
	dx, dy := delta(a, b)
	return dx + dy + (math.Sqrt2-2)*min(dx, dy)
}

var heuristics = map[string]Heuristic{
	"manhattan": Manhattan,
	"euclidean": Euclidean,
	"chebyshev": Chebyshev,
	"octile":    Octile,
	"none": func(Point, Point) float64 {
		return 0
	},
}

// HeuristicNames returns the names accepted by HeuristicFor, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for name := range heuristics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HeuristicFor returns the heuristic with the given name. The name
// "none" selects a heuristic that always returns zero.
func HeuristicFor(name string) (Heuristic, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("grid: unknown heuristic %q", name)
	}
	return h, nil
}

// Heuristic returns the named heuristic scaled by the grid's cheapest
// cell cost, so that a heuristic admissible for unit costs stays
// admissible on g.
func (g *Grid) Heuristic(name string) (Heuristic, error) {
	h, err := HeuristicFor(name)
	if err != nil {
		return nil, err
	}
	if g.minCost == 1 {
		return h, nil
	}
	scale := g.minCost
	return func(a, b Point) float64 {
		return scale * h(a, b)
	}, nil
}
