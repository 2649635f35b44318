package gonumgraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonum "gonum.org/v1/gonum/graph"
	gonumpath "gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/rogpeppe/astar/graph/gonumgraph"
	"github.com/rogpeppe/astar/graph/path"
)

// place is a gonum node with a position.
type place struct {
	id   int64
	x, y float64
}

func (p place) ID() int64 { return p.id }

func distance(a, b gonum.Node) float64 {
	pa, pb := a.(place), b.(place)
	return math.Hypot(pa.x-pb.x, pa.y-pb.y)
}

// randomPlaces returns an undirected graph of n places with m random
// roads, each at least as long as the straight line between its ends.
func randomPlaces(r *rand.Rand, n, m int) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	places := make([]place, n)
	for i := range places {
		places[i] = place{id: int64(i), x: float64(r.Intn(100)), y: float64(r.Intn(100))}
		g.AddNode(places[i])
	}
	for i := 0; i < m; i++ {
		a, b := places[r.Intn(n)], places[r.Intn(n)]
		if a.id == b.id {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(a, b, distance(a, b)*(1+r.Float64())))
	}
	return g
}

func TestAgreesWithGonumDijkstra(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		g := randomPlaces(r, 40, 90)
		adapted := gonumgraph.New(g)
		h := adapted.Heuristic(distance)
		start := int64(r.Intn(40))
		baseline := gonumpath.DijkstraFrom(g.Node(start), g)

		for goal := int64(0); goal < 40; goal++ {
			want := baseline.WeightTo(goal)
			res, err := path.AStar(adapted, start, goal, h)
			if math.IsInf(want, 1) {
				require.ErrorIs(t, err, path.ErrUnreachable)
				continue
			}
			require.NoError(t, err)
			assert.InDelta(t, want, res.Cost, 1e-9, "graph %d, %d -> %d", i, start, goal)
			assert.Equal(t, start, res.Path[0])
			assert.Equal(t, goal, res.Path[len(res.Path)-1])
			for j := 1; j < len(res.Path); j++ {
				assert.True(t, g.HasEdgeBetween(res.Path[j-1], res.Path[j]))
			}
		}
	}
}

func TestDirected(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, e := range []struct {
		from, to int64
		w        float64
	}{
		{1, 2, 1},
		{2, 3, 1},
		{1, 3, 5},
		{3, 4, 1},
	} {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.from), T: simple.Node(e.to), W: e.w})
	}
	adapted := gonumgraph.New(g)

	res, err := path.Dijkstra(adapted, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, res.Path)
	assert.Equal(t, 3.0, res.Cost)

	// Edges only run one way.
	_, err = path.Dijkstra(adapted, 4, 1)
	assert.ErrorIs(t, err, path.ErrUnreachable)
}

func TestEdgesFromIsSorted(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, id := range []int64{9, 3, 7, 1, 5} {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(id), W: float64(id)})
	}
	adapted := gonumgraph.New(g)

	edges := adapted.EdgesFrom(0)
	require.Len(t, edges, 5)
	var to []int64
	for _, e := range edges {
		from, dst := adapted.Nodes(e)
		assert.Equal(t, int64(0), from)
		assert.Equal(t, float64(dst), adapted.EdgeWeight(e))
		to = append(to, dst)
	}
	assert.Equal(t, []int64{1, 3, 5, 7, 9}, to)
	assert.Equal(t, []int64{0, 1, 3, 5, 7, 9}, adapted.AllNodes())

	// Unknown nodes are dead ends.
	assert.Empty(t, adapted.EdgesFrom(42))
}

func TestDeterministic(t *testing.T) {
	// A ring of unit edges has two equal routes to the far side.
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := int64(0); i < 8; i++ {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node((i + 1) % 8), W: 1})
	}
	adapted := gonumgraph.New(g)

	first, err := path.AStar(adapted, 0, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, first.Cost)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, first.Path)
	for i := 0; i < 10; i++ {
		again, err := path.AStar(adapted, 0, 4, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
