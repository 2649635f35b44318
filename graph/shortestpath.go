package graph

// ShortestPath returns a path from -> to in g with the fewest edges,
// ignoring any weights. The returned slice holds the edges leading from
// the source to the destination, and is nil if to cannot be reached or
// from == to. Among paths of equal length, the one whose edges come
// earliest in EdgesFrom order wins.
func ShortestPath[Node comparable, Edge any](g Graph[Node, Edge], from, to Node) []Edge {
	if from == to {
		return nil
	}
	// via holds the edge each discovered node was first reached by.
	via := make(map[Node]Edge)
	seen := map[Node]bool{from: true}
	queue := []Node{from}
	found := false
	for len(queue) > 0 && !found {
		n := queue[0]
		queue = queue[1:]
		for _, e := range g.EdgesFrom(n) {
			edgeFrom, edgeTo := g.Nodes(e)
			if edgeFrom != n || seen[edgeTo] {
				continue
			}
			seen[edgeTo] = true
			via[edgeTo] = e
			if edgeTo == to {
				found = true
				break
			}
			queue = append(queue, edgeTo)
		}
	}
	if !found {
		return nil
	}
	var edges []Edge
	for n := to; n != from; {
		e := via[n]
		edges = append(edges, e)
		n, _ = g.Nodes(e)
	}
	reverse(edges)
	return edges
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
