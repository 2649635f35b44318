package grid

import (
	"strings"
)

// Render draws the grid as text, one line per row, marking the
// given path. Blocked cells are drawn as '#', cells with a cost other
// than 1 as '~', open cells as '.', path cells as '*', and the first
// and last points of the path as 'S' and 'G'.
func (g *Grid) Render(path []Point) string {
	marks := make(map[Point]byte, len(path))
	for i, p := range path {
		switch i {
		case 0:
			marks[p] = 'S'
		case len(path) - 1:
			marks[p] = 'G'
		default:
			marks[p] = '*'
		}
	}
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			c, ok := marks[p]
			switch {
			case ok:
			case g.Blocked(p):
				c = '#'
			case g.Cost(p) != 1:
				c = '~'
			default:
				c = '.'
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
