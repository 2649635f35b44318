// Package scenario loads grid search problems from HCL files.
//
// A scenario file describes a grid, the cells to search between and
// the obstacles on the way:
//
//	grid {
//	  width    = 8
//	  height   = 6
//	  diagonal = true
//	}
//	start = [0, 0]
//	goal  = [width - 1, height - 1]
//	heuristic      = "octile"
//	max_expansions = 1000
//
//	wall {
//	  cells = concat(rect(3, 0, 3, 3), [[5, 5]])
//	}
//	terrain {
//	  cost  = 4
//	  cells = [for x in range(width) : [x, 4]]
//	}
//
// Everything outside the grid block may refer to the variables width
// and height and call the functions concat, max, min, range and rect.
// The heuristic defaults to "octile" on diagonal grids and "manhattan"
// otherwise; max_expansions defaults to zero, meaning no limit.
package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"

	"github.com/rogpeppe/astar/graph/path"
	"github.com/rogpeppe/astar/grid"
)

// Scenario is a single search problem on a grid.
type Scenario struct {
	// Name identifies the scenario. It defaults to the base name of
	// the file it was loaded from, without the extension.
	Name string

	Grid          *grid.Grid
	Start, Goal   grid.Point
	Heuristic     string
	MaxExpansions int
}

// Run searches s.Grid for the cheapest path from s.Start to s.Goal.
// Options in opts are applied after the scenario's own limit.
func (s *Scenario) Run(opts ...path.Option) (path.Result[grid.Point], error) {
	h, err := s.Grid.Heuristic(s.Heuristic)
	if err != nil {
		return path.Result[grid.Point]{}, err
	}
	opts = append([]path.Option{path.WithMaxExpansions(s.MaxExpansions)}, opts...)
	return path.AStar[grid.Point, grid.Edge](s.Grid, s.Start, s.Goal, h, opts...)
}

// hclGrid is the grid block. It is decoded before the rest of the file
// so that its dimensions are available as variables.
type hclGrid struct {
	Width    int  `hcl:"width"`
	Height   int  `hcl:"height"`
	Diagonal bool `hcl:"diagonal,optional"`
}

// hclScenario is everything in a scenario file but the grid block.
type hclScenario struct {
	Name          string        `hcl:"name,optional"`
	Start         []int         `hcl:"start"`
	Goal          []int         `hcl:"goal"`
	Heuristic     string        `hcl:"heuristic,optional"`
	MaxExpansions int           `hcl:"max_expansions,optional"`
	Walls         []*hclWall    `hcl:"wall,block"`
	Terrain       []*hclTerrain `hcl:"terrain,block"`
}

type hclWall struct {
	Cells [][]int `hcl:"cells"`
}

type hclTerrain struct {
	Cost  float64 `hcl:"cost"`
	Cells [][]int `hcl:"cells"`
}

var gridSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "grid"}},
}

// decode builds the scenario described by body.
func decode(filename, name string, body hcl.Body) (*Scenario, error) {
	content, rest, diags := body.PartialContent(gridSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}
	switch len(content.Blocks) {
	case 0:
		return nil, fmt.Errorf("%s: missing grid block", filename)
	case 1:
	default:
		return nil, fmt.Errorf("%s: duplicate grid block", content.Blocks[1].DefRange)
	}
	ectx := &hcl.EvalContext{
		Functions: functions(),
	}
	var hg hclGrid
	if diags := gohcl.DecodeBody(content.Blocks[0].Body, ectx, &hg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}
	if hg.Width <= 0 || hg.Height <= 0 {
		return nil, fmt.Errorf("%s: invalid grid dimensions %dx%d", filename, hg.Width, hg.Height)
	}
	if int64(hg.Width)*int64(hg.Height) > maxCells {
		return nil, fmt.Errorf("%s: %dx%d grid too large", filename, hg.Width, hg.Height)
	}
	ectx.Variables = map[string]cty.Value{
		"width":  cty.NumberIntVal(int64(hg.Width)),
		"height": cty.NumberIntVal(int64(hg.Height)),
	}
	var hs hclScenario
	if diags := gohcl.DecodeBody(rest, ectx, &hs); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}
	s, err := build(&hg, &hs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}

// maxCells bounds the size of a scenario grid.
const maxCells = 1 << 26

func build(hg *hclGrid, hs *hclScenario) (*Scenario, error) {
	g := grid.New(hg.Width, hg.Height)
	g.SetDiagonal(hg.Diagonal)
	s := &Scenario{
		Name:          hs.Name,
		Grid:          g,
		Heuristic:     hs.Heuristic,
		MaxExpansions: hs.MaxExpansions,
	}
	var err error
	if s.Start, err = cell(g, hs.Start); err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}
	if s.Goal, err = cell(g, hs.Goal); err != nil {
		return nil, fmt.Errorf("invalid goal: %w", err)
	}
	if s.Heuristic == "" {
		s.Heuristic = "manhattan"
		if g.Diagonal() {
			s.Heuristic = "octile"
		}
	}
	if _, err := grid.HeuristicFor(s.Heuristic); err != nil {
		return nil, err
	}
	if s.MaxExpansions < 0 {
		return nil, fmt.Errorf("invalid max_expansions %d", s.MaxExpansions)
	}
	for i, w := range hs.Walls {
		for _, c := range w.Cells {
			p, err := cell(g, c)
			if err != nil {
				return nil, fmt.Errorf("wall %d: %w", i, err)
			}
			if err := g.Block(p); err != nil {
				return nil, fmt.Errorf("wall %d: %w", i, err)
			}
		}
	}
	for i, t := range hs.Terrain {
		for _, c := range t.Cells {
			p, err := cell(g, c)
			if err != nil {
				return nil, fmt.Errorf("terrain %d: %w", i, err)
			}
			if err := g.SetCost(p, t.Cost); err != nil {
				return nil, fmt.Errorf("terrain %d: %w", i, err)
			}
		}
	}
	if g.Blocked(s.Start) {
		return nil, fmt.Errorf("start %v is blocked", s.Start)
	}
	if g.Blocked(s.Goal) {
		return nil, fmt.Errorf("goal %v is blocked", s.Goal)
	}
	return s, nil
}

// cell converts an [x, y] pair to a point inside g.
func cell(g *grid.Grid, xy []int) (grid.Point, error) {
	if len(xy) != 2 {
		return grid.Point{}, fmt.Errorf("cell %v does not have two coordinates", xy)
	}
	p := grid.Point{X: xy[0], Y: xy[1]}
	if !g.Contains(p) {
		return grid.Point{}, fmt.Errorf("cell %v: %w", p, grid.ErrOutOfRange)
	}
	return p, nil
}
