package scenario

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/astar/graph/path"
	"github.com/rogpeppe/astar/grid"
	"github.com/rogpeppe/astar/internal/ctxlog"
)

const basicScenario = `
grid {
  width  = 5
  height = 5
}
start = [0, 0]
goal  = [4, 4]

wall {
  cells = [[1, 1], [1, 2]]
}
`

func TestParse(t *testing.T) {
	s, err := Parse("testdata/basic.hcl", []byte(basicScenario))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.Name, "basic"))
	qt.Assert(t, qt.Equals(s.Start, grid.Point{X: 0, Y: 0}))
	qt.Assert(t, qt.Equals(s.Goal, grid.Point{X: 4, Y: 4}))
	qt.Assert(t, qt.Equals(s.Heuristic, "manhattan"))
	qt.Assert(t, qt.Equals(s.MaxExpansions, 0))
	qt.Assert(t, qt.Equals(s.Grid.Width(), 5))
	qt.Assert(t, qt.Equals(s.Grid.Height(), 5))
	qt.Assert(t, qt.IsFalse(s.Grid.Diagonal()))
	qt.Assert(t, qt.Equals(s.Grid.NumBlocked(), 2))
	qt.Assert(t, qt.IsTrue(s.Grid.Blocked(grid.Point{X: 1, Y: 2})))

	res, err := s.Run()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(res.Cost, 8.0))
	qt.Assert(t, qt.HasLen(res.Path, 9))
	qt.Assert(t, qt.Equals(res.Path[0], s.Start))
	qt.Assert(t, qt.Equals(res.Path[8], s.Goal))
}

func TestParseExpressions(t *testing.T) {
	s, err := Parse("expr.hcl", []byte(`
name = "expressions"
grid {
  width    = 4
  height   = 3
  diagonal = true
}
start = [0, 0]
goal  = [width - 1, height - 1]

wall {
  cells = concat(rect(1, 1, 1, 0), [[min(3, width), 0]])
}
terrain {
  cost  = 2
  cells = [for x in range(width) : [x, max(0, height - 1)]]
}
`))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.Name, "expressions"))
	qt.Assert(t, qt.Equals(s.Goal, grid.Point{X: 3, Y: 2}))
	qt.Assert(t, qt.Equals(s.Heuristic, "octile"))
	qt.Assert(t, qt.IsTrue(s.Grid.Diagonal()))
	qt.Assert(t, qt.Equals(s.Grid.NumBlocked(), 3))
	for _, p := range []grid.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 0}} {
		qt.Assert(t, qt.IsTrue(s.Grid.Blocked(p)), qt.Commentf("%v", p))
	}
	for x := 0; x < 4; x++ {
		qt.Assert(t, qt.Equals(s.Grid.Cost(grid.Point{X: x, Y: 2}), 2.0))
	}
	qt.Assert(t, qt.Equals(s.Grid.Cost(grid.Point{X: 0, Y: 1}), 1.0))
	qt.Assert(t, qt.Equals(s.Grid.MinCost(), 1.0))
}

func TestRect(t *testing.T) {
	s, err := Parse("rect.hcl", []byte(`
grid {
  width  = 4
  height = 4
}
start = [0, 0]
goal  = [0, 3]
wall {
  cells = rect(2, 2, 1, 1)
}
`))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.Grid.NumBlocked(), 4))
	qt.Assert(t, qt.IsTrue(s.Grid.Blocked(grid.Point{X: 1, Y: 1})))
	qt.Assert(t, qt.IsTrue(s.Grid.Blocked(grid.Point{X: 2, Y: 2})))
}

func TestRunLimit(t *testing.T) {
	s, err := Parse("limit.hcl", []byte(`
grid {
  width  = 5
  height = 5
}
start          = [0, 0]
goal           = [4, 4]
heuristic      = "none"
max_expansions = 3
`))
	qt.Assert(t, qt.IsNil(err))
	_, err = s.Run()
	qt.Assert(t, qt.ErrorIs(err, path.ErrLimitExceeded))
	qt.Assert(t, qt.ErrorIs(err, path.ErrUnreachable))

	// Later options override the scenario's own limit.
	res, err := s.Run(path.WithMaxExpansions(0))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(res.Cost, 8.0))
}

var parseErrorTests = []struct {
	testName    string
	src         string
	expectError string
}{{
	testName:    "syntax",
	src:         `grid {`,
	expectError: `(?s)failed to parse scenario x\.hcl: .*`,
}, {
	testName:    "missing-grid",
	src:         "start = [0, 0]\ngoal = [1, 1]\n",
	expectError: `x\.hcl: missing grid block`,
}, {
	testName: "duplicate-grid",
	src: `
grid {
  width  = 2
  height = 2
}
grid {
  width  = 2
  height = 2
}
start = [0, 0]
goal  = [1, 1]
`,
	expectError: `x\.hcl:.*: duplicate grid block`,
}, {
	testName: "missing-goal",
	src: `
grid {
  width  = 2
  height = 2
}
start = [0, 0]
`,
	expectError: `(?s)failed to decode scenario x\.hcl: .*`,
}, {
	testName: "invalid-dimensions",
	src: `
grid {
  width  = 0
  height = 5
}
start = [0, 0]
goal  = [1, 1]
`,
	expectError: `x\.hcl: invalid grid dimensions 0x5`,
}, {
	testName: "start-out-of-range",
	src: `
grid {
  width  = 5
  height = 5
}
start = [width, 0]
goal  = [1, 1]
`,
	expectError: `x\.hcl: invalid start: cell \(5,0\): grid: point out of range`,
}, {
	testName: "goal-arity",
	src: `
grid {
  width  = 5
  height = 5
}
start = [0, 0]
goal  = [1]
`,
	expectError: `x\.hcl: invalid goal: cell \[1\] does not have two coordinates`,
}, {
	testName: "goal-blocked",
	src: `
grid {
  width  = 5
  height = 5
}
start = [0, 0]
goal  = [1, 1]
wall {
  cells = [[1, 1]]
}
`,
	expectError: `x\.hcl: goal \(1,1\) is blocked`,
}, {
	testName: "wall-out-of-range",
	src: `
grid {
  width  = 5
  height = 5
}
start = [0, 0]
goal  = [1, 1]
wall {
  cells = [[2, 2]]
}
wall {
  cells = [[2, -1]]
}
`,
	expectError: `x\.hcl: wall 1: cell \(2,-1\): grid: point out of range`,
}, {
	testName: "unknown-heuristic",
	src: `
grid {
  width  = 5
  height = 5
}
start     = [0, 0]
goal      = [1, 1]
heuristic = "zigzag"
`,
	expectError: `x\.hcl: grid: unknown heuristic "zigzag"`,
}, {
	testName: "negative-cost",
	src: `
grid {
  width  = 5
  height = 5
}
start = [0, 0]
goal  = [1, 1]
terrain {
  cost  = -1
  cells = [[1, 1]]
}
`,
	expectError: `x\.hcl: terrain 0: grid: invalid cost -1 for \(1,1\)`,
}, {
	testName: "negative-limit",
	src: `
grid {
  width  = 5
  height = 5
}
start          = [0, 0]
goal           = [1, 1]
max_expansions = -1
`,
	expectError: `x\.hcl: invalid max_expansions -1`,
}, {
	testName: "grid-too-large",
	src: `
grid {
  width  = 8193
  height = 8193
}
start = [0, 0]
goal  = [1, 1]
`,
	expectError: `x\.hcl: 8193x8193 grid too large`,
}, {
	testName: "rect-too-large",
	src: `
grid {
  width  = 5
  height = 5
}
start = [0, 0]
goal  = [1, 1]
wall {
  cells = rect(0, 0, 1024, 1023)
}
`,
	expectError: `(?s)failed to decode scenario x\.hcl: .*rectangle is 1025x1024 cells; the limit is 1048576 cells.*`,
}, {
	testName: "rect-too-long",
	src: `
grid {
  width  = 5
  height = 5
}
start = [0, 0]
goal  = [1, 1]
wall {
  cells = rect(-2000000000, 0, 2000000000, 0)
}
`,
	expectError: `(?s)failed to decode scenario x\.hcl: .*rectangle is 4000000001x1 cells; the limit is 1048576 cells.*`,
}, {
	testName: "rect-overflow",
	src: `
grid {
  width  = 5
  height = 5
}
start = [0, 0]
goal  = [1, 1]
wall {
  cells = rect(-4611686018427387904, 0, 4611686018427387904, 0)
}
`,
	expectError: `(?s)failed to decode scenario x\.hcl: .*"x0".*between -2147483648 and 2147483647.*`,
}}

func TestParseErrors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			s, err := Parse("x.hcl", []byte(test.src))
			qt.Assert(t, qt.ErrorMatches(err, test.expectError))
			qt.Assert(t, qt.IsNil(s))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.hcl"), basicScenario)
	writeFile(t, filepath.Join(dir, "a.hcl"), basicScenario)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a scenario")
	qt.Assert(t, qt.IsNil(os.Mkdir(filepath.Join(dir, "sub.hcl"), 0o777)))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	s, err := Load(ctx, filepath.Join(dir, "a.hcl"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.Name, "a"))
	qt.Assert(t, qt.StringContains(buf.String(), `msg="Loading scenario"`))
	qt.Assert(t, qt.StringContains(buf.String(), "blocked=2"))

	ss, err := LoadDir(ctx, dir)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(names(ss), []string{"a", "b"}))

	ss, err = LoadPaths(ctx, filepath.Join(dir, "b.hcl"), dir)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(names(ss), []string{"b", "a", "b"}))

	_, err = Load(ctx, filepath.Join(dir, "missing.hcl"))
	qt.Assert(t, qt.ErrorMatches(err, `(?s)failed to parse scenario .*missing\.hcl: .*`))

	_, err = LoadPaths(ctx, filepath.Join(dir, "missing"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}

func TestLoadDirEmpty(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	ss, err := LoadDir(ctx, t.TempDir())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(ss, 0))
	qt.Assert(t, qt.StringContains(buf.String(), "No scenario files found"))
}

func TestLoadDirError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.hcl"), "grid {")
	_, err := LoadDir(context.Background(), dir)
	qt.Assert(t, qt.ErrorMatches(err, `(?s)failed to parse scenario .*bad\.hcl: .*`))
}

func names(ss []*Scenario) []string {
	var r []string
	for _, s := range ss {
		r = append(r, s.Name)
	}
	return r
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0o666)
	qt.Assert(t, qt.IsNil(err))
}
