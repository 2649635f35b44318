package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rogpeppe/astar/graph/path"
	"github.com/rogpeppe/astar/grid"
	"github.com/rogpeppe/astar/mermaid"
	"github.com/rogpeppe/astar/scenario"
)

// report holds the outcome of searching one scenario.
// Err is nil or wraps path.ErrUnreachable.
type report struct {
	Scenario *scenario.Scenario
	Result   path.Result[grid.Point]
	Err      error
}

func (r *report) status() string {
	switch {
	case r.Err == nil:
		return "found"
	case errors.Is(r.Err, path.ErrLimitExceeded):
		return "limit exceeded"
	default:
		return "unreachable"
	}
}

var writers = map[string]func(w io.Writer, reports []report) error{
	"text":    writeText,
	"mermaid": writeMermaid,
	"json":    writeJSON,
}

func writeText(w io.Writer, reports []report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		s := r.Scenario
		if r.Err != nil {
			fmt.Fprintf(w, "%s: %s after %d expansions\n", s.Name, r.status(), r.Result.Expanded)
		} else {
			fmt.Fprintf(w, "%s: cost %g, %d steps, %d expansions\n", s.Name, r.Result.Cost, len(r.Result.Path)-1, r.Result.Expanded)
		}
		if _, err := io.WriteString(w, s.Grid.Render(r.Result.Path)); err != nil {
			return err
		}
	}
	return nil
}

// terrainStyle is the style of cells that cost more or less than 1 to enter.
const terrainStyle = "fill:#dca"

func writeMermaid(w io.Writer, reports []report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		g := r.Scenario.Grid
		m := mermaid.NewPathGraph(mermaid.Labeled[grid.Point, grid.Edge](g, func(p grid.Point) mermaid.NodeInfo {
			info := mermaid.NodeInfo{
				ID:   fmt.Sprintf("c%d_%d", p.X, p.Y),
				Text: fmt.Sprintf("%d,%d", p.X, p.Y),
			}
			if g.Cost(p) != 1 {
				info.Style = terrainStyle
			}
			return info
		}), r.Result.Path)
		data, err := m.MarshalMermaid()
		if err != nil {
			return fmt.Errorf("cannot draw %s: %w", r.Scenario.Name, err)
		}
		fmt.Fprintf(w, "%%%% %s: %s\n", r.Scenario.Name, r.status())
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

type jsonReport struct {
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Start    [2]int   `json:"start"`
	Goal     [2]int   `json:"goal"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path"`
}

func writeJSON(w io.Writer, reports []report) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		s := r.Scenario
		jr := jsonReport{
			Name:     s.Name,
			Status:   r.status(),
			Start:    [2]int{s.Start.X, s.Start.Y},
			Goal:     [2]int{s.Goal.X, s.Goal.Y},
			Cost:     r.Result.Cost,
			Expanded: r.Result.Expanded,
			Path:     [][2]int{},
		}
		for _, p := range r.Result.Path {
			jr.Path = append(jr.Path, [2]int{p.X, p.Y})
		}
		out = append(out, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
