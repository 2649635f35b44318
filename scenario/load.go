package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/rogpeppe/astar/internal/ctxlog"
)

// Ext is the file name extension of scenario files.
const Ext = ".hcl"

// Parse decodes a scenario from src. The filename is used
// in error messages and to name the scenario.
func Parse(filename string, src []byte) (*Scenario, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}
	return decode(filename, baseName(filename), f.Body)
}

// Load reads the scenario in the file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario", "path", path)

	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, diags)
	}
	s, err := decode(path, baseName(path), f.Body)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded scenario",
		"name", s.Name,
		"width", s.Grid.Width(),
		"height", s.Grid.Height(),
		"blocked", s.Grid.NumBlocked(),
	)
	return s, nil
}

// LoadDir reads every scenario file directly inside dir,
// in file name order.
func LoadDir(ctx context.Context, dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}
	var scenarios []*Scenario
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Ext {
			continue
		}
		s, err := Load(ctx, filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	if len(scenarios) == 0 {
		ctxlog.FromContext(ctx).Warn("No scenario files found in directory", "path", dir)
	}
	return scenarios, nil
}

// LoadPaths loads the scenarios named by paths, each of which
// may be a scenario file or a directory holding them.
func LoadPaths(ctx context.Context, paths ...string) ([]*Scenario, error) {
	var scenarios []*Scenario
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			ss, err := LoadDir(ctx, p)
			if err != nil {
				return nil, err
			}
			scenarios = append(scenarios, ss...)
			continue
		}
		s, err := Load(ctx, p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
