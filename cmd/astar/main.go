// The astar command searches grid scenarios for their cheapest paths.
//
// Each PATH argument names a scenario file, or a directory whose
// .hcl files are all loaded. Scenarios are searched concurrently and
// the results printed in the order the scenarios were loaded.
//
// The exit status is 0 when every goal was reached, 3 when some goal
// was unreachable, 2 for usage errors and 1 for anything else.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rogpeppe/astar/graph/path"
	"github.com/rogpeppe/astar/internal/ctxlog"
	"github.com/rogpeppe/astar/scenario"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// run encapsulates the command for easier testing.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	scenarios, err := scenario.LoadPaths(ctx, cfg.Paths...)
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		return fmt.Errorf("no scenarios found")
	}
	reports, err := search(ctx, scenarios, cfg.Concurrency)
	if err != nil {
		return err
	}
	if err := writers[cfg.Format](stdout, reports); err != nil {
		return fmt.Errorf("cannot write results: %w", err)
	}
	failed := 0
	for _, r := range reports {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return &ExitError{
			Code:    exitUnreachable,
			Message: fmt.Sprintf("%d of %d goals unreachable", failed, len(reports)),
		}
	}
	return nil
}

// search runs every scenario, at most concurrency at a time.
func search(ctx context.Context, scenarios []*scenario.Scenario, concurrency int) ([]report, error) {
	logger := ctxlog.FromContext(ctx)
	reports := make([]report, len(scenarios))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for i, s := range scenarios {
		i, s := i, s
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			res, err := s.Run()
			if err != nil && !errors.Is(err, path.ErrUnreachable) {
				return fmt.Errorf("scenario %s: %w", s.Name, err)
			}
			reports[i] = report{
				Scenario: s,
				Result:   res,
				Err:      err,
			}
			logger.Info("Searched scenario",
				"name", s.Name,
				"status", reports[i].status(),
				"cost", res.Cost,
				"expanded", res.Expanded,
				"duration", time.Since(t0),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
