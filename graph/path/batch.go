package path

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rogpeppe/astar/graph"
)

// Query names the endpoints of one search.
type Query[Node comparable] struct {
	Start, Goal Node
}

// Outcome holds the result of one query run by SearchAll.
type Outcome[Node comparable] struct {
	Query  Query[Node]
	Result Result[Node]
	// Err holds the error returned by the search, typically
	// ErrUnreachable or ErrLimitExceeded.
	Err error
}

// SearchAll runs an independent search for each query over g and
// returns the outcomes in query order. Up to Options.Concurrency
// searches run at once, each on its own Searcher, so g must be safe
// for concurrent reads.
//
// The returned error is non-nil only if ctx is done before every
// search has begun running; a search that has begun always runs to
// completion, so cancelling ctx during the last search does not
// discard the outcomes.
func SearchAll[Node comparable, Edge any](ctx context.Context, g graph.Graph[Node, Edge], h Heuristic[Node], queries []Query[Node], opts ...Option) ([]Outcome[Node], error) {
	o := newOptions(opts)
	searchers := sync.Pool{
		New: func() any {
			return NewSearcher(g, h, opts...)
		},
	}
	outcomes := make([]Outcome[Node], len(queries))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Concurrency)
	started := 0
	for i, q := range queries {
		i, q := i, q
		if egctx.Err() != nil {
			break
		}
		started++
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			s := searchers.Get().(*Searcher[Node, Edge])
			defer searchers.Put(s)
			res, err := s.Search(q.Start, q.Goal)
			outcomes[i] = Outcome[Node]{
				Query:  q,
				Result: res,
				Err:    err,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if started < len(queries) {
		return nil, ctx.Err()
	}
	return outcomes, nil
}
