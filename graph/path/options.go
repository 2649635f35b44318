package path

import "runtime"

// Options holds parameters for a search.
type Options struct {
	// MaxExpansions bounds the number of nodes a single search may
	// expand. Zero means no bound.
	MaxExpansions int

	// Concurrency bounds the number of searches SearchAll runs at once.
	// Zero means runtime.GOMAXPROCS(0).
	Concurrency int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxExpansions limits each search to at most n node expansions.
// A search that needs more reports ErrLimitExceeded.
// A non-positive n removes the limit.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = max(n, 0) }
}

// WithConcurrency specifies how many searches SearchAll may run concurrently.
func WithConcurrency(n int) Option {
	return func(o *Options) { o.Concurrency = n }
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
