// Package explore walks the mutation class of a seed lazily, in breadth-
// or depth-first order, and derives its projections: the cluster class,
// the variable class, and the exchange graph.
package explore

import (
	"time"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

// Algorithm selects the traversal order of the mutation class.
type Algorithm string

const (
	// BFS visits seeds level by level, ordered by mutation distance.
	BFS Algorithm = "BFS"
	// DFS follows each branch of mutations as far as allowed before
	// backtracking.
	DFS Algorithm = "DFS"
)

// Unbounded disables the depth limit.
const Unbounded = -1

// ProgressFunc receives traversal statistics: the current depth, the
// number of seeds found so far, and the elapsed time.
type ProgressFunc func(depth, found int, elapsed time.Duration)

// Options bundles the tunable parameters of a traversal.
type Options struct {
	// Depth bounds the mutation distance from the start seed; Unbounded
	// means no limit.
	Depth int
	// Algorithm is the traversal order, BFS by default.
	Algorithm Algorithm
	// Paths records a reduced mutation sequence for every seed found.
	Paths bool
	// Progress, when set, is called as the traversal advances.
	Progress ProgressFunc
}

// DefaultOptions returns the default traversal configuration.
func DefaultOptions() Options {
	return Options{Depth: Unbounded, Algorithm: BFS}
}

// Option overrides a single traversal parameter.
type Option func(*Options)

// WithDepth bounds the traversal to seeds at most d mutations away.
func WithDepth(d int) Option {
	return func(o *Options) { o.Depth = d }
}

// WithAlgorithm selects the traversal order.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithPaths enables recording mutation paths.
func WithPaths() Option {
	return func(o *Options) { o.Paths = true }
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) { o.Progress = fn }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := errors.ValidateAlgorithm(string(o.Algorithm)); err != nil {
		return Options{}, err
	}
	return o, nil
}
