package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/oliverdaisey/laurent/pkg/cache"
	"github.com/oliverdaisey/laurent/pkg/explore"
	"github.com/oliverdaisey/laurent/pkg/seedfile"
)

// cacheTTL is how long cached exploration results remain valid.
const cacheTTL = 7 * 24 * time.Hour

// exploreOpts holds the command-line flags for the explore command.
type exploreOpts struct {
	depth     int    // maximum mutation depth (-1 for unbounded)
	algorithm string // traversal order: BFS or DFS
	paths     bool   // include mutation sequences in the output
	noCache   bool   // disable result caching
	output    string // output file path (stdout if empty)
}

// classEntry is one seed of the mutation class as written to output.
type classEntry struct {
	Cluster []string `json:"cluster"`
	Path    []int    `json:"path,omitempty"`
}

// newExploreCmd creates the explore command for enumerating mutation classes.
//
// Default options:
//   - depth: unbounded (use --depth for seeds of infinite mutation type)
//   - algorithm: BFS
func newExploreCmd() *cobra.Command {
	opts := exploreOpts{depth: explore.Unbounded, algorithm: string(explore.BFS)}

	cmd := &cobra.Command{
		Use:   "explore <seedfile.toml>",
		Short: "Enumerate the mutation class of a seed",
		Long: `Enumerate the mutation class of a seed.

The explore command mutates the seed in every direction, discarding seeds
equivalent to ones already found, until the class is exhausted or the depth
bound is reached. Seeds of infinite mutation type never exhaust; use --depth
to bound the search.

Results are cached locally for faster subsequent runs.

Examples:
  laurent explore seed.toml
  laurent explore seed.toml --depth 4 --algorithm DFS --paths`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", opts.depth, "maximum mutation depth (-1 for unbounded)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "traversal order: BFS (default), DFS")
	cmd.Flags().BoolVar(&opts.paths, "paths", false, "include the mutation sequence reaching each seed")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runExplore enumerates the mutation class and writes it as JSON.
func runExplore(cmd *cobra.Command, path string, opts exploreOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx).With("run", uuid.NewString())

	s, err := seedfile.Load(path)
	if err != nil {
		return err
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := cache.ClassKey(s.Hash(), opts.algorithm, opts.depth)
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		logger.Debugf("Cache hit for %s", key)
		return writeOutput(data, opts.output, logger)
	}

	logger.Infof("Exploring mutation class (%s, depth %d)", opts.algorithm, opts.depth)
	prog := newProgress(logger)

	iterOpts := []explore.Option{
		explore.WithDepth(opts.depth),
		explore.WithAlgorithm(explore.Algorithm(opts.algorithm)),
		explore.WithProgress(func(depth, found int, elapsed time.Duration) {
			logger.Infof("Depth: %d found: %d (%s)", depth, found, elapsed.Round(time.Millisecond))
		}),
	}
	if opts.paths {
		iterOpts = append(iterOpts, explore.WithPaths())
	}

	it, err := explore.New(s, iterOpts...)
	if err != nil {
		return err
	}

	var entries []classEntry
	for it.Next() {
		found := it.Seed()
		entry := classEntry{Cluster: make([]string, 0, found.Rank())}
		for _, v := range found.Cluster() {
			entry.Cluster = append(entry.Cluster, v.String())
		}
		if opts.paths {
			entry.Path = it.Path()
		}
		entries = append(entries, entry)
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	prog.done("Found %d seeds", len(entries))

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := store.Set(ctx, key, data, cacheTTL); err != nil {
		logger.Warnf("Cache write failed: %v", err)
	}

	return writeOutput(data, opts.output, logger)
}

// newCache returns the file-backed cache, or a no-op cache when disabled.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("get cache dir: %w", err)
	}
	return cache.NewFileCache(dir)
}

// writeOutput writes data to the given path, or stdout if path is empty.
func writeOutput(data []byte, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote results to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
