package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oliverdaisey/laurent/pkg/cache"
	"github.com/oliverdaisey/laurent/pkg/errors"
	"github.com/oliverdaisey/laurent/pkg/explore"
	"github.com/oliverdaisey/laurent/pkg/seedfile"
	"github.com/oliverdaisey/laurent/pkg/xgraph"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format   string // output format: dot, svg, or json
	output   string // output file path (stdout if empty)
	labelled bool   // label vertices with their clusters
	noCache  bool   // disable result caching
}

// newGraphCmd creates the graph command for rendering exchange graphs.
//
// The exchange graph has one vertex per seed of the mutation class and an
// edge between seeds related by a single mutation. Computing it requires
// enumerating the full mutation class, so it only terminates for seeds of
// finite mutation type.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "graph <seedfile.toml|graph.json>",
		Short: "Compute and render the exchange graph of a seed",
		Long: `Compute and render the exchange graph of a seed.

Vertices are the seeds of the mutation class up to equivalence; edges join
seeds related by a single mutation. The graph can be written as Graphviz
DOT, rendered to SVG, or serialized as JSON for later processing. A .json
argument is taken to be a previously exported graph and is rendered
directly, without recomputing the mutation class.

Results are cached locally for faster subsequent runs.

Examples:
  laurent graph seed.toml
  laurent graph seed.toml --format json -o graph.json
  laurent graph graph.json --format svg --labelled -o graph.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.labelled, "labelled", false, "label vertices with their clusters")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runGraph computes the exchange graph and writes it in the requested format.
func runGraph(cmd *cobra.Command, path string, opts graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.format != "dot" && opts.format != "svg" && opts.format != "json" {
		return errors.New(errors.ErrCodeUnsupported,
			"unknown format: %s (available: dot, svg, json)", opts.format)
	}

	var g *xgraph.Graph
	if strings.HasSuffix(path, ".json") {
		var err error
		g, err = xgraph.ReadFile(path)
		if err != nil {
			return err
		}
		logger.Debugf("Loaded graph with %d vertices from %s", g.Order(), path)
	} else {
		var err error
		g, err = computeGraph(cmd, path, opts)
		if err != nil {
			return err
		}
	}

	if opts.format == "json" && opts.output != "" {
		if err := xgraph.WriteFile(g, opts.output); err != nil {
			return err
		}
		logger.Infof("Wrote results to %s", opts.output)
		return nil
	}

	data, err := renderGraph(g, opts)
	if err != nil {
		return err
	}
	return writeOutput(data, opts.output, logger)
}

// computeGraph builds the exchange graph for the seed in the seedfile,
// consulting the cache first.
func computeGraph(cmd *cobra.Command, path string, opts graphOpts) (*xgraph.Graph, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	s, err := seedfile.Load(path)
	if err != nil {
		return nil, err
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	key := cache.GraphKey(s.Hash())
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		logger.Debugf("Cache hit for %s", key)
		g, err := xgraph.Read(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("read cached graph: %w", err)
		}
		return g, nil
	}

	logger.Infof("Computing exchange graph")
	prog := newProgress(logger)
	g, err := explore.ExchangeGraph(s)
	if err != nil {
		return nil, fmt.Errorf("exchange graph: %w", err)
	}
	prog.done("Computed graph with %d vertices and %d edges", g.Order(), g.Size())

	data, err := xgraph.Marshal(g)
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, data, cacheTTL); err != nil {
		logger.Warnf("Cache write failed: %v", err)
	}
	return g, nil
}

// renderGraph serializes g in the requested format.
func renderGraph(g *xgraph.Graph, opts graphOpts) ([]byte, error) {
	switch opts.format {
	case "dot":
		return []byte(xgraph.ToDOT(g, xgraph.Options{Labelled: opts.labelled})), nil
	case "svg":
		return xgraph.RenderSVG(xgraph.ToDOT(g, xgraph.Options{Labelled: opts.labelled}))
	default:
		data, err := xgraph.Marshal(g)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
