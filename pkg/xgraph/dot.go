package xgraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// Options configures DOT output.
type Options struct {
	// Labelled includes the cluster description in each vertex label.
	// When false, vertices show only their discovery index.
	Labelled bool
}

// ToDOT converts the exchange graph to Graphviz DOT format. The resulting
// string can be rendered with [RenderSVG].
func ToDOT(g *Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmt.Sprintf("%d", n.ID)
		if opts.Labelled && n.Label != "" {
			label = n.Label
		}
		fmt.Fprintf(&buf, "  %d [label=%q];\n", n.ID, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
