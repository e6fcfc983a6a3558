package xgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// fileGraph is the on-disk JSON shape.
type fileGraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Marshal converts a graph to indented JSON bytes with nodes and edges in
// deterministic order.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as JSON to an io.Writer.
func Write(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fileGraph{Nodes: g.Nodes(), Edges: g.Edges()}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a graph to a JSON file with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes a JSON graph from an io.Reader.
func Read(r io.Reader) (*Graph, error) {
	var data fileGraph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g := New()
	for _, n := range data.Nodes {
		label := n.Label
		if label == "" {
			label = fmt.Sprintf("#%d", n.ID)
		}
		g.AddNode(label)
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e.A, e.B); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ReadFile reads a JSON file and returns the decoded graph.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
