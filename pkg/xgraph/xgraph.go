// Package xgraph provides the undirected exchange graph of a seed's
// mutation class: one vertex per cluster, one edge per mutation.
package xgraph

import (
	"sort"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

// Node is a vertex of the exchange graph. ID is the discovery index and
// Label a human-readable description of the cluster.
type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label,omitempty"`
}

// Edge is an unordered pair of vertex IDs.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Graph is a simple undirected graph with stable integer vertex IDs.
type Graph struct {
	labels []string
	index  map[string]int
	adj    map[int]map[int]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
		adj:   make(map[int]map[int]struct{}),
	}
}

// AddNode inserts a vertex keyed by label, returning its ID. Adding the
// same label twice returns the existing ID.
func (g *Graph) AddNode(label string) int {
	if id, ok := g.index[label]; ok {
		return id
	}
	id := len(g.labels)
	g.labels = append(g.labels, label)
	g.index[label] = id
	g.adj[id] = make(map[int]struct{})
	return id
}

// AddEdge connects two existing vertices. Self-loops are dropped.
func (g *Graph) AddEdge(a, b int) error {
	if a < 0 || a >= len(g.labels) || b < 0 || b >= len(g.labels) {
		return errors.New(errors.ErrCodeInvalidInput, "edge (%d, %d) references unknown vertex", a, b)
	}
	if a == b {
		return nil
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.labels) }

// Size returns the number of edges.
func (g *Graph) Size() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Label returns the label of vertex id.
func (g *Graph) Label(id int) string { return g.labels[id] }

// Neighbors returns the sorted adjacency list of vertex id.
func (g *Graph) Neighbors(id int) []int {
	out := make([]int, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Nodes returns all vertices in ID order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.labels))
	for i, l := range g.labels {
		out[i] = Node{ID: i, Label: l}
	}
	return out
}

// Edges returns all edges with A < B, sorted.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for a, nbrs := range g.adj {
		for b := range nbrs {
			if a < b {
				out = append(out, Edge{A: a, B: b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
