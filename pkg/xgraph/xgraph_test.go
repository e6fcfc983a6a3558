package xgraph

import (
	"bytes"
	"strings"
	"testing"
)

func pentagon() *Graph {
	g := New()
	ids := make([]int, 5)
	for i, label := range []string{"a", "b", "c", "d", "e"} {
		ids[i] = g.AddNode(label)
	}
	for i := range ids {
		g.AddEdge(ids[i], ids[(i+1)%5])
	}
	return g
}

func TestGraphBasics(t *testing.T) {
	g := pentagon()
	if got := g.Order(); got != 5 {
		t.Errorf("Order() = %d, want 5", got)
	}
	if got := g.Size(); got != 5 {
		t.Errorf("Size() = %d, want 5", got)
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Error("edge (0,1) should be present in both directions")
	}
	if g.HasEdge(0, 2) {
		t.Error("edge (0,2) should not be present")
	}
}

func TestAddNodeIdempotent(t *testing.T) {
	g := New()
	a := g.AddNode("cluster")
	b := g.AddNode("cluster")
	if a != b {
		t.Errorf("AddNode returned %d then %d for the same label", a, b)
	}
	if got := g.Order(); got != 1 {
		t.Errorf("Order() = %d, want 1", got)
	}
}

func TestSelfLoopDropped(t *testing.T) {
	g := New()
	id := g.AddNode("v")
	if err := g.AddEdge(id, id); err != nil {
		t.Fatalf("AddEdge error = %v", err)
	}
	if got := g.Size(); got != 0 {
		t.Errorf("Size() = %d, want 0", got)
	}
}

func TestEdgeUnknownVertex(t *testing.T) {
	g := New()
	g.AddNode("v")
	if err := g.AddEdge(0, 3); err == nil {
		t.Error("expected error for unknown vertex, got nil")
	}
}

func TestToDOT(t *testing.T) {
	g := pentagon()
	dot := ToDOT(g, Options{})
	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("DOT output should declare an undirected graph, got %q", dot[:20])
	}
	if !strings.Contains(dot, "0 -- 1;") {
		t.Error("DOT output missing edge 0 -- 1")
	}
	if strings.Contains(dot, "->") {
		t.Error("DOT output contains directed edges")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := pentagon()
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		t.Fatalf("Write error = %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}
	if got.Order() != g.Order() || got.Size() != g.Size() {
		t.Errorf("round trip changed graph: order %d->%d, size %d->%d",
			g.Order(), got.Order(), g.Size(), got.Size())
	}
	for _, e := range g.Edges() {
		if !got.HasEdge(e.A, e.B) {
			t.Errorf("round trip lost edge (%d, %d)", e.A, e.B)
		}
	}
}
