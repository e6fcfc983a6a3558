package explore

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/oliverdaisey/laurent/pkg/errors"
	"github.com/oliverdaisey/laurent/pkg/ring"
	"github.com/oliverdaisey/laurent/pkg/seed"
)

func buildSeed(t *testing.T, gens []string, polys []string) *seed.Seed {
	t.Helper()
	r, err := ring.NewRing(ring.ZZ, gens)
	if err != nil {
		t.Fatalf("NewRing error = %v", err)
	}
	ps := make([]ring.Poly, len(polys))
	for i, s := range polys {
		ps[i], err = ring.ParsePoly(r, s)
		if err != nil {
			t.Fatalf("ParsePoly(%q) error = %v", s, err)
		}
	}
	s, err := seed.New(r, len(polys), ps)
	if err != nil {
		t.Fatalf("seed.New error = %v", err)
	}
	return s
}

func linearRankTwo(t *testing.T) *seed.Seed {
	t.Helper()
	return buildSeed(t, []string{"x1", "x2"}, []string{"1 + x2", "1 + x1"})
}

func TestMutationClassRankTwoLinear(t *testing.T) {
	class, err := MutationClass(linearRankTwo(t))
	if err != nil {
		t.Fatalf("MutationClass error = %v", err)
	}
	if got := len(class); got != 5 {
		t.Fatalf("class size = %d, want 5", got)
	}

	// the clusters appear in breadth-first discovery order
	want := [][]string{
		{"x1", "x2"},
		{"(x2 + 1)/x1", "x2"},
		{"x1", "(x1 + 1)/x2"},
		{"(x2 + 1)/x1", "(x1 + x2 + 1)/(x1*x2)"},
		{"(x1 + x2 + 1)/(x1*x2)", "(x1 + 1)/x2"},
	}
	for i, s := range class {
		cluster := s.Cluster()
		for j, x := range cluster {
			if got := x.String(); got != want[i][j] {
				t.Errorf("seed %d variable %d = %q, want %q", i, j, got, want[i][j])
			}
		}
	}
}

func TestRankTwoClassSizes(t *testing.T) {
	tests := []struct {
		name  string
		gens  []string
		polys []string
		want  int
	}{
		{
			name:  "both constant",
			gens:  []string{"x1", "x2", "C"},
			polys: []string{"C", "C"},
			want:  3,
		},
		{
			name:  "one constant",
			gens:  []string{"x1", "x2", "A", "C", "D"},
			polys: []string{"A", "C + D*x1"},
			want:  4,
		},
		{
			name:  "generic linear",
			gens:  []string{"x1", "x2", "A", "B", "C", "D"},
			polys: []string{"A + B*x2", "C + D*x1"},
			want:  5,
		},
		{
			name:  "quadratic",
			gens:  []string{"x1", "x2", "A", "B", "C", "D", "E"},
			polys: []string{"A + B*x2 + C*x2^2", "D + E*x1"},
			want:  6,
		},
		{
			name:  "cubic",
			gens:  []string{"x1", "x2", "A", "B", "C", "D", "E", "F"},
			polys: []string{"A + B*x2 + C*x2^2 + D*x2^3", "E + F*x1"},
			want:  8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, err := MutationClass(buildSeed(t, tt.gens, tt.polys))
			if err != nil {
				t.Fatalf("MutationClass error = %v", err)
			}
			if got := len(class); got != tt.want {
				t.Errorf("class size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBFSPaths(t *testing.T) {
	s := buildSeed(t, []string{"x1", "x2", "x3"},
		[]string{"1 + x2 + x3", "1 + x1 + x3", "1 + x1 + x2"})

	it, err := New(s, WithPaths())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	var paths [][]int
	for it.Next() {
		paths = append(paths, slices.Clone(it.Path()))
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	want := [][]int{
		{}, {0}, {1}, {2},
		{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1},
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestDFSPaths(t *testing.T) {
	s := buildSeed(t, []string{"x1", "x2", "x3"},
		[]string{"1 + x2 + x3", "1 + x1 + x3", "1 + x1 + x2"})

	it, err := New(s, WithPaths(), WithAlgorithm(DFS))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	var paths [][]int
	for it.Next() {
		paths = append(paths, slices.Clone(it.Path()))
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	want := [][]int{
		{}, {0}, {1}, {2},
		{2, 0}, {2, 1}, {2, 1, 2}, {2, 1, 2, 0}, {2, 1, 2, 0, 2}, {2, 1, 2, 0, 2, 0},
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestBFSAndDFSAgree(t *testing.T) {
	s := buildSeed(t, []string{"x1", "x2", "x3"},
		[]string{"1 + x2 + x3", "1 + x1 + x3", "1 + x1 + x2"})

	bfs, err := MutationClass(s)
	if err != nil {
		t.Fatalf("BFS error = %v", err)
	}
	dfs, err := MutationClass(s, WithAlgorithm(DFS))
	if err != nil {
		t.Fatalf("DFS error = %v", err)
	}
	if len(bfs) != len(dfs) {
		t.Fatalf("BFS found %d seeds, DFS found %d", len(bfs), len(dfs))
	}

	hashes := make(map[string]struct{}, len(bfs))
	for _, t := range bfs {
		hashes[t.Hash()] = struct{}{}
	}
	for _, u := range dfs {
		if _, ok := hashes[u.Hash()]; !ok {
			t.Errorf("DFS seed %s not found by BFS", u)
		}
	}
}

func TestDepthBound(t *testing.T) {
	// infinite type: bounded exploration must terminate
	s := buildSeed(t, []string{"x1", "x2"},
		[]string{"1 + x2 + x2^2", "1 + x1 + x1^2"})

	// the exchange graph here is an infinite path, so each level past the
	// first adds one new seed per endpoint
	class, err := MutationClass(s, WithDepth(3))
	if err != nil {
		t.Fatalf("MutationClass error = %v", err)
	}
	if got := len(class); got != 7 {
		t.Errorf("class size at depth 3 = %d, want 7", got)
	}
}

func TestDepthZeroYieldsInitialOnly(t *testing.T) {
	class, err := MutationClass(linearRankTwo(t), WithDepth(0))
	if err != nil {
		t.Fatalf("MutationClass error = %v", err)
	}
	if got := len(class); got != 1 {
		t.Errorf("class size at depth 0 = %d, want 1", got)
	}
}

func TestInvalidAlgorithm(t *testing.T) {
	_, err := New(linearRankTwo(t), WithAlgorithm("IDS"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeInvalidAlgorithm) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidAlgorithm)
	}
}

func TestProgressCallback(t *testing.T) {
	var calls []int
	_, err := MutationClass(linearRankTwo(t),
		WithProgress(func(depth, found int, elapsed time.Duration) {
			calls = append(calls, depth)
		}))
	if err != nil {
		t.Fatalf("MutationClass error = %v", err)
	}
	if len(calls) == 0 {
		t.Fatal("progress callback never invoked")
	}
	if calls[0] != 0 {
		t.Errorf("first progress depth = %d, want 0", calls[0])
	}
}

func TestVariableClassRankTwo(t *testing.T) {
	vars, err := VariableClass(linearRankTwo(t))
	if err != nil {
		t.Fatalf("VariableClass error = %v", err)
	}
	if got := len(vars); got != 5 {
		t.Fatalf("variable class size = %d, want 5", got)
	}

	want := map[string]struct{}{
		"x1":                    {},
		"x2":                    {},
		"(x2 + 1)/x1":           {},
		"(x1 + 1)/x2":           {},
		"(x1 + x2 + 1)/(x1*x2)": {},
	}
	for _, v := range vars {
		if _, ok := want[v.String()]; !ok {
			t.Errorf("unexpected variable %q", v)
		}
	}
}

func TestVariableClassRankThree(t *testing.T) {
	s := buildSeed(t, []string{"x1", "x2", "x3"},
		[]string{"1 + x2 + x3", "1 + x1 + x3", "1 + x1 + x2"})
	vars, err := VariableClass(s)
	if err != nil {
		t.Fatalf("VariableClass error = %v", err)
	}
	if got := len(vars); got != 7 {
		t.Errorf("variable class size = %d, want 7", got)
	}
}

func TestExchangeGraph(t *testing.T) {
	tests := []struct {
		name      string
		gens      []string
		polys     []string
		wantOrder int
	}{
		{
			name:      "rank two pentagon",
			gens:      []string{"x1", "x2"},
			polys:     []string{"1 + x2", "1 + x1"},
			wantOrder: 5,
		},
		{
			name:      "rank three",
			gens:      []string{"x1", "x2", "x3"},
			polys:     []string{"1 + x2 + x3", "1 + x1 + x3", "1 + x1 + x2"},
			wantOrder: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ExchangeGraph(buildSeed(t, tt.gens, tt.polys))
			if err != nil {
				t.Fatalf("ExchangeGraph error = %v", err)
			}
			if got := g.Order(); got != tt.wantOrder {
				t.Errorf("order = %d, want %d", got, tt.wantOrder)
			}
		})
	}
}

func TestExchangeGraphPentagonIsCycle(t *testing.T) {
	g, err := ExchangeGraph(linearRankTwo(t))
	if err != nil {
		t.Fatalf("ExchangeGraph error = %v", err)
	}
	if got := g.Size(); got != 5 {
		t.Errorf("size = %d, want 5", got)
	}
	for _, n := range g.Nodes() {
		if got := len(g.Neighbors(n.ID)); got != 2 {
			t.Errorf("vertex %d has %d neighbors, want 2", n.ID, got)
		}
	}
}
