package explore

import (
	"sort"

	"github.com/oliverdaisey/laurent/pkg/ring"
	"github.com/oliverdaisey/laurent/pkg/seed"
	"github.com/oliverdaisey/laurent/pkg/xgraph"
)

// MutationClass collects every seed reachable from s, subject to the
// traversal options.
func MutationClass(s *seed.Seed, opts ...Option) ([]*seed.Seed, error) {
	it, err := New(s, opts...)
	if err != nil {
		return nil, err
	}
	var out []*seed.Seed
	for it.Next() {
		out = append(out, it.Seed())
	}
	return out, it.Err()
}

// ClusterClass collects the clusters of every seed in the mutation class.
func ClusterClass(s *seed.Seed, opts ...Option) ([][]ring.Frac, error) {
	class, err := MutationClass(s, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]ring.Frac, len(class))
	for i, t := range class {
		out[i] = t.Cluster()
	}
	return out, nil
}

// VariableClass collects the distinct cluster variables appearing across
// the mutation class. These generate the LP algebra of the seed. The
// result is sorted by its string form for deterministic output.
func VariableClass(s *seed.Seed, opts ...Option) ([]ring.Frac, error) {
	clusters, err := ClusterClass(s, opts...)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var out []ring.Frac
	for _, cluster := range clusters {
		for _, x := range cluster {
			key := x.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

// ExchangeGraph computes the exchange graph of s: vertices are the
// clusters of the mutation class and edges connect clusters one mutation
// apart. The mutation class must be finite.
func ExchangeGraph(s *seed.Seed) (*xgraph.Graph, error) {
	g := xgraph.New()
	known := []*seed.Seed{}
	stack := []*seed.Seed{s}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		from := g.AddNode(cur.Hash())
		for k := 0; k < s.Rank(); k++ {
			next, err := cur.Mutated(k)
			if err != nil {
				return nil, err
			}
			to := g.AddNode(next.Hash())
			if err := g.AddEdge(from, to); err != nil {
				return nil, err
			}
			if !contains(known, next) {
				known = append(known, next)
				stack = append(stack, next)
			}
		}
	}
	return g, nil
}

func contains(seeds []*seed.Seed, s *seed.Seed) bool {
	for _, t := range seeds {
		if t.IsEquivalent(s) {
			return true
		}
	}
	return false
}
