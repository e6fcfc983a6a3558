package seed

import (
	"sort"
	"strings"
)

// IsEquivalent reports whether the two seeds have the same cluster up to
// permutation and unit multiples. Two variables differ by a unit exactly
// when their canonical keys agree, so the comparison counts index pairs
// with equal keys and requires exactly rank many of them.
func (s *Seed) IsEquivalent(other *Seed) bool {
	if other == nil || s.rank != other.rank {
		return false
	}
	keys := make([]string, other.rank)
	for j, c := range other.cluster {
		keys[j] = c.CanonicalKey()
	}
	matches := 0
	for i := 0; i < s.rank; i++ {
		key := s.cluster[i].CanonicalKey()
		for j := 0; j < s.rank; j++ {
			if keys[j] == key {
				matches++
			}
		}
	}
	return matches == s.rank
}

// IsMutationEquivalent reports whether other is one mutation away from s.
func (s *Seed) IsMutationEquivalent(other *Seed) (bool, error) {
	for i := 0; i < s.rank; i++ {
		t, err := s.Mutated(i)
		if err != nil {
			return false, err
		}
		if t.IsEquivalent(other) {
			return true, nil
		}
	}
	return false, nil
}

// Hash returns a key that agrees on seeds with the same cluster up to
// order and unit multiples.
func (s *Seed) Hash() string {
	keys := make([]string, s.rank)
	for i, c := range s.cluster {
		keys[i] = c.CanonicalKey()
	}
	sort.Strings(keys)
	return strings.Join(keys, "; ")
}
