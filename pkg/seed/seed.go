// Package seed models Laurent phenomenon algebra seeds and their mutations.
//
// A seed of rank n is a tuple of n cluster variables together with n
// irreducible exchange polynomials, one per variable. The ring may carry
// extra generators beyond the first n; those act as coefficients and are
// never mutated.
package seed

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/oliverdaisey/laurent/pkg/errors"
	"github.com/oliverdaisey/laurent/pkg/ring"
)

// Seed is a Laurent phenomenon algebra seed. The zero value is not usable;
// construct with New.
type Seed struct {
	ring      *ring.Ring
	rank      int
	exchange  []ring.Poly // exchange polynomials, one per cluster variable
	laurent   []ring.Frac // exchange Laurent polynomials
	cluster   []ring.Frac // current cluster variables
	mutations []int       // indices mutated at, in order
}

// New validates and builds a seed over r whose first rank generators are
// the cluster variables, with polys[i] the exchange polynomial for the
// i-th one. Remaining generators of r are coefficients.
func New(r *ring.Ring, rank int, polys []ring.Poly) (*Seed, error) {
	if rank < 1 || rank > r.NumGens() {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"rank %d out of range for a ring with %d generators", rank, r.NumGens())
	}
	if len(polys) != rank {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"got %d exchange polynomials for rank %d", len(polys), rank)
	}

	s := &Seed{
		ring:     r,
		rank:     rank,
		exchange: append([]ring.Poly(nil), polys...),
	}
	if err := s.check(); err != nil {
		return nil, err
	}

	s.cluster = make([]ring.Frac, rank)
	for i := 0; i < rank; i++ {
		s.cluster[i] = ring.FromPoly(r.Gen(i))
	}
	if err := s.computeLaurent(); err != nil {
		return nil, err
	}
	return s, nil
}

// check enforces the two seed axioms: each exchange polynomial is free of
// its own cluster variable, and is irreducible and not divisible by any
// cluster variable.
func (s *Seed) check() error {
	for i, f := range s.exchange {
		if f.HasVar(i) {
			return errors.New(errors.ErrCodeLP1Violation,
				"(LP1) fail: %s depends on %s", f, s.ring.GenName(i))
		}
	}
	for _, f := range s.exchange {
		irr, err := ring.IsIrreducible(f)
		if err != nil {
			return err
		}
		if !irr {
			return errors.New(errors.ErrCodeLP2Violation,
				"(LP2) fail: %s is not irreducible over %s", f, s.ring.Domain())
		}
		for i := 0; i < s.rank; i++ {
			if ring.Divides(s.ring.Gen(i), f) {
				return errors.New(errors.ErrCodeLP2Violation,
					"(LP2) fail: %s divides %s", s.ring.GenName(i), f)
			}
		}
	}
	return nil
}

// computeLaurent derives the exchange Laurent polynomials: each exchange
// polynomial divided by the maximal monomial in the other cluster
// variables that its substitution structure allows.
func (s *Seed) computeLaurent() error {
	s.laurent = make([]ring.Frac, s.rank)
	for i := 0; i < s.rank; i++ {
		s.laurent[i] = ring.FromPoly(s.exchange[i])
		for j := 0; j < s.rank; j++ {
			if i == j {
				continue
			}
			sub := s.exchange[i].SubstituteFrac(map[int]ring.Frac{
				j: ring.FromPoly(s.exchange[j]),
			})
			if !sub.IsPoly() {
				return errors.New(errors.ErrCodeInternal,
					"substituted exchange polynomial is not polynomial")
			}
			p := sub.Num()
			if p.IsZero() {
				return errors.New(errors.ErrCodeInternal,
					"exchange polynomial %s vanishes under substitution", s.exchange[i])
			}
			// maximal power of exchange[j] dividing the substitution
			count := 0
			for ring.Divides(s.exchange[j], p) {
				q, _, err := ring.QuoRem(p, s.exchange[j])
				if err != nil {
					return err
				}
				p = q
				count++
			}
			if count > 0 {
				exp := make([]int, s.ring.NumGens())
				exp[j] = count
				pow := s.ring.Monomial(big.NewRat(1, 1), exp)
				var err error
				s.laurent[i], err = s.laurent[i].Div(ring.FromPoly(pow))
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Rank returns the number of cluster variables.
func (s *Seed) Rank() int { return s.rank }

// Ring returns the ambient polynomial ring.
func (s *Seed) Ring() *ring.Ring { return s.ring }

// Cluster returns the current cluster variables.
func (s *Seed) Cluster() []ring.Frac {
	return append([]ring.Frac(nil), s.cluster...)
}

// ExchangePolys returns the current exchange polynomials.
func (s *Seed) ExchangePolys() []ring.Poly {
	return append([]ring.Poly(nil), s.exchange...)
}

// LaurentPolys returns the exchange Laurent polynomials.
func (s *Seed) LaurentPolys() []ring.Frac {
	return append([]ring.Frac(nil), s.laurent...)
}

// Copy returns an independent copy of the seed.
func (s *Seed) Copy() *Seed {
	return &Seed{
		ring:      s.ring,
		rank:      s.rank,
		exchange:  append([]ring.Poly(nil), s.exchange...),
		laurent:   append([]ring.Frac(nil), s.laurent...),
		cluster:   append([]ring.Frac(nil), s.cluster...),
		mutations: append([]int(nil), s.mutations...),
	}
}

// LastMutation returns the most recently applied mutation index, or -1 if
// the seed has not been mutated.
func (s *Seed) LastMutation() int {
	if len(s.mutations) == 0 {
		return -1
	}
	return s.mutations[len(s.mutations)-1]
}

// MutationSequence returns the indices the seed has been mutated at, with
// consecutive repeats cancelled.
func (s *Seed) MutationSequence() []int {
	return ReduceSequence(s.mutations)
}

func (s *Seed) String() string {
	clusters := make([]string, s.rank)
	for i, c := range s.cluster {
		clusters[i] = c.String()
	}
	polys := make([]string, s.rank)
	for i, f := range s.exchange {
		polys[i] = f.String()
	}
	return fmt.Sprintf("A seed with cluster variables [%s] and exchange polynomials [%s]",
		strings.Join(clusters, ", "), strings.Join(polys, ", "))
}
