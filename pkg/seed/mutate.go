package seed

import (
	"math/rand"

	"github.com/oliverdaisey/laurent/pkg/errors"
	"github.com/oliverdaisey/laurent/pkg/ring"
)

// Mutate transforms the seed in place at index i. Mutating twice at the
// same index restores an equivalent seed.
func (s *Seed) Mutate(i int) error {
	if err := errors.ValidateIndex(i, s.rank); err != nil {
		return err
	}

	r := s.ring

	// new cluster variable: the exchange Laurent polynomial evaluated at
	// the current cluster, divided by the variable being exchanged
	evalAt := make(map[int]ring.Frac, s.rank)
	for j := 0; j < s.rank; j++ {
		evalAt[j] = s.cluster[j]
	}
	num, err := s.laurent[i].Substitute(evalAt)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err,
			"cannot evaluate exchange Laurent polynomial at cluster")
	}
	newVar, err := num.Div(s.cluster[i])
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "exchange relation failed")
	}

	// new exchange polynomials for every polynomial involving the mutated
	// variable
	zero := ring.FromPoly(r.Zero())
	xi := ring.FromPoly(r.Gen(i))
	newExchange := append([]ring.Poly(nil), s.exchange...)

	for j := 0; j < s.rank; j++ {
		if j == i || !s.exchange[j].HasVar(i) {
			continue
		}

		// substitution: drop x_j from the Laurent polynomial, then swap
		// h/x_i for x_i in the exchange polynomial and clear denominators
		h, err := s.laurent[i].Substitute(map[int]ring.Frac{j: zero})
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err,
				"exchange Laurent polynomial for %s is singular at %s = 0",
				r.GenName(i), r.GenName(j))
		}
		hOverXi, err := h.Div(xi)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "exchange relation failed")
		}
		g := s.exchange[j].SubstituteFrac(map[int]ring.Frac{i: hOverXi}).Num()

		// cancellation: keep only factors coprime to the numerator of h
		_, factors, err := ring.Factor(g)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err,
				"cannot factor substituted exchange polynomial")
		}
		out := r.One()
		for _, f := range factors {
			if ring.GCD(h.Num(), f.Base).IsUnit() {
				out = out.Mul(f.Base.Pow(f.Mult))
			}
		}
		newExchange[j] = out
	}

	s.cluster[i] = newVar
	s.exchange = newExchange
	s.mutations = append(s.mutations, i)
	return s.computeLaurent()
}

// Mutated returns a new seed mutated at index i, leaving s untouched.
func (s *Seed) Mutated(i int) (*Seed, error) {
	t := s.Copy()
	if err := t.Mutate(i); err != nil {
		return nil, err
	}
	return t, nil
}

// MutateSequence mutates the seed at each index in turn. On error the seed
// keeps the mutations applied so far.
func (s *Seed) MutateSequence(indices []int) error {
	for _, i := range indices {
		if err := s.Mutate(i); err != nil {
			return err
		}
	}
	return nil
}

// RandomlyMutate applies n mutations at uniformly random indices. Useful
// for probing whether a seed generates a finite mutation class.
func (s *Seed) RandomlyMutate(n int, rng *rand.Rand) error {
	indices := make([]int, n)
	for k := range indices {
		indices[k] = rng.Intn(s.rank)
	}
	return s.MutateSequence(indices)
}
