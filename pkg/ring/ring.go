// Package ring implements exact multivariate polynomial and rational-function
// arithmetic over the two supported unique-factorization domains: the integers
// (ZZ) and the rationals (QQ).
//
// A [Ring] fixes an ordered list of symbolic generators and a coefficient
// domain. [Poly] values are sparse polynomials over that ring; [Frac] values
// are reduced fractions of polynomials, i.e. elements of the ring's fraction
// field. The package provides the operations the seed machinery depends on:
// exact quotient-remainder division, greatest common divisors, complete
// factorization into irreducibles, and variable substitution.
//
// All values are immutable: every operation returns a fresh result and never
// modifies its receivers. Ring instances are safe to share between goroutines.
package ring

import (
	"math/big"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

// Domain selects the coefficient domain of a ring.
type Domain int

const (
	// ZZ is the ring of integers. Units are +1 and -1.
	ZZ Domain = iota
	// QQ is the field of rationals. Every nonzero constant is a unit.
	QQ
)

// String returns the conventional display name of the domain.
func (d Domain) String() string {
	switch d {
	case ZZ:
		return "Integer Ring"
	case QQ:
		return "Rational Field"
	default:
		return "unknown domain"
	}
}

// Selector returns the short selector form ("ZZ" or "QQ") used in seed files
// and on the command line.
func (d Domain) Selector() string {
	if d == QQ {
		return "QQ"
	}
	return "ZZ"
}

// ParseDomain converts a selector string into a Domain.
// Only "ZZ" and "QQ" are supported.
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "ZZ":
		return ZZ, nil
	case "QQ":
		return QQ, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidRing,
			"%s is a nonsupported base ring. ZZ or QQ only", s)
	}
}

// Ring is a multivariate polynomial ring over a fixed domain with a fixed,
// ordered list of generators. The generator order induces the lexicographic
// term order used throughout the package, so earlier generators sort as the
// "bigger" variables.
type Ring struct {
	domain Domain
	gens   []string
	index  map[string]int
}

// NewRing builds a polynomial ring over the given domain with the given
// generators. Generator names must be valid identifiers and pairwise distinct.
func NewRing(domain Domain, gens []string) (*Ring, error) {
	if domain != ZZ && domain != QQ {
		return nil, errors.New(errors.ErrCodeInvalidRing,
			"%v is a nonsupported base ring. ZZ or QQ only", domain)
	}
	if len(gens) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "ring needs at least one generator")
	}
	index := make(map[string]int, len(gens))
	for i, g := range gens {
		if err := errors.ValidateVariableName(g); err != nil {
			return nil, err
		}
		if _, dup := index[g]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate generator %q", g)
		}
		index[g] = i
	}
	return &Ring{
		domain: domain,
		gens:   append([]string(nil), gens...),
		index:  index,
	}, nil
}

// Domain returns the coefficient domain of the ring.
func (r *Ring) Domain() Domain { return r.domain }

// Gens returns a copy of the ordered generator names.
func (r *Ring) Gens() []string { return append([]string(nil), r.gens...) }

// NumGens returns the number of generators.
func (r *Ring) NumGens() int { return len(r.gens) }

// GenName returns the name of generator i.
func (r *Ring) GenName(i int) string { return r.gens[i] }

// GenIndex resolves a generator name to its index.
func (r *Ring) GenIndex(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Zero returns the zero polynomial.
func (r *Ring) Zero() Poly { return Poly{ring: r} }

// One returns the constant polynomial 1.
func (r *Ring) One() Poly { return r.Const(big.NewRat(1, 1)) }

// Const returns the constant polynomial with the given value.
// Over ZZ the value may still be rational internally; casting user input
// through [Ring.Cast] enforces integrality where it matters.
func (r *Ring) Const(v *big.Rat) Poly {
	if v.Sign() == 0 {
		return r.Zero()
	}
	return Poly{ring: r, terms: []Term{{
		Coef: new(big.Rat).Set(v),
		Exp:  make([]int, len(r.gens)),
	}}}
}

// ConstInt returns the constant polynomial with the given integer value.
func (r *Ring) ConstInt(n int64) Poly { return r.Const(big.NewRat(n, 1)) }

// Gen returns the polynomial consisting of generator i alone.
func (r *Ring) Gen(i int) Poly {
	exp := make([]int, len(r.gens))
	exp[i] = 1
	return Poly{ring: r, terms: []Term{{Coef: big.NewRat(1, 1), Exp: exp}}}
}

// Monomial returns coef * prod(gens[i]^exp[i]).
func (r *Ring) Monomial(coef *big.Rat, exp []int) Poly {
	if coef.Sign() == 0 {
		return r.Zero()
	}
	e := make([]int, len(r.gens))
	copy(e, exp)
	return Poly{ring: r, terms: []Term{{Coef: new(big.Rat).Set(coef), Exp: e}}}
}
