package ring

import (
	"math/big"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

// PolyFactor is one irreducible factor with its multiplicity.
type PolyFactor struct {
	Base Poly
	Mult int
}

// kroneckerLimit caps the dense size of the univariate image used for
// multivariate factorization.
const kroneckerLimit = 1 << 20

// Factor decomposes p into irreducible factors with multiplicities and a
// leading unit, so that p = unit * prod(Base^Mult). Over ZZ constant prime
// factors appear in the factor list and the unit is +-1; over QQ all
// constant content is folded into the unit. Factoring zero is an error.
func Factor(p Poly) (*big.Rat, []PolyFactor, error) {
	if p.IsZero() {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "cannot factor the zero polynomial")
	}
	r := p.ring
	u, prim := p.contentUnit()

	var factors []PolyFactor
	unit := new(big.Rat).Set(u)
	if r.domain == ZZ && u.IsInt() {
		unit = big.NewRat(int64(u.Sign()), 1)
		for _, pf := range factorInt(new(big.Int).Abs(u.Num())) {
			factors = append(factors, PolyFactor{Base: r.Const(new(big.Rat).SetInt(pf.prime)), Mult: pf.mult})
		}
	}

	// split off monomial factors per generator
	core := prim
	for i := 0; i < r.NumGens(); i++ {
		if m := core.minDegreeIn(i); m > 0 && !core.IsZero() {
			factors = append(factors, PolyFactor{Base: r.Gen(i), Mult: m})
			core = divGenPow(core, i, m)
		}
	}

	irr, err := factorPrimitive(core)
	if err != nil {
		return nil, nil, err
	}
	factors = append(factors, irr...)
	return unit, mergeFactors(factors), nil
}

// IsIrreducible reports whether p is irreducible over its ring: not zero,
// not a unit, and with exactly one irreducible factor of multiplicity one.
func IsIrreducible(p Poly) (bool, error) {
	if p.IsZero() || p.IsUnit() {
		return false, nil
	}
	_, factors, err := Factor(p)
	if err != nil {
		return false, err
	}
	return len(factors) == 1 && factors[0].Mult == 1, nil
}

// divGenPow divides p by gens[i]^m, assuming every term has exponent >= m.
func divGenPow(p Poly, i, m int) Poly {
	return p.mulGenPow(i, -m)
}

// factorPrimitive factors a primitive integer polynomial with positive
// leading coefficient and no monomial factors.
func factorPrimitive(p Poly) ([]PolyFactor, error) {
	if p.IsConstant() {
		return nil, nil
	}
	vars := p.Vars()

	// A primitive polynomial linear in some variable, P = A*v + B, is
	// irreducible exactly when gcd(A, B) is a unit; otherwise that gcd
	// splits off as a factor free of v.
	for _, v := range vars {
		if p.DegreeIn(v) != 1 {
			continue
		}
		coeffs := p.decomposeIn(v)
		a, b := coeffs[1], coeffs[0]
		if b.IsZero() {
			// no constant part in v would mean a monomial factor,
			// which the caller already removed
			continue
		}
		g := GCD(a, b)
		if g.IsConstant() {
			return []PolyFactor{{Base: p, Mult: 1}}, nil
		}
		quo, ok := divExact(p, g)
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "inexact division by gcd factor")
		}
		left, err := factorPrimitive(g.PrimitivePart())
		if err != nil {
			return nil, err
		}
		right, err := factorPrimitive(quo.PrimitivePart())
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}

	if len(vars) == 1 {
		return factorUnivariate(p, vars[0])
	}
	return factorKronecker(p, vars)
}

// factorUnivariate factors a polynomial in a single generator through the
// dense integer backend.
func factorUnivariate(p Poly, v int) ([]PolyFactor, error) {
	u := toUpoly(p, v)
	var out []PolyFactor
	for _, f := range ufactor(u) {
		out = append(out, PolyFactor{Base: fromUpoly(p.ring, f.Fac, v), Mult: f.Mult})
	}
	return out, nil
}

// factorKronecker factors a multivariate primitive polynomial by mapping it
// to a univariate image via the substitution vars[k] -> t^(D^k), factoring
// the image, and recombining sub-multisets of its factors into candidate
// multivariate divisors.
func factorKronecker(p Poly, vars []int) ([]PolyFactor, error) {
	d := 0
	for _, v := range vars {
		if dv := p.DegreeIn(v); dv > d {
			d = dv
		}
	}
	base := d + 1

	size := 1
	for range vars {
		size *= base
		if size > kroneckerLimit {
			return nil, errors.New(errors.ErrCodeInternal,
				"polynomial too large for Kronecker factorization")
		}
	}

	img := make(upoly, size)
	for i := range img {
		img[i] = new(big.Int)
	}
	for _, t := range p.terms {
		e, stride := 0, 1
		for _, v := range vars {
			e += t.Exp[v] * stride
			stride *= base
		}
		img[e].Add(img[e], t.Coef.Num())
	}
	img = uprimitiveSigned(utrim(img))

	flat := ufactor(img)
	if len(flat) == 1 && flat[0].Mult == 1 {
		return []PolyFactor{{Base: p, Mult: 1}}, nil
	}

	// search sub-multisets of the image's factors for one that decodes to
	// a true divisor of p
	counts := make([]int, len(flat))
	for steps := 0; nextMultiset(counts, flat) && steps < kroneckerLimit; steps++ {
		if fullMultiset(counts, flat) {
			continue
		}
		cand := decodeKronecker(p.ring, productMultiset(counts, flat), vars, base)
		cand = cand.PrimitivePart()
		if cand.IsConstant() {
			continue
		}
		quo, ok := divExact(p, cand)
		if !ok {
			continue
		}
		left, err := factorPrimitive(cand)
		if err != nil {
			return nil, err
		}
		right, err := factorPrimitive(quo.PrimitivePart())
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}
	return []PolyFactor{{Base: p, Mult: 1}}, nil
}

// nextMultiset advances counts like an odometer bounded by each factor's
// multiplicity, reporting false once all combinations are exhausted.
func nextMultiset(counts []int, flat []ufacPart) bool {
	for i := range counts {
		if counts[i] < flat[i].Mult {
			counts[i]++
			return true
		}
		counts[i] = 0
	}
	return false
}

func fullMultiset(counts []int, flat []ufacPart) bool {
	for i := range counts {
		if counts[i] != flat[i].Mult {
			return false
		}
	}
	return true
}

func productMultiset(counts []int, flat []ufacPart) upoly {
	prod := uconst(1)
	for i, c := range counts {
		for k := 0; k < c; k++ {
			prod = umul(prod, flat[i].Fac)
		}
	}
	return prod
}

// decodeKronecker inverts the Kronecker substitution: the exponent of t is
// read as base-`base` digits, one per variable.
func decodeKronecker(r *Ring, u upoly, vars []int, base int) Poly {
	terms := make([]Term, 0, len(u))
	for e, c := range u {
		if c.Sign() == 0 {
			continue
		}
		exp := make([]int, r.NumGens())
		rem := e
		for _, v := range vars {
			exp[v] = rem % base
			rem /= base
		}
		terms = append(terms, Term{Coef: new(big.Rat).SetInt(c), Exp: exp})
	}
	return normalize(r, terms)
}

func toUpoly(p Poly, v int) upoly {
	out := make(upoly, p.DegreeIn(v)+1)
	for i := range out {
		out[i] = new(big.Int)
	}
	for _, t := range p.terms {
		out[t.Exp[v]].Add(out[t.Exp[v]], t.Coef.Num())
	}
	return utrim(out)
}

func fromUpoly(r *Ring, u upoly, v int) Poly {
	terms := make([]Term, 0, len(u))
	for e, c := range u {
		if c.Sign() == 0 {
			continue
		}
		exp := make([]int, r.NumGens())
		exp[v] = e
		terms = append(terms, Term{Coef: new(big.Rat).SetInt(c), Exp: exp})
	}
	return normalize(r, terms)
}

// mergeFactors combines equal factor bases, summing multiplicities.
func mergeFactors(fs []PolyFactor) []PolyFactor {
	var out []PolyFactor
	for _, f := range fs {
		merged := false
		for i := range out {
			if out[i].Base.Equal(f.Base) {
				out[i].Mult += f.Mult
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, f)
		}
	}
	return out
}

type intFactor struct {
	prime *big.Int
	mult  int
}

// factorInt factors a positive integer by trial division.
func factorInt(n *big.Int) []intFactor {
	var out []intFactor
	if n.CmpAbs(big.NewInt(1)) <= 0 {
		return out
	}
	rest := new(big.Int).Set(n)
	d := big.NewInt(2)
	for new(big.Int).Mul(d, d).Cmp(rest) <= 0 {
		if new(big.Int).Mod(rest, d).Sign() == 0 {
			mult := 0
			for new(big.Int).Mod(rest, d).Sign() == 0 {
				rest.Div(rest, d)
				mult++
			}
			out = append(out, intFactor{prime: new(big.Int).Set(d), mult: mult})
		}
		d.Add(d, big.NewInt(1))
	}
	if rest.Cmp(big.NewInt(1)) > 0 {
		out = append(out, intFactor{prime: rest, mult: 1})
	}
	return out
}
