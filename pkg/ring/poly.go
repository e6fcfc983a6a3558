package ring

import (
	"fmt"
	"math/big"
	"strings"
)

// Term is a single monomial with its coefficient. Exp always has one entry
// per ring generator.
type Term struct {
	Coef *big.Rat
	Exp  []int
}

// Poly is a sparse multivariate polynomial. Terms are kept sorted in
// descending lexicographic order with no zero coefficients and no duplicate
// monomials. The zero polynomial has no terms.
type Poly struct {
	ring  *Ring
	terms []Term
}

// Ring returns the ring the polynomial belongs to.
func (p Poly) Ring() *Ring { return p.ring }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// IsConstant reports whether p has no variable part.
func (p Poly) IsConstant() bool {
	if len(p.terms) == 0 {
		return true
	}
	if len(p.terms) > 1 {
		return false
	}
	for _, e := range p.terms[0].Exp {
		if e != 0 {
			return false
		}
	}
	return true
}

// ConstantValue returns the value of a constant polynomial (0 for zero).
// The result is undefined for nonconstant polynomials.
func (p Poly) ConstantValue() *big.Rat {
	if len(p.terms) == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.terms[0].Coef)
}

// IsUnit reports whether p is a unit of its ring: +-1 over ZZ, any nonzero
// constant over QQ.
func (p Poly) IsUnit() bool {
	if !p.IsConstant() || p.IsZero() {
		return false
	}
	if p.ring.domain == QQ {
		return true
	}
	v := p.terms[0].Coef
	return v.IsInt() && v.Num().CmpAbs(big.NewInt(1)) == 0
}

// expCmp compares exponent vectors lexicographically.
func expCmp(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// normalize sorts terms in descending lex order, merges duplicates, and
// drops zero coefficients. It takes ownership of the slice.
func normalize(r *Ring, terms []Term) Poly {
	if len(terms) == 0 {
		return Poly{ring: r}
	}
	// insertion-friendly sort: sizes here are small
	sortTerms(terms)
	out := terms[:0]
	for _, t := range terms {
		if t.Coef.Sign() == 0 {
			continue
		}
		if n := len(out); n > 0 && expCmp(out[n-1].Exp, t.Exp) == 0 {
			out[n-1].Coef = new(big.Rat).Add(out[n-1].Coef, t.Coef)
			if out[n-1].Coef.Sign() == 0 {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, t)
	}
	return Poly{ring: r, terms: append([]Term(nil), out...)}
}

func sortTerms(terms []Term) {
	// simple merge-friendly sort; slices stay small enough that the
	// standard library suffices
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && expCmp(terms[j-1].Exp, terms[j].Exp) < 0; j-- {
			terms[j-1], terms[j] = terms[j], terms[j-1]
		}
	}
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	terms := make([]Term, 0, len(p.terms)+len(q.terms))
	for _, t := range p.terms {
		terms = append(terms, Term{Coef: new(big.Rat).Set(t.Coef), Exp: t.Exp})
	}
	for _, t := range q.terms {
		terms = append(terms, Term{Coef: new(big.Rat).Set(t.Coef), Exp: t.Exp})
	}
	return normalize(p.ring, terms)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Neg returns -p.
func (p Poly) Neg() Poly {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coef: new(big.Rat).Neg(t.Coef), Exp: t.Exp}
	}
	return Poly{ring: p.ring, terms: terms}
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return p.ring.Zero()
	}
	terms := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			exp := make([]int, len(a.Exp))
			for i := range exp {
				exp[i] = a.Exp[i] + b.Exp[i]
			}
			terms = append(terms, Term{Coef: new(big.Rat).Mul(a.Coef, b.Coef), Exp: exp})
		}
	}
	return normalize(p.ring, terms)
}

// Scale returns c * p for a rational constant c.
func (p Poly) Scale(c *big.Rat) Poly {
	if c.Sign() == 0 {
		return p.ring.Zero()
	}
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coef: new(big.Rat).Mul(t.Coef, c), Exp: t.Exp}
	}
	return Poly{ring: p.ring, terms: terms}
}

// Pow returns p^n for n >= 0.
func (p Poly) Pow(n int) Poly {
	result := p.ring.One()
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// Equal reports structural equality of two polynomials.
func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if expCmp(p.terms[i].Exp, q.terms[i].Exp) != 0 ||
			p.terms[i].Coef.Cmp(q.terms[i].Coef) != 0 {
			return false
		}
	}
	return true
}

// leadingTerm returns the lex-greatest term. Caller must check IsZero first.
func (p Poly) leadingTerm() Term { return p.terms[0] }

// TotalDegree returns the maximal sum of exponents across terms, or -1 for
// the zero polynomial.
func (p Poly) TotalDegree() int {
	if p.IsZero() {
		return -1
	}
	max := 0
	for _, t := range p.terms {
		d := 0
		for _, e := range t.Exp {
			d += e
		}
		if d > max {
			max = d
		}
	}
	return max
}

// DegreeIn returns the degree of p in generator i (0 if absent, -1 for zero).
func (p Poly) DegreeIn(i int) int {
	if p.IsZero() {
		return -1
	}
	max := 0
	for _, t := range p.terms {
		if t.Exp[i] > max {
			max = t.Exp[i]
		}
	}
	return max
}

// minDegreeIn returns the minimal exponent of generator i across all terms.
func (p Poly) minDegreeIn(i int) int {
	if p.IsZero() {
		return 0
	}
	min := p.terms[0].Exp[i]
	for _, t := range p.terms[1:] {
		if t.Exp[i] < min {
			min = t.Exp[i]
		}
	}
	return min
}

// HasVar reports whether generator i appears in p.
func (p Poly) HasVar(i int) bool { return p.DegreeIn(i) > 0 }

// Vars returns the indices of generators appearing in p, in ring order.
func (p Poly) Vars() []int {
	var vars []int
	for i := range p.ring.gens {
		if p.HasVar(i) {
			vars = append(vars, i)
		}
	}
	return vars
}

// contentUnit splits p as u * P where P is an integer polynomial that is
// primitive (coefficient gcd 1) with a positive leading coefficient, and u
// is the extracted rational content carrying the sign. The zero polynomial
// returns (0, 0).
func (p Poly) contentUnit() (*big.Rat, Poly) {
	if p.IsZero() {
		return new(big.Rat), p
	}
	gcdNum := new(big.Int)
	lcmDen := big.NewInt(1)
	for _, t := range p.terms {
		gcdNum.GCD(nil, nil, gcdNum, new(big.Int).Abs(t.Coef.Num()))
		den := t.Coef.Denom()
		g := new(big.Int).GCD(nil, nil, lcmDen, den)
		lcmDen.Div(new(big.Int).Mul(lcmDen, den), g)
	}
	u := new(big.Rat).SetFrac(gcdNum, lcmDen)
	if p.terms[0].Coef.Sign() < 0 {
		u.Neg(u)
	}
	inv := new(big.Rat).Inv(u)
	return u, p.Scale(inv)
}

// PrimitivePart returns p normalized to an integer primitive polynomial with
// positive leading coefficient. For the zero polynomial it returns zero.
func (p Poly) PrimitivePart() Poly {
	_, prim := p.contentUnit()
	return prim
}

// isIntegral reports whether all coefficients are integers.
func (p Poly) isIntegral() bool {
	for _, t := range p.terms {
		if !t.Coef.IsInt() {
			return false
		}
	}
	return true
}

// decomposeIn views p as a univariate polynomial in generator m and returns
// its coefficients, indexed by the exponent of m. Each coefficient is a
// polynomial free of m.
func (p Poly) decomposeIn(m int) map[int]Poly {
	coeffs := make(map[int]Poly)
	for _, t := range p.terms {
		e := t.Exp[m]
		exp := append([]int(nil), t.Exp...)
		exp[m] = 0
		mono := Poly{ring: p.ring, terms: []Term{{Coef: new(big.Rat).Set(t.Coef), Exp: exp}}}
		if c, ok := coeffs[e]; ok {
			coeffs[e] = c.Add(mono)
		} else {
			coeffs[e] = mono
		}
	}
	return coeffs
}

// mulGenPow returns p * gens[m]^k.
func (p Poly) mulGenPow(m, k int) Poly {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		exp := append([]int(nil), t.Exp...)
		exp[m] += k
		terms[i] = Term{Coef: new(big.Rat).Set(t.Coef), Exp: exp}
	}
	return Poly{ring: p.ring, terms: terms}
}

// String renders the polynomial with terms in descending lex order, e.g.
// "x1*x2^2 - 3*x1 + 4". The zero polynomial renders as "0".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		coef := t.Coef
		neg := coef.Sign() < 0
		abs := new(big.Rat).Abs(coef)
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		mono := p.monoString(t.Exp)
		one := abs.Cmp(big.NewRat(1, 1)) == 0
		switch {
		case mono == "":
			b.WriteString(ratString(abs))
		case one:
			b.WriteString(mono)
		default:
			b.WriteString(ratString(abs))
			b.WriteString("*")
			b.WriteString(mono)
		}
	}
	return b.String()
}

func (p Poly) monoString(exp []int) string {
	var parts []string
	for i, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, p.ring.gens[i])
		case e > 1:
			parts = append(parts, fmt.Sprintf("%s^%d", p.ring.gens[i], e))
		}
	}
	return strings.Join(parts, "*")
}

func ratString(v *big.Rat) string {
	if v.IsInt() {
		return v.Num().String()
	}
	return v.RatString()
}
