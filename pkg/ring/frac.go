package ring

import (
	"math/big"
	"strings"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

// Frac is a fraction of two polynomials over the same ring, kept in a
// canonical form: numerator and denominator share no common factor, the
// denominator is integer-primitive with positive leading coefficient, and
// zero is represented as 0/1.
type Frac struct {
	ring *Ring
	num  Poly
	den  Poly
}

// NewFrac builds the canonical fraction num/den. A zero denominator is an
// error.
func NewFrac(num, den Poly) (Frac, error) {
	if den.IsZero() {
		return Frac{}, errors.New(errors.ErrCodeInvalidInput, "zero denominator")
	}
	return normFrac(num, den), nil
}

// FromPoly lifts a polynomial into the fraction field.
func FromPoly(p Poly) Frac {
	return Frac{ring: p.ring, num: p, den: p.ring.One()}
}

// normFrac reduces num/den by their gcd and moves the denominator's content
// and sign into the numerator.
func normFrac(num, den Poly) Frac {
	r := den.ring
	if num.IsZero() {
		return Frac{ring: r, num: r.Zero(), den: r.One()}
	}
	g := GCD(num, den)
	if !g.IsUnit() {
		if q, ok := divExact(num, g); ok {
			if d, ok2 := divExact(den, g); ok2 {
				num, den = q, d
			}
		}
	}
	u, prim := den.contentUnit()
	den = prim
	num = num.Scale(new(big.Rat).Inv(u))
	return Frac{ring: r, num: num, den: den}
}

// Ring returns the ring the fraction lives over.
func (f Frac) Ring() *Ring { return f.ring }

// Num returns the numerator in canonical form.
func (f Frac) Num() Poly { return f.num }

// Den returns the denominator in canonical form.
func (f Frac) Den() Poly { return f.den }

func (f Frac) IsZero() bool { return f.num.IsZero() }

// IsPoly reports whether the fraction has trivial denominator.
func (f Frac) IsPoly() bool { return f.den.IsUnit() }

// IsUnit reports whether the fraction is a unit of the coefficient ring.
func (f Frac) IsUnit() bool { return f.den.IsUnit() && f.num.IsUnit() }

func (f Frac) Add(g Frac) Frac {
	num := f.num.Mul(g.den).Add(g.num.Mul(f.den))
	return normFrac(num, f.den.Mul(g.den))
}

func (f Frac) Sub(g Frac) Frac {
	num := f.num.Mul(g.den).Sub(g.num.Mul(f.den))
	return normFrac(num, f.den.Mul(g.den))
}

func (f Frac) Mul(g Frac) Frac {
	return normFrac(f.num.Mul(g.num), f.den.Mul(g.den))
}

func (f Frac) Neg() Frac {
	return Frac{ring: f.ring, num: f.num.Neg(), den: f.den}
}

// Div divides f by g; dividing by zero is an error.
func (f Frac) Div(g Frac) (Frac, error) {
	if g.IsZero() {
		return Frac{}, errors.New(errors.ErrCodeInvalidInput, "division by zero")
	}
	return normFrac(f.num.Mul(g.den), f.den.Mul(g.num)), nil
}

// Inverse returns 1/f; inverting zero is an error.
func (f Frac) Inverse() (Frac, error) {
	return FromPoly(f.ring.One()).Div(f)
}

// Pow raises f to a nonnegative power.
func (f Frac) Pow(k int) Frac {
	out := FromPoly(f.ring.One())
	for i := 0; i < k; i++ {
		out = out.Mul(f)
	}
	return out
}

// Equal reports exact equality of canonical forms.
func (f Frac) Equal(g Frac) bool {
	return f.num.Equal(g.num) && f.den.Equal(g.den)
}

// CanonicalKey returns a representation invariant under multiplication by
// units of the coefficient ring. Two fractions differ by a unit exactly
// when their keys agree.
func (f Frac) CanonicalKey() string {
	if f.IsZero() {
		return "0"
	}
	num := f.num
	if f.ring.domain == ZZ {
		// units are +-1: only the sign is stripped
		if num.leadingTerm().Coef.Sign() < 0 {
			num = num.Neg()
		}
	} else {
		num = num.PrimitivePart()
	}
	return num.String() + " / " + f.den.String()
}

// SubstituteFrac evaluates p with generators replaced by the given
// fractions; generators absent from sub stay fixed.
func (p Poly) SubstituteFrac(sub map[int]Frac) Frac {
	r := p.ring
	out := FromPoly(r.Zero())
	for _, t := range p.terms {
		term := FromPoly(r.Const(t.Coef))
		for v, e := range t.Exp {
			if e == 0 {
				continue
			}
			base, ok := sub[v]
			if !ok {
				base = FromPoly(r.Gen(v))
			}
			term = term.Mul(base.Pow(e))
		}
		out = out.Add(term)
	}
	return out
}

// Substitute evaluates f with generators replaced by the given fractions.
// Substitution that makes the denominator vanish is an error.
func (f Frac) Substitute(sub map[int]Frac) (Frac, error) {
	den := f.den.SubstituteFrac(sub)
	if den.IsZero() {
		return Frac{}, errors.New(errors.ErrCodeInvalidInput,
			"substitution makes the denominator vanish")
	}
	return f.num.SubstituteFrac(sub).Div(den)
}

func (f Frac) String() string {
	if f.IsPoly() {
		return f.num.Scale(invUnit(f.den)).String()
	}
	var b strings.Builder
	b.WriteString(wrapPoly(f.num))
	b.WriteString("/")
	b.WriteString(wrapPoly(f.den))
	return b.String()
}

// invUnit returns the inverse of a unit polynomial's constant value.
func invUnit(p Poly) *big.Rat {
	return new(big.Rat).Inv(p.ConstantValue())
}

// wrapPoly parenthesizes a polynomial unless it renders as a single
// positive power of one generator or a bare constant.
func wrapPoly(p Poly) string {
	s := p.String()
	if len(p.terms) > 1 || strings.HasPrefix(s, "-") || strings.Contains(s, "*") {
		return "(" + s + ")"
	}
	return s
}
