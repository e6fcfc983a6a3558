package ring

import "math/big"

// GCD returns a greatest common divisor of p and q. Over ZZ the result
// includes the shared integer content and is normalized to a positive
// leading coefficient; over QQ constant content is a unit, so the result is
// the primitive structural gcd (1 for coprime inputs).
func GCD(p, q Poly) Poly {
	r := p.ring
	switch {
	case p.IsZero() && q.IsZero():
		return r.Zero()
	case p.IsZero():
		return gcdNormalize(q)
	case q.IsZero():
		return gcdNormalize(p)
	}

	up, P := p.contentUnit()
	uq, Q := q.contentUnit()

	g := primGCD(P, Q)
	if r.domain == ZZ {
		c := ratGCD(up, uq)
		return g.Scale(c)
	}
	return g
}

// gcdNormalize maps p to its gcd-canonical associate: over ZZ the sign is
// stripped, over QQ all constant content is.
func gcdNormalize(p Poly) Poly {
	u, prim := p.contentUnit()
	if p.ring.domain == ZZ {
		return prim.Scale(new(big.Rat).Abs(u))
	}
	return prim
}

// ratGCD returns the positive rational gcd: gcd of numerators over lcm of
// denominators.
func ratGCD(a, b *big.Rat) *big.Rat {
	num := new(big.Int).GCD(nil, nil,
		new(big.Int).Abs(a.Num()), new(big.Int).Abs(b.Num()))
	g := new(big.Int).GCD(nil, nil, a.Denom(), b.Denom())
	den := new(big.Int).Div(new(big.Int).Mul(a.Denom(), b.Denom()), g)
	return new(big.Rat).SetFrac(num, den)
}

// primGCD computes the gcd of two primitive integer polynomials using the
// primitive pseudo-remainder sequence in a chosen main variable, recursing
// into the coefficient ring for contents.
func primGCD(p, q Poly) Poly {
	r := p.ring
	if p.IsConstant() || q.IsConstant() {
		return r.One()
	}

	m := mainVar(p, q)

	contP := contentIn(p, m)
	contQ := contentIn(q, m)
	contG := GCD(contP, contQ)

	a, okA := divExact(p, contP)
	if !okA {
		a = p
	}
	b, okB := divExact(q, contQ)
	if !okB {
		b = q
	}
	if a.DegreeIn(m) < b.DegreeIn(m) {
		a, b = b, a
	}

	for !b.IsZero() && b.DegreeIn(m) > 0 {
		rem := prem(a, b, m)
		a = b
		b = primitiveIn(rem, m)
	}

	var g Poly
	if b.IsZero() {
		g = primitiveIn(a, m)
	} else {
		// nonzero remainder free of the main variable: the primitive
		// parts are coprime
		g = r.One()
	}
	return contG.Mul(g).PrimitivePart()
}

// mainVar picks the first generator appearing in either polynomial.
func mainVar(p, q Poly) int {
	for i := 0; i < p.ring.NumGens(); i++ {
		if p.HasVar(i) || q.HasVar(i) {
			return i
		}
	}
	return 0
}

// contentIn returns the gcd of p's coefficients viewed as a univariate
// polynomial in generator m.
func contentIn(p Poly, m int) Poly {
	coeffs := p.decomposeIn(m)
	cont := p.ring.Zero()
	for _, c := range coeffs {
		cont = GCD(cont, c)
		if cont.IsUnit() {
			break
		}
	}
	if cont.IsZero() {
		return p.ring.One()
	}
	return cont
}

// primitiveIn strips both the content in m and the rational content from p.
func primitiveIn(p Poly, m int) Poly {
	if p.IsZero() {
		return p
	}
	cont := contentIn(p, m)
	pp, ok := divExact(p, cont)
	if !ok {
		pp = p
	}
	return pp.PrimitivePart()
}

// leadCoeffIn returns the coefficient of the highest power of m in p.
func leadCoeffIn(p Poly, m int) Poly {
	d := p.DegreeIn(m)
	coeffs := p.decomposeIn(m)
	return coeffs[d]
}

// prem computes the pseudo-remainder of a by b with respect to generator m:
// leading coefficients of b are multiplied in so that each elimination step
// stays in the polynomial ring.
func prem(a, b Poly, m int) Poly {
	db := b.DegreeIn(m)
	lcb := leadCoeffIn(b, m)
	for !a.IsZero() && a.DegreeIn(m) >= db {
		da := a.DegreeIn(m)
		lca := leadCoeffIn(a, m)
		a = a.Mul(lcb).Sub(b.Mul(lca).mulGenPow(m, da-db))
	}
	return a
}
