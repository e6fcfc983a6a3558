package ring

import (
	"math/big"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

// QuoRem computes the quotient and remainder of p divided by q using
// lexicographic leading-term division. The remainder is zero exactly when q
// divides p in the ring: over ZZ, coefficient divisibility is required as
// well, so x is not divisible by 2.
func QuoRem(p, q Poly) (Poly, Poly, error) {
	if q.IsZero() {
		return Poly{}, Poly{}, errors.New(errors.ErrCodeInvalidInput, "division by zero polynomial")
	}
	r := p.ring
	integral := r.domain == ZZ && p.isIntegral() && q.isIntegral()

	var quoTerms, remTerms []Term
	h := p
	qLead := q.leadingTerm()
	for !h.IsZero() {
		lt := h.leadingTerm()
		step, ok := termQuotient(lt, qLead, integral)
		if !ok {
			remTerms = append(remTerms, Term{Coef: new(big.Rat).Set(lt.Coef), Exp: lt.Exp})
			h = Poly{ring: r, terms: h.terms[1:]}
			continue
		}
		quoTerms = append(quoTerms, step)
		h = h.Sub(Poly{ring: r, terms: []Term{step}}.Mul(q))
	}
	return normalize(r, quoTerms), normalize(r, remTerms), nil
}

// termQuotient divides term a by term b, reporting false when the monomials
// are not componentwise comparable or, in integral mode, the coefficient
// quotient is not an integer.
func termQuotient(a, b Term, integral bool) (Term, bool) {
	exp := make([]int, len(a.Exp))
	for i := range exp {
		exp[i] = a.Exp[i] - b.Exp[i]
		if exp[i] < 0 {
			return Term{}, false
		}
	}
	coef := new(big.Rat).Quo(a.Coef, b.Coef)
	if integral && !coef.IsInt() {
		return Term{}, false
	}
	return Term{Coef: coef, Exp: exp}, true
}

// Divides reports whether q divides p exactly in the ring.
func Divides(q, p Poly) bool {
	if q.IsZero() {
		return p.IsZero()
	}
	_, rem, err := QuoRem(p, q)
	return err == nil && rem.IsZero()
}

// divExact divides p by q assuming exact divisibility over the rationals.
// It reports false when q does not divide p.
func divExact(p, q Poly) (Poly, bool) {
	if q.IsZero() {
		return Poly{}, false
	}
	if p.IsZero() {
		return p.ring.Zero(), true
	}
	r := p.ring
	var quoTerms []Term
	h := p
	qLead := q.leadingTerm()
	for !h.IsZero() {
		step, ok := termQuotient(h.leadingTerm(), qLead, false)
		if !ok {
			return Poly{}, false
		}
		quoTerms = append(quoTerms, step)
		h = h.Sub(Poly{ring: r, terms: []Term{step}}.Mul(q))
	}
	return normalize(r, quoTerms), true
}
