package ring

import (
	"math/big"
	"math/rand"
)

// Dense univariate polynomials over the integers, used as the backend for
// irreducibility testing and factorization. Multivariate polynomials reach
// this code through the Kronecker substitution in factor.go.
//
// Factorization follows the classic big-prime variant of Zassenhaus: Yun
// squarefree decomposition, one modular factorization over F_p for a prime
// exceeding twice the Mignotte coefficient bound, then subset recombination
// with symmetric lifts and exact trial division.

// upoly holds coefficients by ascending exponent with a nonzero leading
// coefficient; the zero polynomial is the empty slice.
type upoly []*big.Int

func utrim(p upoly) upoly {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

func udeg(p upoly) int { return len(p) - 1 }

func uclone(p upoly) upoly {
	out := make(upoly, len(p))
	for i, c := range p {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

func uconst(n int64) upoly {
	if n == 0 {
		return upoly{}
	}
	return upoly{big.NewInt(n)}
}

func umul(a, b upoly) upoly {
	if len(a) == 0 || len(b) == 0 {
		return upoly{}
	}
	out := make(upoly, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	for i, ca := range a {
		if ca.Sign() == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j].Add(out[i+j], new(big.Int).Mul(ca, cb))
		}
	}
	return utrim(out)
}

func usub(a, b upoly) upoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(upoly, n)
	for i := range out {
		out[i] = new(big.Int)
		if i < len(a) {
			out[i].Set(a[i])
		}
		if i < len(b) {
			out[i].Sub(out[i], b[i])
		}
	}
	return utrim(out)
}

func uscale(a upoly, c *big.Int) upoly {
	if c.Sign() == 0 {
		return upoly{}
	}
	out := make(upoly, len(a))
	for i, v := range a {
		out[i] = new(big.Int).Mul(v, c)
	}
	return out
}

func ushift(a upoly, k int) upoly {
	if len(a) == 0 {
		return a
	}
	out := make(upoly, len(a)+k)
	for i := 0; i < k; i++ {
		out[i] = new(big.Int)
	}
	copy(out[k:], a)
	return out
}

func uderiv(a upoly) upoly {
	if len(a) <= 1 {
		return upoly{}
	}
	out := make(upoly, len(a)-1)
	for i := 1; i < len(a); i++ {
		out[i-1] = new(big.Int).Mul(a[i], big.NewInt(int64(i)))
	}
	return utrim(out)
}

// ucontent returns the positive gcd of all coefficients (0 for zero).
func ucontent(a upoly) *big.Int {
	g := new(big.Int)
	for _, c := range a {
		g.GCD(nil, nil, g, new(big.Int).Abs(c))
	}
	return g
}

// uprimitive strips content and sign so the leading coefficient is positive.
func uprimitive(a upoly) upoly {
	a = utrim(a)
	if len(a) == 0 {
		return a
	}
	c := ucontent(a)
	if a[len(a)-1].Sign() < 0 {
		c.Neg(c)
	}
	out := make(upoly, len(a))
	for i, v := range a {
		out[i] = new(big.Int).Quo(v, c)
	}
	return out
}

// udivExact divides a by b over ZZ, reporting false when the division is
// not exact.
func udivExact(a, b upoly) (upoly, bool) {
	if len(b) == 0 {
		return nil, false
	}
	if len(a) == 0 {
		return upoly{}, true
	}
	if udeg(a) < udeg(b) {
		return nil, false
	}
	rem := uclone(a)
	quo := make(upoly, udeg(a)-udeg(b)+1)
	for i := range quo {
		quo[i] = new(big.Int)
	}
	lead := b[len(b)-1]
	for len(rem) >= len(b) {
		k := len(rem) - len(b)
		q, r := new(big.Int).QuoRem(rem[len(rem)-1], lead, new(big.Int))
		if r.Sign() != 0 {
			return nil, false
		}
		quo[k].Set(q)
		for j, c := range b {
			rem[k+j].Sub(rem[k+j], new(big.Int).Mul(q, c))
		}
		rem = utrim(rem)
	}
	if len(rem) != 0 {
		return nil, false
	}
	return utrim(quo), true
}

// uprem is the pseudo-remainder: lc(b)^k * a reduced by b, staying in ZZ.
func uprem(a, b upoly) upoly {
	db := udeg(b)
	lcb := b[len(b)-1]
	for len(a) > 0 && udeg(a) >= db {
		da := udeg(a)
		lca := a[len(a)-1]
		a = usub(uscale(a, lcb), ushift(uscale(b, lca), da-db))
	}
	return a
}

// ugcd computes the primitive positive gcd of two integer polynomials via
// the primitive pseudo-remainder sequence, including the integer content.
func ugcd(a, b upoly) upoly {
	a, b = utrim(a), utrim(b)
	if len(a) == 0 {
		return uprimitiveSigned(b)
	}
	if len(b) == 0 {
		return uprimitiveSigned(a)
	}
	ca, cb := ucontent(a), ucontent(b)
	cont := new(big.Int).GCD(nil, nil, ca, cb)
	a, b = uprimitive(a), uprimitive(b)
	if udeg(a) < udeg(b) {
		a, b = b, a
	}
	for len(b) > 0 && udeg(b) > 0 {
		r := uprem(a, b)
		a = b
		b = uprimitive(r)
	}
	var g upoly
	if len(b) == 0 {
		g = uprimitive(a)
	} else {
		g = uconst(1)
	}
	return uscale(g, cont)
}

// uprimitiveSigned keeps the integer content but normalizes the sign.
func uprimitiveSigned(a upoly) upoly {
	a = utrim(a)
	if len(a) == 0 || a[len(a)-1].Sign() > 0 {
		return a
	}
	return uscale(a, big.NewInt(-1))
}

// usqfPart is a squarefree part with its multiplicity.
type usqfPart struct {
	Part upoly
	Mult int
}

// ufacPart is an irreducible factor with its multiplicity.
type ufacPart struct {
	Fac  upoly
	Mult int
}

// usquarefree performs Yun's squarefree decomposition of a primitive
// polynomial with positive leading coefficient. The result lists the
// squarefree parts with their multiplicities in ascending order.
func usquarefree(f upoly) []usqfPart {
	var out []usqfPart
	if udeg(f) < 1 {
		return out
	}
	df := uderiv(f)
	g := ugcd(f, df)
	c, _ := udivExact(f, g)
	w, _ := udivExact(df, g)
	i := 1
	for udeg(c) > 0 {
		d := usub(w, uderiv(c))
		a := ugcd(c, d)
		if udeg(a) > 0 {
			out = append(out, usqfPart{uprimitive(a), i})
		}
		c, _ = udivExact(c, a)
		w, _ = udivExact(d, a)
		i++
	}
	return out
}

// ufactor factors a primitive positive-lead integer polynomial of degree
// >= 1 into primitive irreducible factors with multiplicities.
func ufactor(f upoly) []ufacPart {
	var out []ufacPart
	for _, sf := range usquarefree(f) {
		for _, irr := range ufactorSquarefree(sf.Part) {
			out = append(out, ufacPart{irr, sf.Mult})
		}
	}
	return out
}

// ufactorSquarefree factors a primitive squarefree polynomial into
// irreducibles via a single modular factorization and recombination.
func ufactorSquarefree(f upoly) []upoly {
	if udeg(f) == 1 {
		return []upoly{f}
	}

	p := factorPrime(f)
	modular := modFactorMonic(modReduce(f, p), p)
	if len(modular) == 1 {
		return []upoly{f}
	}

	var result []upoly
	remaining := f
	avail := modular
	// try subset products of modular factors, smallest first
	for size := 1; 2*size <= len(avail); size++ {
		retry := true
		for retry {
			retry = false
			if size > len(avail) {
				break
			}
			idx := firstCombination(size)
			for idx != nil {
				cand := recombine(remaining, avail, idx, p)
				if cand != nil {
					if quo, ok := udivExact(remaining, cand); ok {
						result = append(result, cand)
						remaining = quo
						avail = removeIndices(avail, idx)
						retry = true
						break
					}
				}
				idx = nextCombination(idx, len(avail))
			}
		}
	}
	if udeg(remaining) >= 1 {
		result = append(result, remaining)
	}
	return result
}

// factorPrime picks a prime exceeding twice the Mignotte factor bound for f,
// such that f stays squarefree modulo the prime.
func factorPrime(f upoly) *big.Int {
	n := udeg(f)
	norm := new(big.Int)
	for _, c := range f {
		norm.Add(norm, new(big.Int).Mul(c, c))
	}
	norm.Sqrt(norm)
	norm.Add(norm, big.NewInt(1))
	bound := new(big.Int).Lsh(norm, uint(n+1)) // 2^(n+1) * ||f||_2
	bound.Mul(bound, new(big.Int).Abs(f[len(f)-1]))

	p := new(big.Int).Lsh(bound, 1)
	p.Add(p, big.NewInt(3))
	if p.Bit(0) == 0 {
		p.Add(p, big.NewInt(1))
	}
	for {
		if p.ProbablyPrime(32) && squarefreeMod(f, p) {
			return p
		}
		p.Add(p, big.NewInt(2))
	}
}

func squarefreeMod(f upoly, p *big.Int) bool {
	fm := modReduce(f, p)
	if udeg(fm) != udeg(f) {
		return false
	}
	g := modGCD(fm, modReduce(uderiv(f), p), p)
	return udeg(g) == 0
}

// recombine builds the integer candidate factor for a subset of modular
// factors: lc(f) * prod(subset) mod p, symmetric lift, primitive part.
// It returns nil when the candidate is trivially constant.
func recombine(f upoly, avail []upoly, idx []int, p *big.Int) upoly {
	lc := f[len(f)-1]
	cand := upoly{new(big.Int).Mod(lc, p)}
	for _, i := range idx {
		cand = modMul(cand, avail[i], p)
	}
	lifted := make(upoly, len(cand))
	half := new(big.Int).Rsh(p, 1)
	for i, c := range cand {
		v := new(big.Int).Set(c)
		if v.Cmp(half) > 0 {
			v.Sub(v, p)
		}
		lifted[i] = v
	}
	lifted = uprimitive(lifted)
	if udeg(lifted) < 1 {
		return nil
	}
	return lifted
}

func firstCombination(size int) []int {
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func nextCombination(idx []int, n int) []int {
	k := len(idx)
	for i := k - 1; i >= 0; i-- {
		if idx[i] < n-k+i {
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
			return idx
		}
	}
	return nil
}

func removeIndices(list []upoly, idx []int) []upoly {
	drop := make(map[int]bool, len(idx))
	for _, i := range idx {
		drop[i] = true
	}
	var out []upoly
	for i, f := range list {
		if !drop[i] {
			out = append(out, f)
		}
	}
	return out
}

// Arithmetic over F_p: coefficients are big.Ints reduced into [0, p).

func modReduce(a upoly, p *big.Int) upoly {
	out := make(upoly, len(a))
	for i, c := range a {
		out[i] = new(big.Int).Mod(c, p)
	}
	return utrim(out)
}

func modMul(a, b upoly, p *big.Int) upoly {
	out := umul(a, b)
	return modReduce(out, p)
}

func modSub(a, b upoly, p *big.Int) upoly {
	return modReduce(usub(a, b), p)
}

// modMonic scales a to a monic polynomial mod p.
func modMonic(a upoly, p *big.Int) upoly {
	a = utrim(a)
	if len(a) == 0 {
		return a
	}
	inv := new(big.Int).ModInverse(a[len(a)-1], p)
	out := make(upoly, len(a))
	for i, c := range a {
		out[i] = new(big.Int).Mod(new(big.Int).Mul(c, inv), p)
	}
	return out
}

// modRem reduces a modulo the monic polynomial f over F_p.
func modRem(a, f upoly, p *big.Int) upoly {
	a = utrim(a)
	for len(a) >= len(f) {
		k := len(a) - len(f)
		lc := a[len(a)-1]
		shifted := ushift(uscale(f, lc), k)
		a = modSub(a, shifted, p)
	}
	return a
}

func modGCD(a, b upoly, p *big.Int) upoly {
	a, b = utrim(a), utrim(b)
	for len(b) > 0 {
		bm := modMonic(b, p)
		r := modRem(a, bm, p)
		a, b = bm, r
	}
	if len(a) == 0 {
		return a
	}
	return modMonic(a, p)
}

// modPowMod computes base^e modulo the monic polynomial f over F_p.
func modPowMod(base upoly, e *big.Int, f upoly, p *big.Int) upoly {
	result := upoly{big.NewInt(1)}
	b := modRem(modReduce(base, p), f, p)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = modRem(modMul(result, result, p), f, p)
		if e.Bit(i) == 1 {
			result = modRem(modMul(result, b, p), f, p)
		}
	}
	return result
}

// modFactorMonic factors a monic squarefree polynomial over F_p into monic
// irreducibles using distinct-degree then equal-degree splitting.
func modFactorMonic(f upoly, p *big.Int) []upoly {
	f = modMonic(f, p)
	var out []upoly

	rng := rand.New(rand.NewSource(1))
	x := upoly{new(big.Int), big.NewInt(1)}
	h := x
	d := 0
	rest := f
	for udeg(rest) > 0 {
		d++
		if 2*d > udeg(rest) {
			out = append(out, rest)
			break
		}
		h = modPowMod(h, p, rest, p)
		g := modGCD(modSub(h, x, p), rest, p)
		if udeg(g) > 0 {
			out = append(out, equalDegreeSplit(g, d, p, rng)...)
			rest, _ = modDivExact(rest, g, p)
			h = modRem(h, rest, p)
		}
	}
	return out
}

func modDivExact(a, b upoly, p *big.Int) (upoly, bool) {
	b = modMonic(b, p)
	quo := make(upoly, udeg(a)-udeg(b)+1)
	for i := range quo {
		quo[i] = new(big.Int)
	}
	rem := modReduce(a, p)
	for len(rem) >= len(b) {
		k := len(rem) - len(b)
		lc := rem[len(rem)-1]
		quo[k].Set(lc)
		rem = modSub(rem, ushift(uscale(b, lc), k), p)
	}
	return utrim(quo), len(rem) == 0
}

// equalDegreeSplit splits a product of irreducibles of equal degree d via
// Cantor-Zassenhaus. The random source is deterministic so runs reproduce.
func equalDegreeSplit(f upoly, d int, p *big.Int, rng *rand.Rand) []upoly {
	if udeg(f) == d {
		return []upoly{f}
	}
	e := new(big.Int).Exp(p, big.NewInt(int64(d)), nil)
	e.Sub(e, big.NewInt(1))
	e.Rsh(e, 1) // (p^d - 1) / 2

	for {
		r := randomPoly(udeg(f)-1, p, rng)
		if len(r) == 0 {
			continue
		}
		s := modPowMod(r, e, f, p)
		s = modSub(s, upoly{big.NewInt(1)}, p)
		g := modGCD(s, f, p)
		if udeg(g) > 0 && udeg(g) < udeg(f) {
			rest, _ := modDivExact(f, g, p)
			return append(equalDegreeSplit(g, d, p, rng), equalDegreeSplit(rest, d, p, rng)...)
		}
	}
}

func randomPoly(maxDeg int, p *big.Int, rng *rand.Rand) upoly {
	out := make(upoly, maxDeg+1)
	for i := range out {
		out[i] = new(big.Int).Rand(rng, p)
	}
	return utrim(out)
}
