package ring

import (
	"math/big"

	"github.com/alecthomas/participle/v2"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

// Expression grammar: sums of products of signed powers, with parentheses.
// Identifiers must name generators of the target ring.

type exprNode struct {
	Left *termNode `parser:"@@"`
	Tail []*exprOp `parser:"@@*"`
}

type exprOp struct {
	Op   string    `parser:"@('+' | '-')"`
	Term *termNode `parser:"@@"`
}

type termNode struct {
	Left *unaryNode `parser:"@@"`
	Tail []*termOp  `parser:"@@*"`
}

type termOp struct {
	Op    string     `parser:"@('*' | '/')"`
	Unary *unaryNode `parser:"@@"`
}

type unaryNode struct {
	Neg   bool       `parser:"@'-'?"`
	Power *powerNode `parser:"@@"`
}

type powerNode struct {
	Base *atomNode `parser:"@@"`
	Exp  *int      `parser:"('^' @Int)?"`
}

type atomNode struct {
	Number *string   `parser:"@Int"`
	Ident  *string   `parser:"| @Ident"`
	Sub    *exprNode `parser:"| '(' @@ ')'"`
}

var exprParser = participle.MustBuild[exprNode]()

// ExprVars returns the distinct identifiers appearing in the expression s,
// in order of first appearance. It does not require a ring; callers use it
// to discover coefficient labels before the ring exists.
func ExprVars(s string) ([]string, error) {
	node, err := exprParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidExpression, err,
			"cannot parse expression %q", s)
	}
	var out []string
	seen := make(map[string]bool)
	collectIdents(node, seen, &out)
	return out, nil
}

func collectIdents(n *exprNode, seen map[string]bool, out *[]string) {
	terms := []*termNode{n.Left}
	for _, op := range n.Tail {
		terms = append(terms, op.Term)
	}
	for _, t := range terms {
		unaries := []*unaryNode{t.Left}
		for _, op := range t.Tail {
			unaries = append(unaries, op.Unary)
		}
		for _, u := range unaries {
			atom := u.Power.Base
			switch {
			case atom.Ident != nil:
				if !seen[*atom.Ident] {
					seen[*atom.Ident] = true
					*out = append(*out, *atom.Ident)
				}
			case atom.Sub != nil:
				collectIdents(atom.Sub, seen, out)
			}
		}
	}
}

// ParseFrac parses s as a rational expression in the generators of r.
func ParseFrac(r *Ring, s string) (Frac, error) {
	node, err := exprParser.ParseString("", s)
	if err != nil {
		return Frac{}, errors.Wrap(errors.ErrCodeInvalidExpression, err,
			"cannot parse expression %q", s)
	}
	return evalExpr(r, node)
}

// ParsePoly parses s and requires the result to be a polynomial over r;
// over ZZ the coefficients must additionally be integers.
func ParsePoly(r *Ring, s string) (Poly, error) {
	f, err := ParseFrac(r, s)
	if err != nil {
		return Poly{}, err
	}
	if !f.IsPoly() {
		return Poly{}, errors.New(errors.ErrCodeInvalidExpression,
			"%q does not define an element of a polynomial ring over %s", s, r.Domain())
	}
	p := f.Num().Scale(invUnit(f.Den()))
	if r.Domain() == ZZ && !p.isIntegral() {
		return Poly{}, errors.New(errors.ErrCodeInvalidExpression,
			"%q does not define an element of a polynomial ring over %s", s, r.Domain())
	}
	return p, nil
}

func evalExpr(r *Ring, n *exprNode) (Frac, error) {
	out, err := evalTerm(r, n.Left)
	if err != nil {
		return Frac{}, err
	}
	for _, op := range n.Tail {
		rhs, err := evalTerm(r, op.Term)
		if err != nil {
			return Frac{}, err
		}
		if op.Op == "+" {
			out = out.Add(rhs)
		} else {
			out = out.Sub(rhs)
		}
	}
	return out, nil
}

func evalTerm(r *Ring, n *termNode) (Frac, error) {
	out, err := evalUnary(r, n.Left)
	if err != nil {
		return Frac{}, err
	}
	for _, op := range n.Tail {
		rhs, err := evalUnary(r, op.Unary)
		if err != nil {
			return Frac{}, err
		}
		if op.Op == "*" {
			out = out.Mul(rhs)
		} else {
			out, err = out.Div(rhs)
			if err != nil {
				return Frac{}, err
			}
		}
	}
	return out, nil
}

func evalUnary(r *Ring, n *unaryNode) (Frac, error) {
	out, err := evalPower(r, n.Power)
	if err != nil {
		return Frac{}, err
	}
	if n.Neg {
		out = out.Neg()
	}
	return out, nil
}

func evalPower(r *Ring, n *powerNode) (Frac, error) {
	base, err := evalAtom(r, n.Base)
	if err != nil {
		return Frac{}, err
	}
	if n.Exp == nil {
		return base, nil
	}
	if *n.Exp < 0 {
		return base.Pow(-*n.Exp).Inverse()
	}
	return base.Pow(*n.Exp), nil
}

func evalAtom(r *Ring, n *atomNode) (Frac, error) {
	switch {
	case n.Number != nil:
		v, ok := new(big.Int).SetString(*n.Number, 10)
		if !ok {
			return Frac{}, errors.New(errors.ErrCodeInvalidExpression,
				"invalid integer literal %q", *n.Number)
		}
		return FromPoly(r.Const(new(big.Rat).SetInt(v))), nil
	case n.Ident != nil:
		i, ok := r.GenIndex(*n.Ident)
		if !ok {
			return Frac{}, errors.New(errors.ErrCodeInvalidExpression,
				"unknown variable %q", *n.Ident)
		}
		return FromPoly(r.Gen(i)), nil
	default:
		return evalExpr(r, n.Sub)
	}
}
