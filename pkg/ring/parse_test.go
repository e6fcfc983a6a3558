package ring

import (
	"reflect"
	"testing"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

func TestParsePoly(t *testing.T) {
	r := mustRing(t, ZZ, "x1", "x2")

	tests := []struct {
		name string
		expr string
		want string
	}{
		{"plain sum", "1 + x2", "x2 + 1"},
		{"binomial power", "(x1 + 1)^2", "x1^2 + 2*x1 + 1"},
		{"product", "x1*x2 + 2*x1", "x1*x2 + 2*x1"},
		{"nested parens", "((x1 - x2))*(x1 + x2)", "x1^2 - x2^2"},
		{"unary minus", "-x1 + 1", "-x1 + 1"},
		{"cancelling division", "(x1^2 - 1)/(x1 - 1)", "x1 + 1"},
		{"whitespace", "  x1   +   x2 ", "x1 + x2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePoly(r, tt.expr)
			if err != nil {
				t.Fatalf("ParsePoly(%q) error = %v", tt.expr, err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("ParsePoly(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParsePolyErrors(t *testing.T) {
	zz := mustRing(t, ZZ, "x1", "x2")
	qq := mustRing(t, QQ, "x1", "x2")

	tests := []struct {
		name string
		r    *Ring
		expr string
		code errors.Code
	}{
		{"unknown variable", zz, "x1 + y", errors.ErrCodeInvalidExpression},
		{"genuine fraction", zz, "1/x1", errors.ErrCodeInvalidExpression},
		{"non-integral over ZZ", zz, "x1/2", errors.ErrCodeInvalidExpression},
		{"malformed", zz, "x1 + + x2 )", errors.ErrCodeInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePoly(tt.r, tt.expr)
			if err == nil {
				t.Fatalf("ParsePoly(%q): expected error, got nil", tt.expr)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("ParsePoly(%q) code = %s, want %s", tt.expr, errors.GetCode(err), tt.code)
			}
		})
	}

	// rational coefficients are fine over QQ
	if _, err := ParsePoly(qq, "x1/2"); err != nil {
		t.Errorf("ParsePoly over QQ error = %v", err)
	}
}

func TestParseFrac(t *testing.T) {
	r := mustRing(t, ZZ, "x1", "x2")

	tests := []struct {
		name string
		expr string
		want string
	}{
		{"laurent monomial", "1/x1", "1/x1"},
		{"mixed", "(x2 + 1)/x1", "(x2 + 1)/x1"},
		{"reduces", "(x1*x2 + x1)/(x1*x2)", "(x2 + 1)/x2"},
		{"negative exponent via division", "x2/x1^2", "x2/x1^2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFrac(r, tt.expr)
			if err != nil {
				t.Fatalf("ParseFrac(%q) error = %v", tt.expr, err)
			}
			if got := f.String(); got != tt.want {
				t.Errorf("ParseFrac(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestExprVars(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"1 + x2", []string{"x2"}},
		{"a0 + a2*x2", []string{"a0", "a2", "x2"}},
		{"x1*(x1 + b0)^2 - b0", []string{"x1", "b0"}},
		{"7", nil},
	}

	for _, tt := range tests {
		got, err := ExprVars(tt.expr)
		if err != nil {
			t.Errorf("ExprVars(%q) error = %v", tt.expr, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExprVars(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}

	if _, err := ExprVars("1 +"); err == nil {
		t.Error("ExprVars on malformed input expected error")
	}
}
