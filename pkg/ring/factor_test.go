package ring

import (
	"sort"
	"testing"
)

func factorStrings(t *testing.T, r *Ring, s string) []string {
	t.Helper()
	_, factors, err := Factor(mustPoly(t, r, s))
	if err != nil {
		t.Fatalf("Factor(%q) error = %v", s, err)
	}
	var out []string
	for _, f := range factors {
		for i := 0; i < f.Mult; i++ {
			out = append(out, f.Base.String())
		}
	}
	sort.Strings(out)
	return out
}

func TestFactor(t *testing.T) {
	r := mustRing(t, ZZ, "x1", "x2")

	tests := []struct {
		name string
		p    string
		want []string
	}{
		{"difference of squares", "x1^2 - x2^2", []string{"x1 + x2", "x1 - x2"}},
		{"perfect square", "x1^2 + 2*x1 + 1", []string{"x1 + 1", "x1 + 1"}},
		{"monomial factor", "x1^2*x2 + x1*x2", []string{"x1", "x1 + 1", "x2"}},
		{"constant over ZZ", "6", []string{"2", "3"}},
		{"content and core", "2*x1 + 2", []string{"2", "x1 + 1"}},
		{"irreducible quadratic", "x1^2 + 1", []string{"x1^2 + 1"}},
		{"mixed bivariate", "x1*x2 + x1 + x2 + 1", []string{"x1 + 1", "x2 + 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := factorStrings(t, r, tt.p)
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if len(got) != len(want) {
				t.Fatalf("factors = %v, want %v", got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("factors = %v, want %v", got, want)
				}
			}
		})
	}
}

func TestFactorUnit(t *testing.T) {
	r := mustRing(t, ZZ, "x1", "x2")

	unit, factors, err := Factor(mustPoly(t, r, "4 - x2^2"))
	if err != nil {
		t.Fatalf("Factor() error = %v", err)
	}
	if got := unit.RatString(); got != "-1" {
		t.Errorf("unit = %s, want -1", got)
	}
	if len(factors) != 2 {
		t.Fatalf("got %d factors, want 2", len(factors))
	}
}

func TestIsIrreducible(t *testing.T) {
	zz := mustRing(t, ZZ, "x1", "x2")
	qq := mustRing(t, QQ, "x1", "x2")

	tests := []struct {
		name string
		r    *Ring
		p    string
		want bool
	}{
		{"linear binomial", zz, "1 + x2", true},
		{"exchange-style trinomial", zz, "x1 + x2 + 1", true},
		{"difference of squares", zz, "4 - x2^2", false},
		{"unit", zz, "1", false},
		{"non-unit constant over ZZ", zz, "2", true},
		{"constant over QQ", qq, "2", false},
		{"scaled linear over ZZ", zz, "2*x1 + 2", false},
		{"scaled linear over QQ", qq, "2*x1 + 2", true},
		{"square", zz, "x1^2 + 2*x1 + 1", false},
		{"bivariate irreducible", zz, "x1*x2 + 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsIrreducible(mustPoly(t, tt.r, tt.p))
			if err != nil {
				t.Fatalf("IsIrreducible(%q) error = %v", tt.p, err)
			}
			if got != tt.want {
				t.Errorf("IsIrreducible(%q) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
