package ring

import (
	"testing"
)

func mustFrac(t *testing.T, r *Ring, s string) Frac {
	t.Helper()
	f, err := ParseFrac(r, s)
	if err != nil {
		t.Fatalf("ParseFrac(%q) error = %v", s, err)
	}
	return f
}

func TestFracNormalization(t *testing.T) {
	r := mustRing(t, ZZ, "x1", "x2")

	tests := []struct {
		name     string
		num, den string
		want     string
	}{
		{"cancel common factor", "x1^2 - 1", "x1 - 1", "x1 + 1"},
		{"denominator sign", "x2 + 1", "-x1", "(-x2 - 1)/x1"},
		{"zero numerator", "0", "x1*x2", "0"},
		{"already reduced", "x2 + 1", "x1", "(x2 + 1)/x1"},
		{"constant denominator", "2*x1 + 2", "2", "x1 + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrac(mustPoly(t, r, tt.num), mustPoly(t, r, tt.den))
			if err != nil {
				t.Fatalf("NewFrac() error = %v", err)
			}
			if got := f.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFracZeroDenominator(t *testing.T) {
	r := mustRing(t, ZZ, "x1")
	if _, err := NewFrac(r.One(), r.Zero()); err == nil {
		t.Error("NewFrac with zero denominator: expected error, got nil")
	}
}

func TestFracArithmetic(t *testing.T) {
	r := mustRing(t, ZZ, "x1", "x2")

	tests := []struct {
		name string
		got  func() Frac
		want string
	}{
		{
			name: "add over common denominator",
			got:  func() Frac { return mustFrac(t, r, "1/x1").Add(mustFrac(t, r, "1/x2")) },
			want: "(x1 + x2)/(x1*x2)",
		},
		{
			name: "mul cancels",
			got:  func() Frac { return mustFrac(t, r, "x1/x2").Mul(mustFrac(t, r, "x2/x1")) },
			want: "1",
		},
		{
			name: "sub to zero",
			got:  func() Frac { return mustFrac(t, r, "x1/x2").Sub(mustFrac(t, r, "x1/x2")) },
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got().String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFracSubstitute(t *testing.T) {
	r := mustRing(t, ZZ, "x1", "x2")

	// x1 evaluated at x1 -> (x2 + 1)/x1
	f := FromPoly(r.Gen(0))
	got, err := f.Substitute(map[int]Frac{0: mustFrac(t, r, "(x2 + 1)/x1")})
	if err != nil {
		t.Fatalf("Substitute() error = %v", err)
	}
	if want := "(x2 + 1)/x1"; got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}

	// composite: (x1 + x2)/x1 at x2 -> 1/x1 collapses to a Laurent form
	g := mustFrac(t, r, "(x1 + x2)/x1")
	got, err = g.Substitute(map[int]Frac{1: mustFrac(t, r, "1/x1")})
	if err != nil {
		t.Fatalf("Substitute() error = %v", err)
	}
	if want := "(x1^2 + 1)/x1^2"; got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}

func TestFracCanonicalKey(t *testing.T) {
	zz := mustRing(t, ZZ, "x1", "x2")
	qq := mustRing(t, QQ, "x1", "x2")

	tests := []struct {
		name string
		r    *Ring
		a, b string
		same bool
	}{
		{"sign flip over ZZ", zz, "(x2 + 1)/x1", "(-x2 - 1)/x1", true},
		{"doubled over ZZ", zz, "(x2 + 1)/x1", "(2*x2 + 2)/x1", false},
		{"doubled over QQ", qq, "(x2 + 1)/x1", "(2*x2 + 2)/x1", true},
		{"different denominators", zz, "(x2 + 1)/x1", "(x2 + 1)/x1^2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustFrac(t, tt.r, tt.a).CanonicalKey()
			b := mustFrac(t, tt.r, tt.b).CanonicalKey()
			if (a == b) != tt.same {
				t.Errorf("keys %q and %q: same = %v, want %v", a, b, a == b, tt.same)
			}
		})
	}
}
