package seedfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverdaisey/laurent/pkg/errors"
)

const linearSeedfile = `
domain = "ZZ"
variables = ["x1", "x2"]

[polynomials]
x1 = "1 + x2"
x2 = "1 + x1"
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(linearSeedfile))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if got := s.Rank(); got != 2 {
		t.Errorf("rank = %d, want 2", got)
	}
	want := "A seed with cluster variables [x1, x2] and exchange polynomials [x2 + 1, x1 + 1]"
	if got := s.String(); got != want {
		t.Errorf("seed = %q, want %q", got, want)
	}
}

func TestParseWithCoefficients(t *testing.T) {
	data := `
variables = ["x1", "x2"]
coefficients = ["C"]

[polynomials]
x1 = "C + x2"
x2 = "C + x1"
`
	s, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if got := s.Rank(); got != 2 {
		t.Errorf("rank = %d, want 2", got)
	}
	if got := s.Ring().NumGens(); got != 3 {
		t.Errorf("ring generators = %d, want 3", got)
	}
}

func TestParseDetectsCoefficients(t *testing.T) {
	data := `
variables = ["x1", "x2"]

[polynomials]
x1 = "a0 + a2*x2"
x2 = "b0*x1 + b1"
`
	s, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if got := s.Rank(); got != 2 {
		t.Errorf("rank = %d, want 2", got)
	}
	// x1, x2 plus the detected a0, a2, b0, b1.
	if got := s.Ring().NumGens(); got != 6 {
		t.Errorf("ring generators = %d, want 6", got)
	}
	for i, want := range []string{"x1", "x2", "a0", "a2", "b0", "b1"} {
		if got := s.Ring().GenName(i); got != want {
			t.Errorf("generator %d = %q, want %q", i, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{
			name: "no variables",
			data: `[polynomials]` + "\n" + `x1 = "1 + x2"`,
			code: errors.ErrCodeInvalidSeedfile,
		},
		{
			name: "bad domain",
			data: `domain = "GF2"` + "\n" + `variables = ["x1"]`,
			code: errors.ErrCodeInvalidRing,
		},
		{
			name: "missing polynomial",
			data: `variables = ["x1", "x2"]` + "\n" + `[polynomials]` + "\n" + `x1 = "1 + x2"`,
			code: errors.ErrCodeInvalidSeedfile,
		},
		{
			name: "unknown polynomial key",
			data: `variables = ["x1"]` + "\n" + `[polynomials]` + "\n" + `y = "1"`,
			code: errors.ErrCodeInvalidSeedfile,
		},
		{
			name: "bad variable name",
			data: `variables = ["1x"]` + "\n" + `[polynomials]` + "\n" + `1x = "1"`,
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "not toml",
			data: `{{{{`,
			code: errors.ErrCodeInvalidSeedfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestParsePropagatesAxiomViolations(t *testing.T) {
	data := `
variables = ["x1", "x2"]

[polynomials]
x1 = "4 - x2^2"
x2 = "1 + x1"
`
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeLP2Violation) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeLP2Violation)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.toml")
	if err := os.WriteFile(path, []byte(linearSeedfile), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if got := s.Rank(); got != 2 {
		t.Errorf("rank = %d, want 2", got)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
