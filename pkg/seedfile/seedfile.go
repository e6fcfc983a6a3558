// Package seedfile loads seed definitions from TOML files.
//
// A seedfile names the base ring, the cluster variables in order, any
// coefficient labels, and one exchange polynomial per variable:
//
//	domain = "ZZ"
//	variables = ["x1", "x2"]
//	coefficients = ["C"]
//
//	[polynomials]
//	x1 = "C + x2"
//	x2 = "C + x1"
package seedfile

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/oliverdaisey/laurent/pkg/errors"
	"github.com/oliverdaisey/laurent/pkg/ring"
	"github.com/oliverdaisey/laurent/pkg/seed"
)

// File is the on-disk shape of a seed definition.
type File struct {
	Domain       string            `toml:"domain"`
	Variables    []string          `toml:"variables"`
	Coefficients []string          `toml:"coefficients"`
	Polynomials  map[string]string `toml:"polynomials"`
}

// Load reads a seedfile from disk and builds the seed it defines.
func Load(path string) (*seed.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "cannot read seedfile %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML bytes and builds the seed they define.
func Parse(data []byte) (*seed.Seed, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSeedfile, err, "cannot parse seedfile")
	}
	return f.Build()
}

// Build validates the definition and constructs the seed.
func (f *File) Build() (*seed.Seed, error) {
	if len(f.Variables) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSeedfile, "seedfile declares no variables")
	}

	domain := f.Domain
	if domain == "" {
		domain = "ZZ"
	}
	if err := errors.ValidateDomain(domain); err != nil {
		return nil, err
	}
	d, err := ring.ParseDomain(domain)
	if err != nil {
		return nil, err
	}

	coefficients := f.Coefficients
	if len(coefficients) == 0 {
		coefficients, err = detectCoefficients(f.Variables, f.Polynomials)
		if err != nil {
			return nil, err
		}
	}

	for _, name := range append(append([]string(nil), f.Variables...), coefficients...) {
		if err := errors.ValidateVariableName(name); err != nil {
			return nil, err
		}
	}
	for name := range f.Polynomials {
		if !contains(f.Variables, name) {
			return nil, errors.New(errors.ErrCodeInvalidSeedfile,
				"polynomial given for unknown variable %q", name)
		}
	}

	r, err := ring.NewRing(d, append(append([]string(nil), f.Variables...), coefficients...))
	if err != nil {
		return nil, err
	}

	polys := make([]ring.Poly, len(f.Variables))
	for i, name := range f.Variables {
		expr, ok := f.Polynomials[name]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidSeedfile,
				"no exchange polynomial for variable %q", name)
		}
		polys[i], err = ring.ParsePoly(r, expr)
		if err != nil {
			return nil, err
		}
	}

	return seed.New(r, len(f.Variables), polys)
}

// detectCoefficients collects identifiers used in the exchange polynomials
// that are not cluster variables. Variable order follows the declared
// variables; detected coefficients are sorted for a stable generator list.
func detectCoefficients(variables []string, polynomials map[string]string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, name := range variables {
		expr, ok := polynomials[name]
		if !ok {
			continue
		}
		idents, err := ring.ExprVars(expr)
		if err != nil {
			return nil, err
		}
		for _, id := range idents {
			if contains(variables, id) || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
