package errors

import (
	"regexp"
	"unicode"
)

// variableNameRegex matches valid generator labels: a letter followed by
// letters, digits, or underscores.
var variableNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateVariableName validates a cluster-variable or coefficient label.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Must be a plain identifier (letter, then letters/digits/underscores)
//   - Maximum length of 64 characters
func ValidateVariableName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "variable name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "variable name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "variable name contains control characters")
		}
	}

	if !variableNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid variable name: %q", name)
	}

	return nil
}

// ValidateAlgorithm validates a traversal-algorithm name.
// Supported values are "BFS" and "DFS".
func ValidateAlgorithm(name string) error {
	switch name {
	case "BFS", "DFS":
		return nil
	default:
		return New(ErrCodeInvalidAlgorithm, "nonsupported search algorithm: %q", name)
	}
}

// ValidateDomain validates a base-ring selector.
// Supported values are "ZZ" (integers) and "QQ" (rationals).
func ValidateDomain(name string) error {
	switch name {
	case "ZZ", "QQ":
		return nil
	default:
		return New(ErrCodeInvalidRing, "%s is a nonsupported base ring. ZZ or QQ only", name)
	}
}

// ValidateIndex validates a mutation index against a seed rank.
// Valid indices lie in [0, rank).
func ValidateIndex(i, rank int) error {
	if i < 0 || i >= rank {
		return New(ErrCodeIndexOutOfRange, "mutation index %d out of range [0, %d)", i, rank)
	}
	return nil
}

// ValidateIndices validates every element of a mutation-index sequence.
// The first invalid element is reported; earlier elements are not revisited.
func ValidateIndices(indices []int, rank int) error {
	for _, i := range indices {
		if err := ValidateIndex(i, rank); err != nil {
			return err
		}
	}
	return nil
}
