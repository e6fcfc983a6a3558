package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oliverdaisey/laurent/pkg/errors"
	"github.com/oliverdaisey/laurent/pkg/seed"
	"github.com/oliverdaisey/laurent/pkg/seedfile"
)

// newCheckCmd creates the check command for validating seedfiles.
// It loads the seedfile, verifies the exchange polynomials satisfy the
// LP axioms, and prints the resulting seed along with its Laurent
// polynomials. An optional mutation sequence can be applied first.
func newCheckCmd() *cobra.Command {
	var mutations string

	cmd := &cobra.Command{
		Use:   "check <seedfile.toml>",
		Short: "Validate a seedfile and describe the seed it defines",
		Long: `Validate a seedfile and describe the seed it defines.

The seedfile is a TOML document naming the coefficient domain, the cluster
variables, optional frozen coefficients, and one exchange polynomial per
cluster variable. The check command builds the seed, which verifies that
every exchange polynomial is irreducible, independent of its own variable,
and not divisible by any cluster variable.

Examples:
  laurent check seed.toml
  laurent check seed.toml --mutate 0,1,0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], mutations)
		},
	}

	cmd.Flags().StringVarP(&mutations, "mutate", "m", "", "comma-separated mutation sequence to apply (e.g., 0,1,0)")

	return cmd
}

// runCheck builds the seed from the seedfile, applies any requested
// mutation sequence, and prints the result.
func runCheck(cmd *cobra.Command, path, mutations string) error {
	logger := loggerFromContext(cmd.Context())

	s, err := seedfile.Load(path)
	if err != nil {
		if errors.IsValidation(err) {
			printWarning("Seedfile does not define a valid seed")
		}
		return err
	}
	logger.Debugf("Loaded rank %d seed over %s", s.Rank(), s.Ring().Domain())

	if mutations != "" {
		indices, err := parseIndices(mutations)
		if err != nil {
			return err
		}
		if err := errors.ValidateIndices(indices, s.Rank()); err != nil {
			return err
		}
		if err := s.MutateSequence(indices); err != nil {
			return err
		}
		logger.Infof("Applied mutation sequence %v", seed.ReduceSequence(indices))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s)
	fmt.Fprintln(out, "Laurent polynomials:")
	for i, l := range s.LaurentPolys() {
		fmt.Fprintf(out, "  %s -> %s\n", s.Ring().GenName(i), l)
	}
	return nil
}

// parseIndices parses a comma-separated list of mutation indices.
func parseIndices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	indices := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid mutation index %q", p)
		}
		indices = append(indices, n)
	}
	return indices, nil
}
