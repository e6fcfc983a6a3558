// Package pkg provides the core libraries for exploring Laurent phenomenon
// algebra seeds.
//
// # Overview
//
// A seed pairs a cluster of rational functions with one exchange polynomial
// per cluster variable. Mutating a seed in a direction exchanges that cluster
// variable and rewrites the remaining exchange polynomials; the set of seeds
// reachable by mutation, up to equivalence, is the seed's mutation class.
// The pkg directory is organized around that flow:
//
//  1. [ring] - Exact multivariate polynomial and rational-function arithmetic
//  2. [seed] - Seeds, the LP axioms, mutation, and equivalence
//  3. [explore] - Lazy mutation-class traversal and its projections
//  4. [xgraph] - Exchange graphs with DOT, SVG, and JSON output
//  5. [seedfile] - TOML seed definitions
//
// # Architecture
//
// The typical data flow:
//
//	Seedfile (TOML)
//	     ↓
//	[seedfile] package (parse + validate)
//	     ↓
//	[seed] package (Laurent polynomials + mutation)
//	     ↓
//	[explore] package (mutation class traversal)
//	     ↓
//	Seed lists, cluster variables, or exchange graphs
//
// # Quick Start
//
// Build a seed and enumerate its mutation class:
//
//	import (
//	    "github.com/oliverdaisey/laurent/pkg/explore"
//	    "github.com/oliverdaisey/laurent/pkg/ring"
//	    "github.com/oliverdaisey/laurent/pkg/seed"
//	)
//
//	// 1. Define the ambient ring
//	r, _ := ring.NewRing(ring.ZZ, []string{"x1", "x2"})
//
//	// 2. Parse exchange polynomials
//	f1, _ := ring.ParsePoly(r, "1 + x2")
//	f2, _ := ring.ParsePoly(r, "1 + x1")
//
//	// 3. Build the seed (validates the LP axioms)
//	s, _ := seed.New(r, 2, []ring.Poly{f1, f2})
//
//	// 4. Enumerate the mutation class
//	class, _ := explore.MutationClass(s)
//
// # Main Packages
//
// [ring] - Sparse multivariate polynomials with exact rational coefficients
// over ZZ or QQ, including division, GCD, irreducible factorization, rational
// functions, and an expression parser.
//
// [seed] - The seed type. Construction checks that every exchange polynomial
// is independent of its own variable and irreducible; mutation, mutation
// sequences, equivalence testing, and canonical hashing build on that.
//
// [explore] - Scanner-style iterator over a mutation class in BFS or DFS
// order with optional depth bounds and mutation paths, plus projections:
// the class itself, its clusters, its cluster variables, and the exchange
// graph.
//
// [xgraph] - Undirected exchange graphs with Graphviz DOT output, SVG
// rendering, and a JSON interchange format.
//
// [seedfile] - TOML documents declaring a domain, cluster variables, frozen
// coefficients, and exchange polynomials.
//
// [cache] - File-backed result cache used by the CLI to avoid recomputing
// mutation classes and exchange graphs.
//
// [errors] - Structured error codes shared across packages.
//
// [ring]: https://pkg.go.dev/github.com/oliverdaisey/laurent/pkg/ring
// [seed]: https://pkg.go.dev/github.com/oliverdaisey/laurent/pkg/seed
// [explore]: https://pkg.go.dev/github.com/oliverdaisey/laurent/pkg/explore
// [xgraph]: https://pkg.go.dev/github.com/oliverdaisey/laurent/pkg/xgraph
// [seedfile]: https://pkg.go.dev/github.com/oliverdaisey/laurent/pkg/seedfile
// [cache]: https://pkg.go.dev/github.com/oliverdaisey/laurent/pkg/cache
// [errors]: https://pkg.go.dev/github.com/oliverdaisey/laurent/pkg/errors
package pkg
