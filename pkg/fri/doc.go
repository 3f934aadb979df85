// Package fri provides a low-degree test for univariate polynomials over
// a prime field, following the FRI (Fast Reed-Solomon Interactive Oracle
// Proof of Proximity) commit-and-query protocol.
//
// # Quick Start
//
// Running the commit phase over a polynomial and then opening query
// points:
//
//	field := fri.BLS12381Field()
//	coeffs := []*fri.FieldElement{ /* ... */ }
//	poly := fri.NewPolynomial(field, coeffs)
//
//	cfg := fri.DefaultLadderConfig()
//	result, err := fri.Prove(poly, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(result.Layers[0].RootHex())
//
// # Architecture
//
// - pkg/fri/: public API (this package)
// - internal/fri/core/: field, polynomial and Merkle-commitment primitives
// - internal/fri/channel/: the Fiat-Shamir-flavored transcript
// - internal/fri/protocols/: domain construction, layers, commit and query phases
//
// Implementation details under internal/ can change without breaking the
// public API.
package fri
