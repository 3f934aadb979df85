package fri

import (
	"math/big"

	"github.com/vybium/fri-commit/internal/fri/channel"
	"github.com/vybium/fri-commit/internal/fri/core"
	"github.com/vybium/fri-commit/internal/fri/protocols"
)

// BLS12381Modulus is the BLS12-381 scalar-field modulus, the reference
// prime for this system.
var BLS12381Modulus = core.BLS12381Modulus

// BLS12381Field returns the reference prime field, with multiplicative
// generator 7.
func BLS12381Field() *Field {
	return core.BLS12381Field
}

// NewField constructs a prime field with the given modulus and
// multiplicative generator.
func NewField(modulus *big.Int, generator int64) *Field {
	return core.NewField(modulus, generator)
}

// NewPolynomial builds a polynomial from coefficients, low-degree first.
func NewPolynomial(field *Field, coefficients []*FieldElement) *Polynomial {
	return core.NewPolynomial(field, coefficients)
}

// Result bundles the output of a full commit-and-query run.
type Result struct {
	Layers        []*Layer
	FinalPoly     *Polynomial
	Decommitments []*Decommitment
	QueryIndices  []int
}

// Prove runs the FRI commit phase followed by the query phase over poly,
// using cfg to size the domain and the query batch, and returns the
// ladder's layers, the terminal constant polynomial, and the resulting
// decommitments.
//
// It returns an *Error (ErrDegenerateInput) if poly is the zero
// polynomial, and (ErrInvalidDomain) if cfg.DomainSize does not admit a
// domain satisfying the symmetry precondition folding requires.
func Prove(poly *Polynomial, cfg LadderConfig) (*Result, error) {
	if poly.IsZero() {
		return nil, &Error{Code: ErrDegenerateInput, Message: "cannot run the FRI ladder over the zero polynomial"}
	}

	ch := channel.New(cfg.Seed)

	layers, finalPoly, ok := protocols.Commit(poly, cfg.DomainSize, ch)
	if !ok {
		return nil, &Error{Code: ErrInvalidDomain, Message: "domain size does not admit a symmetric evaluation domain"}
	}

	decommitments, indices := protocols.Query(cfg.NumQueries, cfg.DomainSize, layers, ch)

	return &Result{
		Layers:        layers,
		FinalPoly:     finalPoly,
		Decommitments: decommitments,
		QueryIndices:  indices,
	}, nil
}
