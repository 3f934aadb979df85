package fri

import (
	"github.com/vybium/fri-commit/internal/fri/core"
	"github.com/vybium/fri-commit/internal/fri/protocols"
)

// FieldElement is a reduced value in a prime field.
type FieldElement = core.Element

// Field is a prime field, parameterized by modulus and generator.
type Field = core.Field

// Polynomial is a dense coefficient-vector polynomial over a Field.
type Polynomial = core.Polynomial

// Digest is a 32-byte Merkle node hash.
type Digest = core.Digest

// Layer is one rung of the FRI ladder.
type Layer = protocols.Layer

// Decommitment is a single query's opening across every ladder layer.
type Decommitment = protocols.Decommitment

// LadderConfig configures a commit-and-query run of the FRI protocol.
type LadderConfig struct {
	// DomainSize is the size of the initial evaluation domain. It must
	// satisfy the symmetry precondition Commit validates, and every
	// domain size the commit loop derives from it by halving must too.
	DomainSize int

	// NumQueries is the number of query indices drawn in the query phase.
	NumQueries int

	// Seed seeds the channel's pseudo-random challenge and index draws.
	// Two runs with the same seed (and the same polynomial and config)
	// produce identical transcripts.
	Seed uint64
}

// DefaultLadderConfig returns reasonable defaults: a domain large enough
// for typical teaching-sized polynomials, a modest query count, and a
// fixed seed for reproducible runs.
func DefaultLadderConfig() LadderConfig {
	return LadderConfig{
		DomainSize: 48,
		NumQueries: 3,
		Seed:       0,
	}
}
