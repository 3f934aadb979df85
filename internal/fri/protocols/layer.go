package protocols

import (
	"github.com/vybium/fri-commit/internal/fri/core"
)

// Layer is one rung of the FRI ladder: a domain, the layer polynomial's
// evaluations over that domain, and a Merkle commitment to those
// evaluations in order.
type Layer struct {
	Domain      *Domain
	Evaluations []*core.Element
	Tree        *core.MerkleTree
}

// NewLayer evaluates poly over every point of domain and commits to the
// resulting sequence with a Merkle tree.
func NewLayer(poly *core.Polynomial, domain *Domain) *Layer {
	evaluations := poly.EvaluateSequence(domain.Elements())
	tree := core.NewMerkleTree(evaluations)
	return &Layer{
		Domain:      domain,
		Evaluations: evaluations,
		Tree:        tree,
	}
}

// RootHex renders the layer's Merkle root as lowercase hex.
func (l *Layer) RootHex() string {
	return l.Tree.RootHex()
}
