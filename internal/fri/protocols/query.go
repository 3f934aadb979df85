package protocols

import (
	"github.com/vybium/fri-commit/internal/fri/channel"
	"github.com/vybium/fri-commit/internal/fri/core"
)

// Decommitment is one query's opening across every layer of the ladder: at
// each layer, the evaluation and authentication path at the query's index
// into that layer's domain, paired with the same at the symmetric index.
type Decommitment struct {
	LayerEvaluations    []*core.Element
	LayerAuthPaths      [][]core.Digest
	LayerEvaluationsSym []*core.Element
	LayerAuthPathsSym   [][]core.Digest
}

// Query runs the FRI query (decommitment) phase: it draws numQueries
// indices from ch, each reduced modulo the top-level domain size, and for
// each one opens every layer at that index and its symmetric twin
// (index + half the layer's domain size, mod the layer's domain size).
//
// It returns the list of per-query decommitments together with the raw
// (pre-per-layer-reduction) indices drawn. If layers is empty, both
// returned slices are empty.
func Query(numQueries int, domainSize int, layers []*Layer, ch *channel.Channel) ([]*Decommitment, []int) {
	if len(layers) == 0 {
		return nil, nil
	}

	indices := make([]int, numQueries)
	for q := 0; q < numQueries; q++ {
		indices[q] = int(ch.GetIndex() % uint64(domainSize))
	}

	decommitments := make([]*Decommitment, numQueries)
	for q, i := range indices {
		d := &Decommitment{}
		for _, layer := range layers {
			domLen := layer.Domain.Len()
			index := i % domLen
			indexSym := (i + domLen/2) % domLen

			d.LayerEvaluations = append(d.LayerEvaluations, layer.Evaluations[index])
			d.LayerAuthPaths = append(d.LayerAuthPaths, layer.Tree.Prove(index))
			d.LayerEvaluationsSym = append(d.LayerEvaluationsSym, layer.Evaluations[indexSym])
			d.LayerAuthPathsSym = append(d.LayerAuthPathsSym, layer.Tree.Prove(indexSym))
		}
		decommitments[q] = d
	}

	return decommitments, indices
}
