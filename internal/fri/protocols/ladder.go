package protocols

import (
	"github.com/vybium/fri-commit/internal/fri/channel"
	"github.com/vybium/fri-commit/internal/fri/core"
)

// Commit runs the FRI commit phase: it builds the initial domain and
// layer, records the initial root under the field-zero transcript key,
// then repeatedly draws a challenge, folds the polynomial, halves the
// domain, builds the next layer and records its root — until the
// polynomial degree reaches zero.
//
// poly must not be the zero polynomial (its degree is undefined); that is
// a programmer error the caller must guard against. Commit rejects
// domainSize at setup if the resulting domain does not satisfy the
// symmetry property folding needs, since that failure would otherwise
// only surface partway through the loop below.
func Commit(poly *core.Polynomial, domainSize int, ch *channel.Channel) ([]*Layer, *core.Polynomial, bool) {
	field := poly.Field()

	domain, ok := NewDomain(field, domainSize)
	if !ok || !domain.IsSymmetric() {
		return nil, nil, false
	}

	layer := NewLayer(poly, domain)
	layers := []*Layer{layer}

	ch.Record(field.Zero(), layer.Tree.Root())

	currentPoly := poly
	currentDomain := domain

	for currentPoly.Degree() > 0 {
		beta := ch.GetChallenge(field)

		nextPoly := currentPoly.Fold(beta)
		nextDomain := currentDomain.Next()
		nextLayer := NewLayer(nextPoly, nextDomain)

		ch.Record(beta, nextLayer.Tree.Root())

		layers = append(layers, nextLayer)
		currentPoly = nextPoly
		currentDomain = nextDomain
	}

	return layers, currentPoly, true
}
