// Package protocols implements the FRI ladder: domain construction,
// per-layer Merkle commitment, the commit phase, and the query
// (decommitment) phase, built on top of the core field/polynomial/Merkle
// primitives and the channel transcript.
package protocols

import (
	"github.com/vybium/fri-commit/internal/fri/core"
)

// Domain is an ordered sequence of non-zero field elements: the FRI
// evaluation domain at one layer of the ladder. Its points are not
// guaranteed to be distinct (see NewDomain).
type Domain struct {
	elements []*core.Element
}

// NewDomain constructs the enlarged evaluation domain of size n over
// field, following the coset construction: with g the field's generator,
// let k = (2^30 * 3) mod n and c = g^k; the domain is
// (g*c^0, g*c^1, ..., g*c^(n-1)). This deterministically selects a coset
// whose elements lie outside the subgroup <c>. The points are not
// distinct for every n: when n divides 2^30 * 3, k is 0, c is 1 and every
// point equals g.
//
// NewDomain builds the coset unconditionally for any n > 0: the symmetry
// property folding needs (see IsSymmetric) is a precondition on n this
// construction does not satisfy for every n, but it is a separate concern
// from construction itself — callers that only need the domain's points
// (e.g. to reproduce a fixed-size head of the sequence) are not blocked
// by it. Callers that intend to fold through this domain must check
// IsSymmetric themselves, or go through Commit, which does.
func NewDomain(field *core.Field, n int) (d *Domain, ok bool) {
	if n <= 0 {
		return nil, false
	}

	g := field.Generator()
	c := g.Exp(computeOffsetExponent(n))

	elements := make([]*core.Element, n)
	power := field.One()
	for i := 0; i < n; i++ {
		elements[i] = g.Mul(power)
		power = power.Mul(c)
	}

	return &Domain{elements: elements}, true
}

// computeOffsetExponent returns (2^30 * 3) mod n, computed without
// overflowing a 64-bit accumulator: 2^30*3 = 3221225472, which fits in a
// uint64 directly, so this is a direct mod.
func computeOffsetExponent(n int) uint64 {
	const k = uint64(1) << 30 * 3
	return k % uint64(n)
}

// IsSymmetric reports whether, for all 0 <= i < n/2, D[i]^2 == D[i+n/2]^2 —
// the precondition Next relies on to halve the domain coherently. Not
// every domain size this construction accepts satisfies it.
func (d *Domain) IsSymmetric() bool {
	n := len(d.elements)
	if n%2 != 0 {
		return n == 1
	}
	half := n / 2
	for i := 0; i < half; i++ {
		a := d.elements[i].Mul(d.elements[i])
		b := d.elements[i+half].Mul(d.elements[i+half])
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

// Elements returns the domain's points, in order.
func (d *Domain) Elements() []*core.Element {
	out := make([]*core.Element, len(d.elements))
	copy(out, d.elements)
	return out
}

// Len returns the number of points in the domain.
func (d *Domain) Len() int {
	return len(d.elements)
}

// Next returns the next (halved) domain: the first half of d's points,
// each squared. The invariant required for the fold to remain coherent
// holds inductively as long as d itself satisfies the symmetry property.
func (d *Domain) Next() *Domain {
	half := len(d.elements) / 2
	next := make([]*core.Element, half)
	for i := 0; i < half; i++ {
		next[i] = d.elements[i].Mul(d.elements[i])
	}
	return &Domain{elements: next}
}
