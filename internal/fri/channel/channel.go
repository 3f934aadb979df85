// Package channel implements the prover-side transcript the FRI ladder
// records commitments into and draws challenges and query indices from.
package channel

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/fri-commit/internal/fri/core"
)

// Channel is a Fiat-Shamir-flavored transcript: a map from challenge to
// committed Merkle root, plus a source of pseudo-random challenges and
// query indices. A stronger construction would derive challenges from a
// running hash of the transcript itself rather than an independent PRNG;
// this implementation keeps a PRNG but makes it seeded and reproducible,
// so two runs with the same seed draw identical challenges and indices.
type Channel struct {
	roots   map[string]core.Digest
	state   uint64
	counter uint64
}

// New creates a channel whose challenge/index draws are deterministic
// functions of seed. Two channels built with the same seed produce
// identical sequences of challenges and indices.
func New(seed uint64) *Channel {
	return &Channel{
		roots: make(map[string]core.Digest),
		state: seed,
	}
}

// nextUint64 advances the internal counter and returns the next
// pseudo-random 64-bit word, derived by hashing the seed state with the
// draw counter.
func (c *Channel) nextUint64() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], c.state)
	binary.LittleEndian.PutUint64(buf[8:16], c.counter)
	c.counter++
	digest := sha3.Sum256(buf[:])
	return binary.LittleEndian.Uint64(digest[:8])
}

// GetChallenge samples a field element from the channel's pseudo-random
// source, reduced into field.
func (c *Channel) GetChallenge(field *core.Field) *core.Element {
	return field.NewElementFromUint64(c.nextUint64())
}

// GetIndex draws a non-negative integer from the channel's pseudo-random
// source. Consumers reduce it modulo whatever domain size is relevant.
func (c *Channel) GetIndex() uint64 {
	return c.nextUint64()
}

// Record inserts challenge -> root into the transcript. Duplicate keys
// overwrite silently. In particular the initial layer is conventionally
// keyed by the field-zero element; if a later challenge happens to equal
// zero, the first record is silently lost. This is accepted behavior, not
// guarded against here — see DESIGN.md.
func (c *Channel) Record(challenge *core.Element, root core.Digest) {
	c.roots[challenge.HashKey()] = root
}

// Lookup recovers a previously recorded root, if any.
func (c *Channel) Lookup(challenge *core.Element) (core.Digest, bool) {
	root, ok := c.roots[challenge.HashKey()]
	return root, ok
}
