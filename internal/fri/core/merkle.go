package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Digest is a 32-byte SHA-256 output.
type Digest [sha256.Size]byte

func hashLeaf(e *Element) Digest {
	b := e.Bytes()
	return sha256.Sum256(b[:])
}

func hashNode(left, right Digest) Digest {
	var buf [2 * sha256.Size]byte
	copy(buf[:sha256.Size], left[:])
	copy(buf[sha256.Size:], right[:])
	return sha256.Sum256(buf[:])
}

// MerkleTree is a balanced binary hash tree over the SHA-256 hashes of a
// sequence of field elements. When a level has an odd node count, the
// unpaired node is promoted unchanged to the next level rather than
// hashed with itself; see DESIGN.md for why this padding policy was chosen.
type MerkleTree struct {
	levels [][]Digest // levels[0] is the leaf hashes; last level has one entry, the root
}

// NewMerkleTree builds a Merkle tree over the SHA-256 hashes of the
// canonical encodings of values, in order. values must be non-empty.
func NewMerkleTree(values []*Element) *MerkleTree {
	if len(values) == 0 {
		panic("core: cannot build a Merkle tree over zero leaves")
	}

	leaves := make([]Digest, len(values))
	for i, v := range values {
		leaves[i] = hashLeaf(v)
	}

	levels := [][]Digest{leaves}
	current := leaves
	for len(current) > 1 {
		next := make([]Digest, 0, (len(current)+1)/2)
		for i := 0; i+1 < len(current); i += 2 {
			next = append(next, hashNode(current[i], current[i+1]))
		}
		if len(current)%2 == 1 {
			next = append(next, current[len(current)-1])
		}
		levels = append(levels, next)
		current = next
	}

	return &MerkleTree{levels: levels}
}

// Root returns the 32-byte Merkle root.
func (t *MerkleTree) Root() Digest {
	return t.levels[len(t.levels)-1][0]
}

// RootHex renders the root as a lowercase 64-character hex string.
func (t *MerkleTree) RootHex() string {
	root := t.Root()
	return hex.EncodeToString(root[:])
}

// LeafCount returns the number of leaves committed to.
func (t *MerkleTree) LeafCount() int {
	return len(t.levels[0])
}

// Prove returns the authentication path for a leaf index: its own hash,
// followed by the ordered sibling digests from leaf to root. The leading
// leaf-hash entry lets a verifier recompute the path without being handed
// the leaf separately. The caller passing an index outside
// [0, LeafCount) is a programmer error and panics.
func (t *MerkleTree) Prove(index int) []Digest {
	if index < 0 || index >= t.LeafCount() {
		panic(fmt.Sprintf("core: merkle proof index %d out of range [0, %d)", index, t.LeafCount()))
	}

	path := []Digest{t.levels[0][index]}
	idx := index
	for level := 0; level < len(t.levels)-1; level++ {
		nodes := t.levels[level]
		var siblingIdx int
		if idx%2 == 0 {
			siblingIdx = idx + 1
		} else {
			siblingIdx = idx - 1
		}
		if siblingIdx < len(nodes) {
			path = append(path, nodes[siblingIdx])
		}
		idx /= 2
	}
	return path
}

// VerifyPath recomputes a root from an index and an authentication path
// (as returned by Prove: leaf hash first, then siblings leaf-to-root),
// and reports whether it matches root. It replays the same
// promote-unpaired-node rule NewMerkleTree used to build the path, so it
// needs leafCount to know, at each level, whether the node at idx had a
// sibling to consume from path or was promoted unchanged. It is not part
// of the prover's own output but is useful for tests to check
// self-consistency.
func VerifyPath(root Digest, index int, path []Digest, leafCount int) bool {
	if len(path) == 0 {
		return false
	}
	hash := path[0]
	idx := index
	levelSize := leafCount
	pos := 1
	for levelSize > 1 {
		isLastUnpaired := levelSize%2 == 1 && idx == levelSize-1
		if isLastUnpaired {
			// promoted unchanged; no sibling to consume
		} else {
			if pos >= len(path) {
				return false
			}
			sibling := path[pos]
			pos++
			if idx%2 == 0 {
				hash = hashNode(hash, sibling)
			} else {
				hash = hashNode(sibling, hash)
			}
		}
		idx /= 2
		levelSize = (levelSize + 1) / 2
	}
	return pos == len(path) && hash == root
}
