package merkle

import (
	"errors"

	"github.com/forestrie/go-merklecommit/hashing"
)

var (
	ErrEmptyInput      = errors.New("merkle: no items to commit")
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
)

// Tree is a binary merkle tree over a fixed, ordered batch of items. The
// batch is hashed once at construction and the tree is immutable afterwards.
type Tree struct {
	leaves [][]byte
	root   []byte
}

// New hashes each item in the batch and reduces the leaf level to a single
// root. ErrEmptyInput is returned for an empty batch.
func New(items [][]byte) (*Tree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	leaves := make([][]byte, len(items))
	for i, item := range items {
		leaves[i] = hashing.HashLeaf(item)
	}
	return &Tree{leaves: leaves, root: reduceRoot(leaves)}, nil
}

// Root returns the batch commitment.
func (t *Tree) Root() []byte {
	return append([]byte(nil), t.root...)
}

// LeafCount returns the number of leaves committed by the tree.
func (t *Tree) LeafCount() int {
	return len(t.leaves)
}

// LeafHash returns the digest of the leaf at index i, as required by
// VerifyInclusion.
func (t *Tree) LeafHash(i int) ([]byte, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, ErrIndexOutOfRange
	}
	return append([]byte(nil), t.leaves[i]...), nil
}

// reduceRoot repeatedly replaces the current level with its parent level
// until a single digest remains.
func reduceRoot(level [][]byte) []byte {
	for len(level) > 1 {
		level = hashLevel(level)
	}
	return level[0]
}

// hashLevel produces the parent level. Consecutive pairs combine with
// HashPair and a trailing unpaired digest is carried up unchanged, never
// hashed with itself. Proof generation depends on this exact carry rule.
func hashLevel(level [][]byte) [][]byte {
	next := make([][]byte, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 == len(level) {
			next = append(next, level[i])
			continue
		}
		next = append(next, hashing.HashPair(level[i], level[i+1]))
	}
	return next
}
