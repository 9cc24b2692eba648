package smt

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-merklecommit/hashing"
)

const (
	// Depth is the fixed number of branching levels between the root and
	// the leaf tier, one per key bit.
	Depth = 128

	// KeyBytes is the exact key width. Depth bits.
	KeyBytes = 16
)

var (
	ErrInvalidKeyLength = errors.New("smt: key must be exactly 16 bytes")
	ErrBadProofLength   = errors.New("smt: proof must hold one sibling per level")
)

// Tree is a fixed depth sparse merkle tree. The defaults table is built
// once by New and never mutated; root is rewritten by Insert.
type Tree struct {
	root     []byte
	defaults [][]byte
}

// New precomputes the empty subtree digest for every height and roots the
// tree at the all empty commitment.
func New() *Tree {
	defaults := make([][]byte, Depth+1)
	defaults[Depth] = hashing.HashLeaf(make([]byte, hashing.Bytes))
	for i := Depth - 1; i >= 0; i-- {
		defaults[i] = hashing.HashPair(defaults[i+1], defaults[i+1])
	}
	return &Tree{root: defaults[0], defaults: defaults}
}

// Root returns the current commitment.
func (t *Tree) Root() []byte {
	return append([]byte(nil), t.root...)
}

// Insert rewrites the root with value stored under key. The sibling at each
// level is the empty subtree default for that height, so the resulting root
// commits to key as the only non default leaf; earlier inserts are not
// carried forward (see the package documentation). The root is untouched
// when the key is rejected.
func (t *Tree) Insert(key, value []byte) error {
	if len(key) != KeyBytes {
		return fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}

	current := hashing.HashLeaf(value)
	for i := Depth - 1; i >= 0; i-- {
		sibling := t.defaults[i+1]
		if keyBit(key, i) {
			current = hashing.HashPair(sibling, current)
		} else {
			current = hashing.HashPair(current, sibling)
		}
	}
	t.root = current
	return nil
}
