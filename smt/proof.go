package smt

import (
	"bytes"
	"fmt"

	"github.com/forestrie/go-merklecommit/hashing"
)

// InclusionProof returns the audit path for key: the sibling digest at each
// of the Depth levels, leaf tier first. Because no branch is ever
// persisted every sibling is an empty subtree default, and the path is
// identical for every key.
func (t *Tree) InclusionProof(key []byte) ([][]byte, error) {
	if len(key) != KeyBytes {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}

	proof := make([][]byte, 0, Depth)
	for i := Depth - 1; i >= 0; i-- {
		proof = append(proof, append([]byte(nil), t.defaults[i+1]...))
	}
	return proof, nil
}

// VerifyProof folds the audit path along key's branch path and compares the
// result with the stored root. A nil value proves absence, starting the
// fold from the empty leaf default; a non nil value proves membership,
// starting from its leaf digest. The proof must hold exactly one sibling
// per level, leaf tier first.
func (t *Tree) VerifyProof(key, value []byte, proof [][]byte) (bool, error) {
	if len(key) != KeyBytes {
		return false, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}
	if len(proof) != Depth {
		return false, fmt.Errorf("%w: got %d", ErrBadProofLength, len(proof))
	}

	current := t.defaults[Depth]
	if value != nil {
		current = hashing.HashLeaf(value)
	}
	for i := Depth - 1; i >= 0; i-- {
		sibling := proof[Depth-1-i]
		if keyBit(key, i) {
			current = hashing.HashPair(sibling, current)
		} else {
			current = hashing.HashPair(current, sibling)
		}
	}
	return bytes.Equal(current, t.root), nil
}
