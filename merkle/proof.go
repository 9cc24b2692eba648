package merkle

import (
	"bytes"
	"fmt"

	"github.com/forestrie/go-merklecommit/hashing"
)

// ProofStep is one level of an inclusion path. Sibling is the digest the
// proven node pairs with at that level, and Left records that the proven
// node is the left operand of the pair hash.
type ProofStep struct {
	Sibling []byte
	Left    bool
}

// InclusionProof returns the path from leaf i to the root, one step per
// level at which the node has a sibling. A level where the node is the sole
// unpaired carry contributes no step, so proofs for odd shaped batches are
// shorter than the level count.
func (t *Tree) InclusionProof(i int) ([]ProofStep, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, fmt.Errorf("%w: index %d with %d leaves", ErrIndexOutOfRange, i, len(t.leaves))
	}

	var proof []ProofStep
	level := t.leaves
	for len(level) > 1 {
		iSibling := i ^ 1
		if iSibling < len(level) {
			sibling := append([]byte(nil), level[iSibling]...)
			proof = append(proof, ProofStep{Sibling: sibling, Left: i%2 == 0})
		}
		i /= 2
		level = hashLevel(level)
	}
	return proof, nil
}

// VerifyInclusion reports whether folding leafHash through proof reproduces
// root. Corrupting the leaf, the root or any single proof entry makes this
// false.
func VerifyInclusion(root, leafHash []byte, proof []ProofStep) bool {
	elementHash := leafHash
	for _, step := range proof {
		if step.Left {
			elementHash = hashing.HashPair(elementHash, step.Sibling)
		} else {
			elementHash = hashing.HashPair(step.Sibling, elementHash)
		}
	}
	return bytes.Equal(elementHash, root)
}
