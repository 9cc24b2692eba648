package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclusionProofRoundTrip(t *testing.T) {
	tree := New()
	key := key16(0x2a)
	require.NoError(t, tree.Insert(key, []byte("value")))

	proof, err := tree.InclusionProof(key)
	require.NoError(t, err)
	require.Len(t, proof, Depth)

	ok, err := tree.VerifyProof(key, []byte("value"), proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInclusionProofIsKeyIndependent(t *testing.T) {
	// With no persisted branches every sibling is a default node, so the
	// audit path does not depend on the key at all.
	tree := New()
	a, err := tree.InclusionProof(key16(0x00))
	require.NoError(t, err)
	b, err := tree.InclusionProof(key16(0xff))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInclusionProofRejectsBadKeyLength(t *testing.T) {
	tree := New()
	_, err := tree.InclusionProof([]byte("not sixteen"))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestVerifyProofRejectsWrongKey(t *testing.T) {
	tree := New()
	key := key16(0x01)
	require.NoError(t, tree.Insert(key, []byte("value")))

	proof, err := tree.InclusionProof(key)
	require.NoError(t, err)

	other := key16(0x01)
	other[7] ^= 0x10
	ok, err := tree.VerifyProof(other, []byte("value"), proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyProofRejectsWrongValue(t *testing.T) {
	tree := New()
	key := key16(0x01)
	require.NoError(t, tree.Insert(key, []byte("value")))

	proof, err := tree.InclusionProof(key)
	require.NoError(t, err)

	ok, err := tree.VerifyProof(key, []byte("wrong value"), proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyProofAbsenceAgainstFreshTree(t *testing.T) {
	// A nil value starts the fold from the empty leaf default, which must
	// reproduce the all empty root for any key.
	tree := New()
	for _, fill := range []byte{0x00, 0x55, 0xff} {
		proof, err := tree.InclusionProof(key16(fill))
		require.NoError(t, err)
		ok, err := tree.VerifyProof(key16(fill), nil, proof)
		require.NoError(t, err)
		assert.True(t, ok, "fill %#x", fill)
	}
}

func TestVerifyProofAbsenceFailsAfterInsert(t *testing.T) {
	tree := New()
	key := key16(0x03)
	require.NoError(t, tree.Insert(key, []byte("value")))

	proof, err := tree.InclusionProof(key)
	require.NoError(t, err)
	ok, err := tree.VerifyProof(key, nil, proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyProofRejectsCorruptEntry(t *testing.T) {
	tree := New()
	key := key16(0x2a)
	require.NoError(t, tree.Insert(key, []byte("value")))

	proof, err := tree.InclusionProof(key)
	require.NoError(t, err)

	proof[Depth/2][0] ^= 0x01
	ok, err := tree.VerifyProof(key, []byte("value"), proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyProofRejectsBadLengths(t *testing.T) {
	tree := New()
	key := key16(0x2a)
	proof, err := tree.InclusionProof(key)
	require.NoError(t, err)

	_, err = tree.VerifyProof([]byte("short"), []byte("value"), proof)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = tree.VerifyProof(key, []byte("value"), proof[:Depth-1])
	assert.ErrorIs(t, err, ErrBadProofLength)
}
