// Package hashing provides the digest primitives shared by every commitment
// structure in this module: SHA-256 leaf hashing and positionless pair
// hashing. All digests are exactly Bytes wide and equality is byte exact.
package hashing

import (
	sha256 "github.com/minio/sha256-simd"
)

// Bytes is the fixed width of every digest produced by this package.
const Bytes = 32

// Hasher returns the SHA-256 digest of the concatenation of data.
func Hasher(data ...[]byte) []byte {
	hasher := sha256.New()
	for i := 0; i < len(data); i++ {
		hasher.Write(data[i])
	}
	return hasher.Sum(nil)
}

// HashLeaf maps an input item to its leaf digest, H(data).
func HashLeaf(data []byte) []byte {
	return Hasher(data)
}

// HashPair combines two nodes into their parent digest, H(left || right).
// The operands are concatenated directly, with no length prefix and no
// domain separation, so the pairing order is the only structure committed.
func HashPair(left, right []byte) []byte {
	return Hasher(left, right)
}
