package smt

/*

Package smt implements a fixed depth sparse merkle tree keyed by 16 byte
keys. The tree is 128 levels deep, one level per key bit, and commits to a
value by folding its leaf digest up the key's branch path.

# Default nodes

A sparse tree is almost entirely empty, so the digest of an empty subtree at
each height is precomputed once at construction:

	defaults[Depth] = H(zero leaf)
	defaults[i]     = H(defaults[i+1] || defaults[i+1])

The table has Depth+1 entries and is immutable for the lifetime of the tree.
A fresh tree is rooted at defaults[0], the all empty commitment.

# Path derivation

Bit i of a key is bit i%8 of byte key[i/8], so key[0] carries bits 0..7 with
its least significant bit as bit 0. Insertion folds from the leaf tier
upward, level 127 first: when bit i is clear the carried digest is the left
operand, when set it is the right operand.

# No branch persistence

The sibling used at every level is always the empty subtree default for that
height. Previously inserted branches are never stored or retrieved, so each
insert produces the root of a tree in which the inserted key is the only non
default leaf. The root therefore commits to the single most recent insert,
not to the accumulated key set. Proofs are correspondingly key independent:
the audit path for any key is the default table itself, read leaf tier
first. Conventional multi key semantics would require a key addressed node
store persisting the sibling along each inserted path; this package
deliberately does not provide that.

*/
