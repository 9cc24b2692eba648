package merkle

/*

Package merkle commits to a fixed, ordered batch of items with a binary
merkle tree and produces per leaf inclusion proofs against the resulting
root.

The level reduction rule is deliberately asymmetric: consecutive pairs
combine as H(left || right), and a trailing unpaired digest is carried up to
the next level unchanged. It is never re-hashed with itself. Proof
generation re-materializes every level with the same rule, so a proof for
any leaf of any batch size folds back to the root with no knowledge of the
batch beyond the leaf digest itself.

For the four item batch [a, b, c, d] the root is

	        root
	       /    \
	     ab      cd
	    /  \    /  \
	  H(a) H(b) H(c) H(d)

	root = H( H(H(a)||H(b)) || H(H(c)||H(d)) )

and for the three item batch [a, b, c] the unpaired H(c) carries up twice
before pairing with ab at the top:

	        root = H( ab || H(c) )
	       /    \
	     ab     H(c)
	    /  \      |
	  H(a) H(b) H(c)

The tree is immutable once constructed; there is no append and no storage
interface. Callers wanting an append only commitment should use the mmr
package instead.

*/
