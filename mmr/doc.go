package mmr

/*

Package mmr implements an append only merkle mountain range accumulator
with a windowed peak bagging scheme.

# Peaks and carry merging

The range maintains a sparse array of peaks indexed by subtree height. A
peak at height h is the root of a perfect binary subtree over 2^h
consecutive leaves. Appending a leaf carries it up through the occupied low
slots exactly like binary increment:

	height 0 occupied -> merge, clear, ascend
	height 1 occupied -> merge, clear, ascend
	...
	first free slot   -> write the carried digest

each merge hashing the existing peak on the left and the carried digest on
the right. So for the first four appends the peak array evolves as

	[a]  ->  [_, ab]  ->  [c, ab]  ->  [_, _, abcd]

# Bagging

After every append a window of bagSize adjacent slots slides across the
peak array from height 0 upward. Whenever every slot in the window is
occupied, the concatenation of the window's digests, lowest height first,
is hashed into the window's first slot and the remaining slots are cleared.
The scan always advances one slot at a time, so a compaction can feed the
window that follows it.

This is not the canonical "bag all peaks into one accumulator" fold: it
only fires when a full window of adjacent occupied slots exists, and for
some bag sizes and append counts several live peaks remain long term. The
windowed behavior, including its left to right scan and clear on success,
is part of the commitment and must not be replaced with the canonical fold.

Note that a compacted digest no longer corresponds to a perfect subtree of
the leaf sequence, so peak heights after bagging are positional only.

# Root

The root folds the occupied peaks from the highest slot down: the highest
peak seeds the accumulator and each lower peak folds in as
H(peak || accumulator). An empty range has a nil root.

# Proofs

There is no per leaf inclusion proof for the range. The leaf log is
retained for audit but nothing recomputes a leaf's path to the root; proof
support is future scope, not an omission to paper over.

*/
