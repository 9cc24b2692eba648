package mmr

import (
	"github.com/forestrie/go-merklecommit/hashing"
)

// Append hashes data into the range.
//
// The new leaf digest carries up through the occupied low peaks like a
// binary increment: each occupied slot merges as H(peak || carried) and is
// cleared, and the carried digest lands in the first free slot, growing the
// peak array when the carry tops out. The bagging pass then compacts any
// full windows of adjacent peaks.
func (r *MMR) Append(data []byte) {
	leaf := hashing.HashLeaf(data)
	r.leaves = append(r.leaves, leaf)

	current := leaf
	height := 0
	for height < len(r.peaks) && r.peaks[height] != nil {
		current = hashing.HashPair(r.peaks[height], current)
		r.peaks[height] = nil
		height++
	}
	if height == len(r.peaks) {
		r.peaks = append(r.peaks, current)
	} else {
		r.peaks[height] = current
	}

	r.bagPeaks()
}

// bagPeaks slides a window of bagSize slots across the peak array from
// height 0 upward. A window whose slots are all occupied is compacted: the
// concatenation of its digests, lowest height first, is hashed into the
// window's first slot and the remainder are cleared. The scan index always
// advances by one, never by the window width.
func (r *MMR) bagPeaks() {
	for i := 0; i+r.bagSize <= len(r.peaks); i++ {
		window := r.peaks[i : i+r.bagSize]
		full := true
		for _, peak := range window {
			if peak == nil {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		bagged := hashing.Hasher(window...)
		r.peaks[i] = bagged
		for j := 1; j < r.bagSize; j++ {
			r.peaks[i+j] = nil
		}
	}
}
