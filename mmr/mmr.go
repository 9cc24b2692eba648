package mmr

import (
	"errors"
)

var (
	ErrBagSizeTooSmall = errors.New("mmr: bag size must be at least 2")
)

// MMR is an append only accumulator over a range of merkle subtree peaks.
//
// peaks is indexed by subtree height. A nil slot records that no subtree is
// currently rooted at that height; digests are always 32 bytes, so presence
// is never ambiguous. leaves retains every appended leaf digest for audit
// and is not consulted by the root or bagging computations.
type MMR struct {
	peaks   [][]byte
	leaves  [][]byte
	bagSize int
}

// New returns an empty range. bagSize fixes the width of the bagging window
// for the lifetime of the range and must be at least 2.
func New(bagSize int) (*MMR, error) {
	if bagSize < 2 {
		return nil, ErrBagSizeTooSmall
	}
	return &MMR{bagSize: bagSize}, nil
}

// LeafCount returns the number of leaves appended so far.
func (r *MMR) LeafCount() uint64 {
	return uint64(len(r.leaves))
}

// LeafHashes returns copies of the appended leaf digests in append order.
func (r *MMR) LeafHashes() [][]byte {
	leaves := make([][]byte, len(r.leaves))
	for i, leaf := range r.leaves {
		leaves[i] = append([]byte(nil), leaf...)
	}
	return leaves
}

// PeakCount returns the number of occupied peak slots.
func (r *MMR) PeakCount() int {
	count := 0
	for _, peak := range r.peaks {
		if peak != nil {
			count++
		}
	}
	return count
}

// PeakHashes returns copies of the occupied peaks in ascending height
// order.
func (r *MMR) PeakHashes() [][]byte {
	var peaks [][]byte
	for _, peak := range r.peaks {
		if peak == nil {
			continue
		}
		peaks = append(peaks, append([]byte(nil), peak...))
	}
	return peaks
}
