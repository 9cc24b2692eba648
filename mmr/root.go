package mmr

import (
	"encoding/hex"

	"github.com/forestrie/go-merklecommit/hashing"
)

// Root folds the occupied peaks from the highest slot down to a single
// digest: the highest peak seeds the accumulator and every lower occupied
// peak folds in as H(peak || accumulator). Returns nil while the range is
// empty.
func (r *MMR) Root() []byte {
	var accumulator []byte
	for i := len(r.peaks) - 1; i >= 0; i-- {
		peak := r.peaks[i]
		if peak == nil {
			continue
		}
		if accumulator == nil {
			accumulator = append([]byte(nil), peak...)
			continue
		}
		accumulator = hashing.HashPair(peak, accumulator)
	}
	return accumulator
}

// RootHex renders the root as lowercase hexadecimal for display and
// comparison. The empty range renders as "".
func (r *MMR) RootHex() string {
	return hex.EncodeToString(r.Root())
}
