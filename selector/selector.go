// Package selector implements the redundancy-aware greedy selection
// core: given scored, vectorized candidates, it picks up to k
// sentences that are individually important and jointly diverse, then
// restores them to document order.
//
// Greedy score-first selection with permanent rejection trades global
// optimality for an O(k·n) similarity budget; an exhaustive diverse
// subset search would be combinatorial.
package selector

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/sumgo/distance"
)

// DefaultRedundancyThreshold is the cosine similarity above which a
// candidate counts as a near-duplicate of an already accepted one.
const DefaultRedundancyThreshold = 0.65

// Candidate is one scored sentence as seen by the selector. Position
// is the sentence's ordinal in the source document and must be unique
// within a batch.
type Candidate struct {
	Position int
	Score    float64
	Vector   []float32
}

// Selection is the outcome of one selector run. The zero value is an
// empty selection.
type Selection struct {
	// accepted holds candidate indices in acceptance (rank) order.
	accepted []int
	// positions tracks accepted document positions; iterating the
	// bitmap ascending restores document order.
	positions *roaring.Bitmap
	// byPosition maps a document position back to its candidate index.
	byPosition map[uint32]int
}

// Select runs the greedy redundancy-aware selection over candidates.
//
// Candidates are ranked by score descending with a stable tie-break
// (equal scores keep their input order, so reruns are reproducible).
// Walking the ranking, a candidate is accepted unless its maximum
// cosine similarity against every previously accepted vector exceeds
// threshold; rejection is permanent. Selection stops once k candidates
// are accepted or the ranking is exhausted. Fewer than k accepted
// sentences is a normal outcome for redundant inputs, never padded.
//
// k <= 0 yields an empty selection. A negative threshold falls back to
// DefaultRedundancyThreshold; an exact 0 is a real cutoff rejecting any
// candidate with positive similarity to an accepted one.
func Select(cands []Candidate, k int, threshold float64) Selection {
	if threshold < 0 {
		threshold = DefaultRedundancyThreshold
	}

	sel := Selection{
		positions:  roaring.New(),
		byPosition: make(map[uint32]int),
	}
	if k <= 0 || len(cands) == 0 {
		return sel
	}

	ranked := make([]int, len(cands))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return cands[ranked[a]].Score > cands[ranked[b]].Score
	})

	acceptedVectors := make([][]float32, 0, k)

	for _, idx := range ranked {
		if len(sel.accepted) >= k {
			break
		}

		if redundant(cands[idx].Vector, acceptedVectors, threshold) {
			continue
		}

		pos := uint32(cands[idx].Position)
		sel.accepted = append(sel.accepted, idx)
		sel.positions.Add(pos)
		sel.byPosition[pos] = idx
		acceptedVectors = append(acceptedVectors, cands[idx].Vector)
	}

	return sel
}

// redundant reports whether v is more similar than threshold to any
// accepted vector. Every accepted vector is checked, not just the
// nearest or most recent.
func redundant(v []float32, accepted [][]float32, threshold float64) bool {
	for _, a := range accepted {
		if float64(distance.Cosine(v, a)) > threshold {
			return true
		}
	}
	return false
}

// Size returns the number of accepted candidates.
func (s Selection) Size() int {
	return len(s.accepted)
}

// Indices returns accepted candidate indices in acceptance order
// (highest-ranked first).
func (s Selection) Indices() []int {
	out := make([]int, len(s.accepted))
	copy(out, s.accepted)
	return out
}

// InDocumentOrder returns accepted candidate indices sorted by
// original document position ascending, restoring narrative flow.
func (s Selection) InDocumentOrder() []int {
	if s.positions == nil {
		return nil
	}
	out := make([]int, 0, len(s.accepted))
	for _, pos := range s.positions.ToArray() {
		out = append(out, s.byPosition[pos])
	}
	return out
}

// Positions returns the accepted document positions ascending.
func (s Selection) Positions() []int {
	if s.positions == nil {
		return nil
	}
	out := make([]int, 0, int(s.positions.GetCardinality()))
	for _, pos := range s.positions.ToArray() {
		out = append(out, int(pos))
	}
	return out
}
