// Package indexset implements the possible-containment index set used to
// over-approximate which dataset sequences a pattern may be contained in.
package indexset

import "sort"

// Set is an ascending, duplicate-free slice of dataset indices. It is the
// concrete representation of a pattern's possible-containment set I: an
// over-approximation of the dataset indices the pattern may be contained in,
// monotonically narrowed as levels progress. A sorted slice keeps
// intersection and narrowing cheap without pulling in a disk-backed store,
// which the mining core has no use for (datasets are in-memory only).
type Set struct {
	indices []int
}

// New builds a Set from the given indices, deduplicating and sorting them.
func New(indices ...int) *Set {
	s := &Set{indices: append([]int(nil), indices...)}
	sort.Ints(s.indices)
	s.indices = compact(s.indices)
	return s
}

func compact(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{indices: append([]int(nil), s.indices...)}
}

// Len reports the number of indices currently in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.indices)
}

// Contains reports whether idx is a member of the set.
func (s *Set) Contains(idx int) bool {
	i := sort.SearchInts(s.indices, idx)
	return i < len(s.indices) && s.indices[i] == idx
}

// Remove drops idx from the set, if present.
func (s *Set) Remove(idx int) {
	i := sort.SearchInts(s.indices, idx)
	if i < len(s.indices) && s.indices[i] == idx {
		s.indices = append(s.indices[:i], s.indices[i+1:]...)
	}
}

// Intersect returns a new Set holding the indices present in both s and
// other, via a linear sorted-merge — the default recommended for the many
// small-to-medium index sets the generator produces.
func (s *Set) Intersect(other *Set) *Set {
	out := &Set{indices: make([]int, 0, min(len(s.indices), len(other.indices)))}
	i, j := 0, 0
	for i < len(s.indices) && j < len(other.indices) {
		switch {
		case s.indices[i] == other.indices[j]:
			out.indices = append(out.indices, s.indices[i])
			i++
			j++
		case s.indices[i] < other.indices[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// Slice returns the ascending indices currently held by the set. The caller
// must not mutate the returned slice.
func (s *Set) Slice() []int {
	return s.indices
}
