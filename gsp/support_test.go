package gsp

import (
	"testing"

	"github.com/patternminer/gsp/internal/indexset"
	"github.com/stretchr/testify/require"
)

func TestCountSupportNarrowsAndFilters(t *testing.T) {
	ds := Dataset{
		seq(Element{1}, Element{2}),
		seq(Element{1}, Element{3}),
		seq(Element{1}),
	}
	// candidate [[1],[2]] possibly contained in all three per its index set,
	// but only actually contained in sequence 0.
	cand := newPattern(seq(Element{1}, Element{2}), indexset.New(0, 1, 2))
	opts := NewOptions(0.2)

	freq := countSupport([]*pattern{cand}, ds, opts)
	require.False(t, freq.empty())
	bucket, ok := freq.bucket(Event(1))
	require.True(t, ok)
	require.Len(t, bucket, 1)
	require.EqualValues(t, 1, bucket[0].indices.Len())
}

func TestCountSupportDropsBelowMinsup(t *testing.T) {
	ds := Dataset{
		seq(Element{1}, Element{2}),
		seq(Element{1}),
	}
	cand := newPattern(seq(Element{1}, Element{2}), indexset.New(0, 1))
	opts := NewOptions(0.75)

	freq := countSupport([]*pattern{cand}, ds, opts)
	require.True(t, freq.empty())
}
