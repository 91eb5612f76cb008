package gsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewElementDedupesAndSorts(t *testing.T) {
	e := NewElement(3, 1, 3, 2)
	require.EqualValues(t, Element{1, 2, 3}, e)
}

func TestElementSubset(t *testing.T) {
	require.True(t, Element{1, 3}.Subset(Element{1, 2, 3, 4}))
	require.False(t, Element{1, 5}.Subset(Element{1, 2, 3, 4}))
	require.True(t, Element{}.Subset(Element{1, 2}))
}

func TestSequenceEqual(t *testing.T) {
	a := Sequence{Element{1}, Element{2, 3}}
	b := Sequence{Element{1}, Element{2, 3}}
	c := Sequence{Element{1}, Element{2, 4}}
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestSequenceK(t *testing.T) {
	s := Sequence{Element{1}, Element{2, 3}, Element{4}}
	require.EqualValues(t, 4, s.K())
}

func TestSequenceCloneIsIndependent(t *testing.T) {
	s := Sequence{Element{1, 2}}
	clone := s.Clone()
	clone[0][0] = 99
	require.EqualValues(t, Event(1), s[0][0])
}

func TestFrequentIndexPreservesInsertionOrder(t *testing.T) {
	f := newFrequentIndex()
	f.add(newPattern(Sequence{Element{3}}, nil))
	f.add(newPattern(Sequence{Element{1}}, nil))
	f.add(newPattern(Sequence{Element{3}}, nil))

	all := f.all()
	require.Len(t, all, 3)
	require.EqualValues(t, Event(3), all[0].elements.FirstEvent())
	require.EqualValues(t, Event(3), all[1].elements.FirstEvent())
	require.EqualValues(t, Event(1), all[2].elements.FirstEvent())
}
