package gsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainedUnconstrained(t *testing.T) {
	s := Sequence{Element{1}, Element{2, 3}, Element{4}}

	require.True(t, containedUnconstrained(Sequence{Element{1}, Element{4}}, s))
	require.True(t, containedUnconstrained(Sequence{Element{2, 3}}, s))
	require.False(t, containedUnconstrained(Sequence{Element{5}}, s))
	require.False(t, containedUnconstrained(Sequence{Element{4}, Element{1}}, s))
}

func TestContainedWithMaxGap(t *testing.T) {
	s := Sequence{Element{1}, Element{2}, Element{3}, Element{4}, Element{5}}
	c := Sequence{Element{1}, Element{5}}

	require.False(t, containedWithTimeConstraints(c, s, 2, 0, Unbounded))
	require.True(t, containedWithTimeConstraints(c, s, 4, 0, Unbounded))
}

func TestContainedWithMinGap(t *testing.T) {
	s := Sequence{Element{1}, Element{2}, Element{3}}
	c := Sequence{Element{1}, Element{2}}

	require.False(t, containedWithTimeConstraints(c, s, Unbounded, 1, Unbounded))
	require.True(t, containedWithTimeConstraints(c, s, Unbounded, 0, Unbounded))
}

func TestContainedWithMaxSpan(t *testing.T) {
	s := Sequence{Element{1}, Element{2}, Element{3}, Element{4}}
	c := Sequence{Element{1}, Element{4}}

	require.False(t, containedWithTimeConstraints(c, s, Unbounded, 0, 2))
	require.True(t, containedWithTimeConstraints(c, s, Unbounded, 0, 3))
}

func TestContainsDispatchesOnConstraints(t *testing.T) {
	s := Sequence{Element{1}, Element{2}, Element{3}}
	c := Sequence{Element{1}, Element{3}}

	plain := NewOptions(0.5)
	require.True(t, contains(c, s, plain))

	tight := NewOptions(0.5)
	tight.MaxGap = 0
	require.False(t, contains(c, s, tight))
}
