package datasetgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRespectsSizeAndBounds(t *testing.T) {
	seed := int64(42)
	opts := Options{Size: 10, NumEvents: 5, MaxEvents: 3, MaxElems: 4, Seed: &seed}

	ds, vocab, err := Generate(opts)
	require.Nil(t, err)
	require.Nil(t, vocab)
	require.Len(t, ds, 10)

	for _, sequence := range ds {
		require.LessOrEqual(t, len(sequence), opts.MaxElems)
		require.GreaterOrEqual(t, len(sequence), 1)
		for _, elem := range sequence {
			require.LessOrEqual(t, len(elem), opts.MaxEvents)
			require.GreaterOrEqual(t, len(elem), 1)
			for _, e := range elem {
				require.GreaterOrEqual(t, int(e), 1)
				require.LessOrEqual(t, int(e), opts.NumEvents)
			}
		}
	}
}

func TestGenerateIsReproducibleWithSameSeed(t *testing.T) {
	seed := int64(7)
	opts := Options{Size: 20, NumEvents: 6, MaxEvents: 3, MaxElems: 3, Seed: &seed}

	a, _, err := Generate(opts)
	require.Nil(t, err)
	b, _, err := Generate(opts)
	require.Nil(t, err)
	require.EqualValues(t, a, b)
}

func TestGenerateWithItemsBuildsVocabulary(t *testing.T) {
	seed := int64(1)
	opts := Options{
		Size: 5, NumEvents: 3, MaxEvents: 2, MaxElems: 2, Seed: &seed,
		Items: []string{"charlie", "alpha", "bravo"},
	}

	_, vocab, err := Generate(opts)
	require.Nil(t, err)
	require.Len(t, vocab, 3)
	token, ok := vocab.Token(1)
	require.True(t, ok)
	require.Equal(t, "alpha", token)
}

func TestGenerateTooFewItems(t *testing.T) {
	opts := Options{Size: 1, NumEvents: 5, MaxEvents: 1, MaxElems: 1, Items: []string{"a", "b"}}
	_, _, err := Generate(opts)
	require.ErrorIs(t, err, ErrTooFewItems)
}
