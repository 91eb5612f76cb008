package serialize

import (
	"bytes"
	"testing"

	"github.com/patternminer/gsp/gsp"
	"github.com/patternminer/gsp/internal/ingest"
	"github.com/stretchr/testify/require"
)

func TestWriteRawEvents(t *testing.T) {
	results := []gsp.MinedPattern{
		{Pattern: gsp.Sequence{gsp.Element{1, 2}, gsp.Element{3}}, Support: 2},
	}

	var buf bytes.Buffer
	n, err := Write(&buf, results, nil)
	require.Nil(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "1 2 -1 3 -1 #SUP: 2\n", buf.String())
}

func TestWriteResolvesTokens(t *testing.T) {
	dict := ingest.NewDictionary()
	a := dict.Intern("A")
	b := dict.Intern("B")

	results := []gsp.MinedPattern{
		{Pattern: gsp.Sequence{gsp.Element{a}, gsp.Element{b}}, Support: 1},
	}

	var buf bytes.Buffer
	_, err := Write(&buf, results, dict)
	require.Nil(t, err)
	require.Equal(t, "A -1 B -1 #SUP: 1\n", buf.String())
}
