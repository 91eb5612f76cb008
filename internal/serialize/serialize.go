// Package serialize writes mined patterns to an io.Writer in the dataset's
// own token format: each element's events followed by "-1", and the whole
// pattern followed by its support count.
package serialize

import (
	"bufio"
	"fmt"
	"io"

	"github.com/patternminer/gsp/gsp"
	"github.com/patternminer/gsp/internal/ingest"
)

// TokenLookup resolves an event id back to its original token. *ingest.Dictionary
// satisfies it; a nil lookup falls back to the raw integer event id.
type TokenLookup interface {
	Token(e gsp.Event) (string, bool)
}

// Write serializes every mined pattern to w, one per line, in the order
// results is given (by level, then by first-event bucket insertion order,
// per the engine's emission order). dict resolves event ids back to their
// original tokens; pass nil to print raw integer ids instead.
func Write(w io.Writer, results []gsp.MinedPattern, dict TokenLookup) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0

	for _, r := range results {
		for _, elem := range r.Pattern {
			for _, e := range elem {
				if _, err := fmt.Fprintf(bw, "%s ", tokenOf(e, dict)); err != nil {
					return count, err
				}
			}
			if _, err := bw.WriteString("-1 "); err != nil {
				return count, err
			}
		}
		if _, err := fmt.Fprintf(bw, "#SUP: %d\n", r.Support); err != nil {
			return count, err
		}
		count++
	}

	return count, bw.Flush()
}

func tokenOf(e gsp.Event, dict TokenLookup) string {
	if dict == nil {
		return fmt.Sprintf("%d", e)
	}
	if token, ok := dict.Token(e); ok {
		return token
	}
	return fmt.Sprintf("%d", e)
}

var _ TokenLookup = (*ingest.Dictionary)(nil)
