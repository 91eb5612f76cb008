// Package ingest parses the whitespace-delimited sequence dataset format:
// events are tokens, "-1" closes the current element, "-2" closes the
// current sequence. Tokens are assigned dense, first-seen-order integer
// event ids via a Dictionary.
package ingest

import (
	"bufio"
	"os"
	"strings"

	"github.com/patternminer/gsp/gsp"
	fileutil "github.com/projectdiscovery/utils/file"
)

const (
	tokenEndElement  = "-1"
	tokenEndSequence = "-2"
)

// Dictionary is the bijection between event tokens and the dense integer
// event ids gsp.Event works with internally.
type Dictionary struct {
	toEvent map[string]gsp.Event
	toToken map[gsp.Event]string
	next    gsp.Event
}

// NewDictionary returns an empty dictionary, ids starting at 1.
func NewDictionary() *Dictionary {
	return &Dictionary{toEvent: make(map[string]gsp.Event), toToken: make(map[gsp.Event]string), next: 1}
}

// Intern returns the event id for token, assigning a new one on first sight.
func (d *Dictionary) Intern(token string) gsp.Event {
	if e, ok := d.toEvent[token]; ok {
		return e
	}
	e := d.next
	d.next++
	d.toEvent[token] = e
	d.toToken[e] = token
	return e
}

// Token returns the original token an event id was assigned from.
func (d *Dictionary) Token(e gsp.Event) (string, bool) {
	t, ok := d.toToken[e]
	return t, ok
}

// Load parses the dataset at path. A missing file is not an error: it
// yields an empty dataset and dictionary, matching the no-partial-failure
// design (a run either mines the full dataset or fails before mining).
func Load(path string) (gsp.Dataset, *Dictionary, error) {
	dict := NewDictionary()
	if !fileutil.FileExists(path) {
		return gsp.Dataset{}, dict, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var dataset gsp.Dataset
	var sequence gsp.Sequence
	var events []gsp.Event

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			switch token {
			case tokenEndSequence:
				dataset = append(dataset, sequence)
				sequence = nil
				events = nil
			case tokenEndElement:
				if len(events) > 0 {
					sequence = append(sequence, gsp.NewElement(events...))
				}
				events = nil
			default:
				events = append(events, dict.Intern(token))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return dataset, dict, nil
}
