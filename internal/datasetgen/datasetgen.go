// Package datasetgen generates synthetic sequence datasets for exercising
// or benchmarking the mining engine, mirroring the shape (if not the exact
// sampling) of a hand-written test fixture: each sequence gets a random
// number of elements, each element a random, duplicate-free set of events.
package datasetgen

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/patternminer/gsp/gsp"
)

// Options configures the generator.
type Options struct {
	// Size is the number of sequences to generate.
	Size int
	// NumEvents is the number of distinct events available to draw from
	// (events are numbered 1..NumEvents unless Items supplies labels).
	NumEvents int
	// MaxEvents bounds how many events a single element may contain.
	MaxEvents int
	// MaxElems bounds how many elements a single sequence may contain.
	MaxElems int
	// Seed fixes the random source for reproducible output. Nil seeds the
	// source from the current time.
	Seed *int64
	// Items optionally supplies the event vocabulary, one label per line;
	// sorted ascending, and the first NumEvents labels are assigned dense
	// ids 1..NumEvents before generation, same as a pre-built dictionary.
	// Must contain at least NumEvents entries.
	Items []string
}

// ErrTooFewItems is returned when Items has fewer entries than NumEvents.
var ErrTooFewItems = fmt.Errorf("datasetgen: fewer items than requested events")

// Vocabulary resolves a generated event id back to its label. It is nil
// (and Token always reports not-found) when Options.Items was not set.
type Vocabulary map[gsp.Event]string

// Token implements serialize.TokenLookup.
func (v Vocabulary) Token(e gsp.Event) (string, bool) {
	if v == nil {
		return "", false
	}
	t, ok := v[e]
	return t, ok
}

// Generate produces a random dataset per opts.
func Generate(opts Options) (gsp.Dataset, Vocabulary, error) {
	var vocab Vocabulary
	if opts.Items != nil {
		if len(opts.Items) < opts.NumEvents {
			return nil, nil, ErrTooFewItems
		}
		items := append([]string(nil), opts.Items...)
		sort.Strings(items)
		vocab = make(Vocabulary, opts.NumEvents)
		for i := 0; i < opts.NumEvents; i++ {
			vocab[gsp.Event(i+1)] = items[i]
		}
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	ds := make(gsp.Dataset, 0, opts.Size)
	for i := 0; i < opts.Size; i++ {
		numElems := 1 + rng.Intn(opts.MaxElems)
		sequence := make(gsp.Sequence, 0, numElems)
		for j := 0; j < numElems; j++ {
			numEvents := 1 + rng.Intn(opts.MaxEvents)
			events := make([]gsp.Event, numEvents)
			for k := range events {
				events[k] = gsp.Event(1 + rng.Intn(opts.NumEvents))
			}
			sequence = append(sequence, gsp.NewElement(events...))
		}
		ds = append(ds, sequence)
	}

	return ds, vocab, nil
}
