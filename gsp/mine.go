package gsp

import (
	"github.com/patternminer/gsp/internal/indexset"
	"github.com/projectdiscovery/gologger"
)

// Mine runs the full level-wise GSP loop over ds (generate, prune, count,
// emit) and returns every frequent pattern found, ordered by level and then
// by first-event bucket insertion order.
func Mine(ds Dataset, opts Options) ([]MinedPattern, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := len(ds)
	freq := initialFrequentIndex(ds, opts)

	var results []MinedPattern
	appendLevel(&results, freq)

	for k := 2; !freq.empty() && k <= opts.MaxK; k++ {
		candidates := generateCandidates(freq, k, n, opts.MinSup, opts.Verbose)
		candidates = pruneCandidates(candidates, freq, opts.MaxGap, opts.Verbose)
		freq = countSupport(candidates, ds, opts)
		appendLevel(&results, freq)
	}

	return results, nil
}

func appendLevel(results *[]MinedPattern, freq *frequentIndex) {
	for _, p := range freq.all() {
		*results = append(*results, MinedPattern{Pattern: p.elements, Support: p.indices.Len()})
	}
}

// initialFrequentIndex seeds level 1 directly from the dataset: every
// distinct event occurring anywhere in a sequence becomes a candidate
// 1-pattern [[event]], whose index set is every sequence it occurs in at
// least once. Frequent ones are kept in first-occurrence order.
func initialFrequentIndex(ds Dataset, opts Options) *frequentIndex {
	occurrences := make(map[Event][]int)
	var order []Event

	for i, seq := range ds {
		seen := make(map[Event]struct{})
		for _, elem := range seq {
			for _, e := range elem {
				if _, ok := seen[e]; ok {
					continue
				}
				seen[e] = struct{}{}
				if _, known := occurrences[e]; !known {
					order = append(order, e)
				}
				occurrences[e] = append(occurrences[e], i)
			}
		}
	}

	freq := newFrequentIndex()
	n := len(ds)
	for _, e := range order {
		hits := occurrences[e]
		support := len(hits)
		seq := Sequence{Element{e}}
		if float64(support)/float64(n) < opts.MinSup {
			if opts.Verbose {
				gologger.Verbose().Msgf("below minsup, discarding: %v (support=%d)", seq, support)
			}
			continue
		}
		freq.add(newPattern(seq, indexset.New(hits...)))
		if opts.Verbose {
			gologger.Verbose().Msgf("frequent: %v (support=%d)", seq, support)
		}
	}
	return freq
}
