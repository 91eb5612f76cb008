package gsp

import "github.com/projectdiscovery/gologger"

// countSupport narrows each candidate's possible-containment index set down
// to the dataset indices it is actually contained in, keeping only the
// candidates whose narrowed support still meets minsup. Survivors are
// inserted into a fresh frequentIndex for the next level; the rest are
// dropped along with their (now unreachable) index sets.
func countSupport(candidates []*pattern, ds Dataset, opts Options) *frequentIndex {
	freq := newFrequentIndex()
	n := len(ds)

	for _, cand := range candidates {
		// Snapshot the indices before narrowing: Remove mutates the set's
		// backing slice in place, which would corrupt an in-progress range
		// over the live slice.
		probe := append([]int(nil), cand.indices.Slice()...)
		for _, idx := range probe {
			if !contains(cand.elements, ds[idx], opts) {
				cand.indices.Remove(idx)
			}
		}

		support := cand.indices.Len()
		if float64(support)/float64(n) < opts.MinSup {
			if opts.Verbose {
				gologger.Verbose().Msgf("below minsup, discarding: %v (support=%d)", cand.elements, support)
			}
			continue
		}

		if opts.Verbose {
			gologger.Verbose().Msgf("frequent: %v (support=%d)", cand.elements, support)
		}
		freq.add(cand)
	}

	return freq
}
