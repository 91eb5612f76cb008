package gsp

import "github.com/projectdiscovery/gologger"

// pruneCandidates removes every candidate that contains at least one
// infrequent (k-1)-subsequence. It selects the classical (Apriori) check or
// the maxgap-weakened contiguous-subsequence check once for the whole
// level, per the Design Notes' "resolve by selecting the implementation
// once at the start of a run" guidance.
func pruneCandidates(candidates []*pattern, freq *frequentIndex, maxgap int, verbose bool) []*pattern {
	if verbose {
		gologger.Verbose().Msg("pruning candidates")
	}

	check := pruneWithoutTimeConstraints
	if maxgap != Unbounded {
		check = pruneWithTimeConstraints
	}

	out := candidates[:0]
	for _, cand := range candidates {
		startingElem, startingEvent := 0, 1
		if len(cand.elements[0]) == 1 {
			startingElem, startingEvent = 1, 0
		}

		bucket, _ := freq.bucket(cand.elements.FirstEvent())
		if check(cand.elements, startingElem, startingEvent, bucket) {
			out = append(out, cand)
		} else if verbose {
			gologger.Verbose().Msgf("infrequent subsequence, pruning: %v", cand.elements)
		}
	}
	return out
}

// pruneWithoutTimeConstraints enumerates all single-event deletions of c,
// skipping the two that are always frequent by construction (dropping the
// first event of the first element, and the last event of the last
// element), and discards c if any other deletion is not a known frequent
// (k-1)-pattern.
func pruneWithoutTimeConstraints(c Sequence, startingElem, startingEvent int, bucket []*pattern) bool {
	lastElem := len(c)
	for currElem := startingElem; currElem < lastElem; currElem++ {
		lastEvent := len(c[currElem])
		for currEvent := startingEvent; currEvent < lastEvent; currEvent++ {
			if currElem == lastElem-1 && currEvent == lastEvent-1 {
				return true
			}
			sub := withoutEvent(c, currElem, currEvent, lastEvent == 1)
			if !bucketContains(bucket, sub) {
				return false
			}
		}
		startingEvent = 0
	}
	return true
}

// pruneWithTimeConstraints is the maxgap-weakened variant: it only checks
// contiguous subsequences, i.e. deletions that remove one event from an
// element of size >= 2, leaving the sequence element-aligned. Deletions
// that would collapse a size-1 element are skipped entirely rather than
// checked — the weaker pruning the maxgap case requires, per spec.
func pruneWithTimeConstraints(c Sequence, startingElem, startingEvent int, bucket []*pattern) bool {
	lastElem := len(c)
	for currElem := startingElem; currElem < lastElem; currElem++ {
		if len(c[currElem]) == 1 {
			continue
		}
		lastEvent := len(c[currElem])
		for currEvent := startingEvent; currEvent < lastEvent; currEvent++ {
			if currElem == lastElem-1 && currEvent == lastEvent-1 {
				return true
			}
			sub := withoutEvent(c, currElem, currEvent, false)
			if !bucketContains(bucket, sub) {
				return false
			}
		}
		startingEvent = 0
	}
	return true
}

// withoutEvent builds the transient subsequence obtained by deleting one
// event from c, leaving c itself untouched: a probe-only copy rather than
// the classical pop/reinsert, per the Design Notes' "fewer invariants to
// maintain" recommendation. wholeElement collapses the element entirely
// (it had only the one event being removed).
func withoutEvent(c Sequence, elemIdx, eventIdx int, wholeElement bool) Sequence {
	if wholeElement {
		out := make(Sequence, 0, len(c)-1)
		out = append(out, c[:elemIdx]...)
		out = append(out, c[elemIdx+1:]...)
		return out
	}
	out := make(Sequence, len(c))
	copy(out, c)
	elem := make(Element, 0, len(c[elemIdx])-1)
	elem = append(elem, c[elemIdx][:eventIdx]...)
	elem = append(elem, c[elemIdx][eventIdx+1:]...)
	out[elemIdx] = elem
	return out
}

// bucketContains reports whether sub structurally equals the elements of
// some pattern in bucket, i.e. whether sub is among the known frequent
// (k-1)-patterns sharing sub's first event.
func bucketContains(bucket []*pattern, sub Sequence) bool {
	for _, p := range bucket {
		if p.elements.Equal(sub) {
			return true
		}
	}
	return false
}
