package gsp

import (
	"github.com/patternminer/gsp/internal/indexset"
	"github.com/projectdiscovery/gologger"
)

// generateCandidates builds the level-k candidates from the level-(k-1)
// frequent index, using the level-2 special case or the general join for
// k >= 3. n is the dataset size, used to early-discard a candidate whose
// possible-containment set already cannot meet minsup.
func generateCandidates(freq *frequentIndex, k int, n int, minsup float64, verbose bool) []*pattern {
	if verbose {
		gologger.Verbose().Msgf("generating candidate %d-sequences", k)
	}
	if k == 2 {
		return generateLevel2(freq, n, minsup, verbose)
	}
	return generateLevelK(freq, k, n, minsup, verbose)
}

// generateLevel2 pairs every 1-pattern with every other 1-pattern
// (including itself), emitting up to three 2-patterns per distinct pair:
// [[e1],[e2]], [[e2],[e1]] and the merged single-element [[min,max]]. A
// same-event pair only yields the two-element [[e],[e]].
func generateLevel2(freq *frequentIndex, n int, minsup float64, verbose bool) []*pattern {
	ones := freq.all()
	var out []*pattern

	emit := func(elements Sequence, indices *indexset.Set) {
		out = append(out, newPattern(elements, indices))
		if verbose {
			gologger.Verbose().Msgf("candidate: %v", elements)
		}
	}

	for i := 0; i < len(ones); i++ {
		for j := i; j < len(ones); j++ {
			p, q := ones[i], ones[j]
			e1, e2 := p.elements.FirstEvent(), q.elements.FirstEvent()

			var joined *indexset.Set
			if e1 == e2 {
				// Same-event pair: no new information over p, but each
				// pattern owns its index set, so clone rather than alias.
				joined = p.indices.Clone()
			} else {
				joined = p.indices.Intersect(q.indices)
				if float64(joined.Len())/float64(n) < minsup {
					continue
				}
			}

			emit(Sequence{Element{e1}, Element{e2}}, joined)

			if e1 != e2 {
				emit(Sequence{Element{e2}, Element{e1}}, joined.Clone())

				var merged Element
				if e1 < e2 {
					merged = Element{e1, e2}
				} else {
					merged = Element{e2, e1}
				}
				emit(Sequence{merged}, joined.Clone())
			}
		}
	}
	return out
}

// generateLevelK builds k-patterns (k >= 3) by joining each frequent
// (k-1)-pattern p with the patterns keyed by p's second event, checking
// join compatibility (skipped at k == 3, where it is always satisfied) and
// appending the last event of the matching q's last element to a clone of
// p's elements.
func generateLevelK(freq *frequentIndex, k int, n int, minsup float64, verbose bool) []*pattern {
	var out []*pattern
	for _, p := range freq.all() {
		secondEvent, startingElem := secondEventOf(p.elements)

		bucket, ok := freq.bucket(secondEvent)
		if !ok {
			continue
		}

		for _, q := range bucket {
			if k != 3 && !checkMergeable(p.elements, q.elements, startingElem) {
				continue
			}

			joined := p.indices.Intersect(q.indices)
			if float64(joined.Len())/float64(n) < minsup {
				continue
			}

			newElements := p.elements.Clone()
			lastElem := q.elements[len(q.elements)-1]
			if len(lastElem) == 1 {
				newElements = append(newElements, lastElem.Clone())
			} else {
				lastIdx := len(newElements) - 1
				newElements[lastIdx] = append(newElements[lastIdx].Clone(), lastElem[len(lastElem)-1])
			}

			out = append(out, newPattern(newElements, joined))
			if verbose {
				gologger.Verbose().Msgf("candidate: %v", newElements)
			}
		}
	}
	return out
}

// secondEventOf returns a pattern's second event in reading order — the
// first element's second event if that element has >= 2 events, otherwise
// the second element's first event — plus the index of the element it was
// taken from (needed by checkMergeable).
func secondEventOf(s Sequence) (Event, int) {
	if len(s[0]) > 1 {
		return s[0][1], 0
	}
	return s[1][0], 1
}

// checkMergeable decides join compatibility: p (join-keyed at
// startingElem) and q can be merged iff dropping p's leading event at
// startingElem yields the same element-list as dropping q's trailing
// event.
func checkMergeable(p, q Sequence, startingElem int) bool {
	if len(p) == 1 && len(q) == 1 {
		return elementEqualSlice(p[0], 1, len(p[0]), q[0], 0, len(q[0])-1)
	}

	start := 0
	if startingElem == 0 {
		if !elementEqualSlice(p[0], 1, len(p[0]), q[0], 0, len(q[0])) {
			return false
		}
		start = 1
	}

	for i := start; i < len(q)-1; i++ {
		if !p[i+startingElem].Equal(q[i]) {
			return false
		}
	}

	if last := q[len(q)-1]; len(last) > 1 {
		if !p[len(p)-1].Equal(last[:len(last)-1]) {
			return false
		}
	}

	return true
}

// elementEqualSlice compares p[pFrom:pTo] against q[qFrom:qTo] for equality.
func elementEqualSlice(p Element, pFrom, pTo int, q Element, qFrom, qTo int) bool {
	pTail := p[pFrom:pTo]
	qTail := q[qFrom:qTo]
	if len(pTail) != len(qTail) {
		return false
	}
	for i := range pTail {
		if pTail[i] != qTail[i] {
			return false
		}
	}
	return true
}
