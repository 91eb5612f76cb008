package gsp

// containedUnconstrained decides whether pattern c is contained in dataset
// sequence s with no time constraints (maxgap = Unbounded, mingap = 0,
// maxspan = Unbounded): scan s left to right with a cursor into c starting
// at 0, advancing whenever the current c-element is a subset of the current
// s-element; true once every c-element has been consumed.
func containedUnconstrained(c Sequence, s Sequence) bool {
	j := 0
	for _, sElem := range s {
		if j == len(c) {
			break
		}
		if c[j].Subset(sElem) {
			j++
		}
	}
	return j == len(c)
}

// containedWithTimeConstraints decides containment under mingap/maxgap/
// maxspan. For each candidate starting position in s where c's first
// element matches, it runs a forward phase with one step of backward
// memory: on a maxgap violation it retries the immediately preceding match
// one position later, restoring the gap recorded at that point; it never
// backs up further than that (matching the classical GSP formulation).
func containedWithTimeConstraints(c Sequence, s Sequence, maxgap, mingap, maxspan int) bool {
	for start, sElem := range s {
		if !c[0].Subset(sElem) {
			continue
		}

		gap := 0
		j := 1
		i := start + 1
		lastFound := 0
		lastGap := 0

		for i < len(s) && j < len(c) {
			gap++

			if i-start > maxspan {
				break
			}

			if gap > maxgap {
				if j == 1 {
					break
				}
				j--
				i = lastFound + 1
				gap = lastGap
				continue
			}

			if c[j].Subset(s[i]) && gap > mingap {
				lastFound = i
				lastGap = gap
				gap = 0
				j++
			}
			i++
		}

		if j == len(c) {
			return true
		}
	}
	return false
}

// contains resolves to the unconstrained or time-constrained variant once,
// based on whether any time constraint is actually in effect.
func contains(c Sequence, s Sequence, opts Options) bool {
	if opts.MaxGap == Unbounded && opts.MinGap == 0 && opts.MaxSpan == Unbounded {
		return containedUnconstrained(c, s)
	}
	return containedWithTimeConstraints(c, s, opts.MaxGap, opts.MinGap, opts.MaxSpan)
}
