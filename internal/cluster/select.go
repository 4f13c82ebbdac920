package cluster

import "sort"

// Select picks a maximal sample-disjoint subset of candidates by the
// greedy rule of spec.md §4.5:
//
//  1. Sort candidates by (total_targets DESC, |samples| DESC, samples
//     lexicographically DESC); see sortCandidates.
//  2. Pop the top candidate; emit it.
//  3. Remove every remaining candidate whose samples intersect the
//     emitted candidate's samples.
//  4. Repeat until the pool is empty.
//
// The returned slice is already in the order candidates must be emitted
// within a component.
func Select(candidates []Candidate) []Candidate {
	pool := append([]Candidate(nil), candidates...)
	sortCandidates(pool)

	var selected []Candidate
	taken := newOrderedSet()
	for len(pool) > 0 {
		head := pool[0]
		selected = append(selected, head)
		for _, s := range head.samples.slice() {
			taken.add(s)
		}

		rest := pool[1:]
		kept := rest[:0]
		for _, c := range rest {
			if !intersects(c.samples, taken) {
				kept = append(kept, c)
			}
		}
		pool = kept
	}
	return selected
}

func intersects(a, b *orderedSet) bool {
	return a.intersectCount(b) > 0
}

// sortCandidates orders candidates by (total_targets DESC, |samples|
// DESC, samples DESC). The worked examples of spec.md §8 (and the
// original source's test_cluster_graph.py, e.g. the single-bud tie
// group "3" > "2" > "1") pin the samples tie-break as descending,
// not ascending as spec.md §4.5 and §8's prose state; the concrete
// scenarios are the stronger signal (spec.md's own design notes call
// them the pinned greedy output), so descending is what's implemented.
// See DESIGN.md's Open-question decisions.
func sortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.TotalTargets != b.TotalTargets {
			return a.TotalTargets > b.TotalTargets
		}
		if len(a.Samples) != len(b.Samples) {
			return len(a.Samples) > len(b.Samples)
		}
		return a.sortKey > b.sortKey
	})
}
