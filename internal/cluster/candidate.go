package cluster

import (
	"sort"
	"strings"
)

// Candidate is a derived, not persisted, candidate coassembly (spec.md
// §3). It is produced by GenerateCandidates and consumed by Select.
type Candidate struct {
	// Samples is the ordered tuple of sample identifiers making up the
	// coassembly, in the order the originating edge (or bud) presented
	// them.
	Samples []Sample
	samples *orderedSet

	Targets *orderedSet

	// RecoverSamples is computed last, after the candidate survives the
	// size filter, since it is relatively expensive and oversized
	// candidates are discarded before selection (spec.md §4.4).
	RecoverSamples []Sample

	TotalSize    int64
	TotalTargets int

	// sortKey is the sorted, comma-joined sample list used as the
	// lexicographic tie-break in Select (spec.md §4.5).
	sortKey string
}

// GenerateCandidates produces every candidate coassembly for component
// that satisfies the coassembly-size bounds of cfg (spec.md §4.4).
func GenerateCandidates(component Component, weights Weights, cfg Config) []Candidate {
	var candidates []Candidate
	seen := make(map[string]bool)

	for _, e := range component.Edges {
		if e.ClusterSize < cfg.MinCoassemblySamples || e.ClusterSize > cfg.MaxCoassemblySamples {
			continue
		}
		key := sortedJoin(e.Samples.slice())
		if seen[key] {
			continue
		}
		seen[key] = true

		targets := newOrderedSet()
		for _, other := range component.Edges {
			if other.subsetOf(e.Samples) {
				targets = targets.union(other.TargetIDs)
			}
		}
		candidates = append(candidates, newCandidate(e.Samples.slice(), targets, weights))
	}

	if cfg.MinCoassemblySamples == 1 {
		for _, s := range component.Samples {
			if seen[s] {
				continue
			}
			seen[s] = true

			targets := newOrderedSet()
			single := newOrderedSet()
			single.add(s)
			for _, other := range component.Edges {
				if other.touches(single) {
					targets = targets.union(other.TargetIDs)
				}
			}
			candidates = append(candidates, newCandidate([]Sample{s}, targets, weights))
		}
	}

	out := candidates[:0]
	for _, c := range candidates {
		if cfg.MaxCoassemblySize != nil && c.TotalSize > *cfg.MaxCoassemblySize {
			continue
		}
		c.RecoverSamples = recoverSamples(c.samples, c.Targets, component.Edges, cfg.MaxRecoverySamples)
		out = append(out, c)
	}
	return out
}

func newCandidate(samples []Sample, targets *orderedSet, weights Weights) Candidate {
	set := newOrderedSet()
	for _, s := range samples {
		set.add(s)
	}
	return Candidate{
		Samples:      samples,
		samples:      set,
		Targets:      targets,
		TotalSize:    weights.Total(samples),
		TotalTargets: targets.len(),
		sortKey:      sortedJoin(samples),
	}
}

// recoverSamples builds the recovery set for a candidate with sample set
// samples and target set targets, per spec.md §4.4: starting from
// samples, edges touching the candidate are walked in decreasing order of
// how many of the candidate's targets they contribute (ties broken by
// edge insertion order), adding each edge's remaining samples until max
// is reached. The result is emitted sorted lexicographically.
func recoverSamples(samples *orderedSet, targets *orderedSet, edges []Edge, max int) []Sample {
	recover := newOrderedSet()
	for _, s := range samples.slice() {
		recover.add(s)
	}
	if recover.len() >= max {
		return sortedSlice(recover)
	}

	type scored struct {
		edge  Edge
		score int
	}
	var touching []scored
	for _, e := range edges {
		if e.touches(samples) {
			touching = append(touching, scored{edge: e, score: e.TargetIDs.intersectCount(targets)})
		}
	}
	sort.SliceStable(touching, func(i, j int) bool {
		if touching[i].score != touching[j].score {
			return touching[i].score > touching[j].score
		}
		return touching[i].edge.index < touching[j].edge.index
	})

	for _, sc := range touching {
		if recover.len() >= max {
			break
		}
		for _, s := range sc.edge.Samples.slice() {
			if recover.len() >= max {
				break
			}
			recover.add(s)
		}
	}
	return sortedSlice(recover)
}

func sortedSlice(s *orderedSet) []string {
	out := append([]string(nil), s.slice()...)
	sort.Strings(out)
	return out
}

func sortedJoin(samples []string) string {
	return strings.Join(sortedSlice2(samples), ",")
}

func sortedSlice2(samples []string) []string {
	out := append([]string(nil), samples...)
	sort.Strings(out)
	return out
}
