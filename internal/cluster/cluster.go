package cluster

import (
	"sort"
	"strconv"
)

// Cluster is a Candidate that survived greedy selection, plus its
// synthesised coassembly identifier (spec.md §3, §4.6).
type Cluster struct {
	Samples        []Sample
	Length         int
	TotalTargets   int
	TotalSize      int64
	RecoverSamples []Sample
	Coassembly     string
}

// Materialize concatenates the selected candidates of every component,
// stably sorts the merged list by the same key Select used within each
// component, and assigns coassembly_<k> identifiers in the resulting
// emission order (spec.md §4.6). Because the merged list is sorted
// candidate by candidate, the rows of different components interleave by
// that key; a component's selections are not kept together as a block.
func Materialize(selected [][]Candidate) []Cluster {
	var all []Candidate
	for _, s := range selected {
		all = append(all, s...)
	}
	sortCandidates(all)

	clusters := make([]Cluster, len(all))
	for i, c := range all {
		samples := append([]Sample(nil), c.Samples...)
		sort.Strings(samples)
		clusters[i] = Cluster{
			Samples:        samples,
			Length:         len(c.Samples),
			TotalTargets:   c.TotalTargets,
			TotalSize:      c.TotalSize,
			RecoverSamples: c.RecoverSamples,
			Coassembly:     coassemblyID(i),
		}
	}
	return clusters
}

func coassemblyID(k int) string {
	return "coassembly_" + strconv.Itoa(k)
}
