package cluster

// Sample is a sequencing sample identifier. Samples are created once from
// the read_size input table (spec.md §3, §6) and are immutable thereafter.
type Sample = string

// Weights maps a sample identifier to its read size, the cost used for the
// per-coassembly size budget (spec.md §3, §4.2). Lookup is O(1). A sample
// present here but referenced by no edge is a valid entry; it simply never
// participates in any cluster.
type Weights map[Sample]int64

// Size returns the read size for sample, and whether it is known.
func (w Weights) Size(sample Sample) (int64, bool) {
	size, ok := w[sample]
	return size, ok
}

// Total sums the read size of every sample in samples. Every sample must
// already be known to w; callers validate this via Edge construction
// (spec.md §3's invariant that every edge sample appears in the weights
// table).
func (w Weights) Total(samples []Sample) int64 {
	var total int64
	for _, s := range samples {
		total += w[s]
	}
	return total
}
