package cluster

import "sort"

// Style distinguishes the two edge shapes of spec.md §3: a pairwise match
// between two samples, or a pool edge recording targets shared jointly by
// three or more samples.
type Style string

const (
	StyleMatch Style = "match"
	StylePool  Style = "pool"
)

// Edge is a candidate sample group and the targets its samples share
// (spec.md §3). Samples and TargetIDs are held as ordered sets: insertion
// order is the order the fields were parsed in, which is what the
// recovery-set walk (spec.md §4.4) and deterministic tie-breaks (spec.md
// §4.5) require.
type Edge struct {
	Style       Style
	ClusterSize int
	Samples     *orderedSet
	TargetIDs   *orderedSet

	// index is this edge's row position in its input, as numbered by the
	// caller of NewEdge. It is the tie-break for the recovery-set walk (spec.md §4.4: "tie-broken
	// by edge insertion order").
	index int
}

// NewEdge builds an Edge from its parsed fields and validates it against
// weights, per spec.md §3's invariants:
//
//   - every sample in samples appears in weights
//   - style = pool implies clusterSize >= 3
//   - style = match implies clusterSize = 2 and clusterSize equals
//     len(samples)
//
// clusterSize is only required to equal len(samples) for match edges: a
// pool edge's cluster_size tags the arity the edge was generated for and
// is used as-is by the candidate-shape filter (spec.md §4.4), independent
// of how many samples its row happens to list — pool rows whose sample
// set is larger than their declared cluster_size exist precisely to
// contribute targets to a larger candidate's union without becoming a
// candidate themselves (spec.md §9's pool-edge open question; see
// DESIGN.md).
//
// index is the edge's row position in its input, as numbered by the
// caller (internal/table's ReadEdges numbers data rows from 1), echoed in
// any MalformedEdgeError.
func NewEdge(style Style, clusterSize int, samples, targetIDs []string, weights Weights, index int) (Edge, error) {
	sampleSet := newOrderedSet()
	for _, s := range samples {
		if !sampleSet.add(s) {
			return Edge{}, &MalformedEdgeError{Row: index, Reason: "duplicate sample " + s + " in samples"}
		}
	}
	if style == StyleMatch && sampleSet.len() != clusterSize {
		return Edge{}, &MalformedEdgeError{
			Row:    index,
			Reason: "cluster_size disagrees with |samples|",
		}
	}
	for _, s := range samples {
		if _, ok := weights.Size(s); !ok {
			return Edge{}, &MalformedEdgeError{
				Row:    index,
				Reason: "sample " + s + " is absent from the weights table",
			}
		}
	}
	switch style {
	case StyleMatch:
		if clusterSize != 2 {
			return Edge{}, &MalformedEdgeError{Row: index, Reason: "style=match requires cluster_size=2"}
		}
	case StylePool:
		if clusterSize < 3 {
			return Edge{}, &MalformedEdgeError{Row: index, Reason: "style=pool requires cluster_size>=3"}
		}
	default:
		return Edge{}, &MalformedEdgeError{Row: index, Reason: "unrecognised style " + string(style)}
	}

	targetSet := newOrderedSet()
	for _, t := range targetIDs {
		targetSet.add(t)
	}

	return Edge{
		Style:       style,
		ClusterSize: clusterSize,
		Samples:     sampleSet,
		TargetIDs:   targetSet,
		index:       index,
	}, nil
}

// subsetOf reports whether every sample of e appears in samples.
func (e Edge) subsetOf(samples *orderedSet) bool {
	for _, s := range e.Samples.slice() {
		if !samples.has(s) {
			return false
		}
	}
	return true
}

// touches reports whether at least one sample of e appears in samples.
func (e Edge) touches(samples *orderedSet) bool {
	for _, s := range e.Samples.slice() {
		if samples.has(s) {
			return true
		}
	}
	return false
}

// sortedSamples returns e's samples in ascending lexicographic order.
func (e Edge) sortedSamples() []string {
	out := append([]string(nil), e.Samples.slice()...)
	sort.Strings(out)
	return out
}

// SortedSamples exposes e's samples, sorted lexicographically, to callers
// outside the package (internal/table's writer, spec.md §6's
// elusive_edges column 3).
func (e Edge) SortedSamples() []string {
	return e.sortedSamples()
}

// SortedTargetIDs returns e's target identifiers, sorted lexicographically,
// for callers outside the package that need to echo them back
// (internal/table's writer).
func (e Edge) SortedTargetIDs() []string {
	out := append([]string(nil), e.TargetIDs.slice()...)
	sort.Strings(out)
	return out
}
