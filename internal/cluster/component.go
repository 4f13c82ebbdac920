package cluster

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Component is a maximal set of edges connected transitively through
// shared samples (spec.md §4.3, Glossary). Each component is solved
// independently by the candidate generator and greedy selector.
type Component struct {
	Samples []Sample
	Edges   []Edge
}

// FindComponents partitions edges into connected components where two
// edges are in the same component if their sample sets share at least
// one sample (spec.md §4.3).
//
// The grouping itself is delegated to
// gonum.org/v1/gonum/graph/topo.ConnectedComponents over a graph with one
// node per sample and, for each input Edge, a graph edge from its first
// sample to each of its other samples (a star, which connects the same
// samples as joining every co-occurring pair).
func FindComponents(edges []Edge) []Component {
	g := simple.NewUndirectedGraph()
	id := make(map[Sample]int64)
	sampleOf := make(map[int64]Sample)

	nodeFor := func(s Sample) int64 {
		if n, ok := id[s]; ok {
			return n
		}
		n := int64(len(id))
		id[s] = n
		sampleOf[n] = s
		g.AddNode(simple.Node(n))
		return n
	}

	for _, e := range edges {
		samples := e.Samples.slice()
		if len(samples) == 0 {
			continue
		}
		first := nodeFor(samples[0])
		for _, s := range samples[1:] {
			other := nodeFor(s)
			if !g.HasEdgeBetween(first, other) {
				g.SetEdge(simple.Edge{F: simple.Node(first), T: simple.Node(other)})
			}
		}
	}

	ccs := topo.ConnectedComponents(g)

	// representative maps a node ID to the index of its component in ccs.
	representative := make(map[int64]int, len(sampleOf))
	for i, nodes := range ccs {
		for _, n := range nodes {
			representative[n.ID()] = i
		}
	}

	components := make([]Component, len(ccs))
	for i, nodes := range ccs {
		samples := make([]Sample, 0, len(nodes))
		for _, n := range nodes {
			samples = append(samples, sampleOf[n.ID()])
		}
		sort.Strings(samples)
		components[i] = Component{Samples: samples}
	}

	for _, e := range edges {
		samples := e.Samples.slice()
		if len(samples) == 0 {
			continue
		}
		ci := representative[id[samples[0]]]
		components[ci].Edges = append(components[ci].Edges, e)
	}

	return components
}
