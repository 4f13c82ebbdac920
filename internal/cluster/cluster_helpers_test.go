package cluster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// row is a row of the elusive_edges input table (spec.md §6), written out
// longhand in tests the way the original Python test suite
// (_examples/original_source/test/test_cluster_graph.py) lays out its
// fixtures.
type row struct {
	style       Style
	clusterSize int
	samples     string
	targets     string
}

func buildEdges(t *testing.T, weights Weights, rows []row) []Edge {
	t.Helper()
	edges := make([]Edge, 0, len(rows))
	for i, r := range rows {
		e, err := NewEdge(r.style, r.clusterSize, split(r.samples), split(r.targets), weights, i)
		require.NoError(t, err)
		edges = append(edges, e)
	}
	return edges
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func sameWeight(samples []string, size int64) Weights {
	w := make(Weights, len(samples))
	for _, s := range samples {
		w[s] = size
	}
	return w
}
