package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeAssignsSequentialCoassemblyIDs(t *testing.T) {
	weights := sameWeight([]string{"1", "2", "3", "4"}, 1)
	high := newCandidate([]Sample{"1", "2"}, setOf("a", "b", "c"), weights)
	low := newCandidate([]Sample{"3", "4"}, setOf("a"), weights)

	clusters := Materialize([][]Candidate{{low}, {high}})
	require.Len(t, clusters, 2)
	assert.Equal(t, "coassembly_0", clusters[0].Coassembly)
	assert.Equal(t, []Sample{"1", "2"}, clusters[0].Samples)
	assert.Equal(t, "coassembly_1", clusters[1].Coassembly)
	assert.Equal(t, []Sample{"3", "4"}, clusters[1].Samples)
}

func TestMaterializeSortsSamplesWithinACluster(t *testing.T) {
	weights := sameWeight([]string{"5", "9"}, 1)
	c := newCandidate([]Sample{"9", "5"}, setOf("t"), weights)

	clusters := Materialize([][]Candidate{{c}})
	require.Len(t, clusters, 1)
	assert.Equal(t, []Sample{"5", "9"}, clusters[0].Samples)
}

func TestMaterializeEmptySelectionYieldsNoClusters(t *testing.T) {
	clusters := Materialize(nil)
	assert.Empty(t, clusters)
}

func TestMaterializeCopiesCandidateFields(t *testing.T) {
	weights := sameWeight([]string{"1", "2"}, 100)
	c := newCandidate([]Sample{"1", "2"}, setOf("a", "b"), weights)
	c.RecoverSamples = []Sample{"1", "2"}

	clusters := Materialize([][]Candidate{{c}})
	require.Len(t, clusters, 1)
	got := clusters[0]
	assert.Equal(t, 2, got.Length)
	assert.Equal(t, 2, got.TotalTargets)
	assert.Equal(t, int64(200), got.TotalSize)
	assert.Equal(t, []Sample{"1", "2"}, got.RecoverSamples)
}
