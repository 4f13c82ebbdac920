package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPicksHighestTargetsFirst(t *testing.T) {
	weights := sameWeight([]string{"1", "2", "3", "4"}, 1)
	a := newCandidate([]Sample{"1", "2"}, setOf("x", "y"), weights)
	b := newCandidate([]Sample{"3", "4"}, setOf("x"), weights)

	selected := Select([]Candidate{b, a})
	require.Len(t, selected, 2)
	assert.Equal(t, []Sample{"1", "2"}, selected[0].Samples)
	assert.Equal(t, []Sample{"3", "4"}, selected[1].Samples)
}

func TestSelectDropsIntersectingCandidatesAfterEmission(t *testing.T) {
	weights := sameWeight([]string{"1", "2", "3"}, 1)
	winner := newCandidate([]Sample{"1", "2"}, setOf("x", "y", "z"), weights)
	overlapping := newCandidate([]Sample{"2", "3"}, setOf("x"), weights)

	selected := Select([]Candidate{overlapping, winner})
	require.Len(t, selected, 1)
	assert.Equal(t, []Sample{"1", "2"}, selected[0].Samples)
}

func TestSelectBudTieBreakIsDescending(t *testing.T) {
	// Grounded in the original source's test_cluster_single_bud fixture:
	// among same-size, same-target-count bud candidates, the one with
	// the lexicographically greatest sample id wins the tie (DESIGN.md).
	weights := sameWeight([]string{"1", "2", "3", "4"}, 1)
	one := newCandidate([]Sample{"1"}, setOf("t"), weights)
	two := newCandidate([]Sample{"2"}, setOf("t"), weights)
	three := newCandidate([]Sample{"3"}, setOf("t"), weights)
	four := newCandidate([]Sample{"4"}, setOf("t"), weights)

	selected := Select([]Candidate{one, two, three, four})
	require.Len(t, selected, 4)
	assert.Equal(t, []Sample{"4"}, selected[0].Samples, "highest sample id must win the tie")
	assert.Equal(t, []Sample{"3"}, selected[1].Samples)
	assert.Equal(t, []Sample{"2"}, selected[2].Samples)
	assert.Equal(t, []Sample{"1"}, selected[3].Samples)
}

func setOf(values ...string) *orderedSet {
	s := newOrderedSet()
	for _, v := range values {
		s.add(v)
	}
	return s
}
