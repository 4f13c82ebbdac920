package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedSetAddAndHas(t *testing.T) {
	s := newOrderedSet()
	assert.True(t, s.add("a"))
	assert.True(t, s.add("b"))
	assert.False(t, s.add("a"))
	assert.True(t, s.has("a"))
	assert.False(t, s.has("z"))
	assert.Equal(t, 2, s.len())
	assert.Equal(t, []string{"a", "b"}, s.slice())
}

func TestOrderedSetUnionPreservesInsertionOrder(t *testing.T) {
	a := newOrderedSet()
	a.add("x")
	a.add("y")
	b := newOrderedSet()
	b.add("y")
	b.add("z")

	u := a.union(b)
	assert.Equal(t, []string{"x", "y", "z"}, u.slice())
}

func TestOrderedSetIntersectCount(t *testing.T) {
	a := newOrderedSet()
	for _, v := range []string{"1", "2", "3"} {
		a.add(v)
	}
	b := newOrderedSet()
	for _, v := range []string{"2", "3", "4"} {
		b.add(v)
	}
	assert.Equal(t, 2, a.intersectCount(b))
	assert.Equal(t, 2, b.intersectCount(a))
}
