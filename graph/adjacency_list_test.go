package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddEdgeMirrorInvariant(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1, 5)

	assert.Len(t, g.Neighbors(0), 1)
	assert.Len(t, g.Neighbors(1), 1)
	assert.EqualValues(t, 5, g.Neighbors(0)[0].Weight)
	assert.Equal(t, 1, g.Neighbors(0)[0].To)
	assert.Equal(t, 0, g.Neighbors(1)[0].To)
}

func TestAddEdgeOutOfRangeIsSilentNoOp(t *testing.T) {
	g := New(2)
	g.AddEdge(0, 5, 1)
	g.AddEdge(-1, 0, 1)

	assert.Empty(t, g.Neighbors(0))
	assert.Zero(t, g.TotalWeight())
}

func TestRemoveEdge(t *testing.T) {
	g := New(2)
	g.AddEdge(0, 1, 2)
	g.RemoveEdge(0, 1)

	assert.Empty(t, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(1))
}

func TestRemoveEdgeAbsentIsNoOp(t *testing.T) {
	g := New(2)
	g.RemoveEdge(0, 1)
	assert.Empty(t, g.Neighbors(0))
}

func TestChangeWeightUpdatesAllParallelEdges(t *testing.T) {
	g := New(2)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 1, 2)
	g.ChangeWeight(0, 1, 9)

	for _, e := range g.Neighbors(0) {
		assert.EqualValues(t, 9, e.Weight)
	}
	for _, e := range g.Neighbors(1) {
		assert.EqualValues(t, 9, e.Weight)
	}
}

func TestTotalWeight(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 3)
	assert.EqualValues(t, 5, g.TotalWeight())
}

func TestEqualInsensitiveToInsertionOrder(t *testing.T) {
	a := New(3)
	a.AddEdge(0, 1, 2)
	a.AddEdge(1, 2, 3)

	b := New(3)
	b.AddEdge(1, 2, 3)
	b.AddEdge(0, 1, 2)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestEqualReflexiveSymmetricTransitive(t *testing.T) {
	a := New(2)
	a.AddEdge(0, 1, 4)
	b := a.Clone()
	c := b.Clone()

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))
}

func TestCloneIndependence(t *testing.T) {
	g := New(2)
	g.AddEdge(0, 1, 3)
	clone := g.Clone()

	g.ChangeWeight(0, 1, 42)

	assert.EqualValues(t, 3, clone.Neighbors(0)[0].Weight)
}

func TestEdgesDeduplicatesMirrorPairs(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 3)

	edges := g.Edges()
	assert.Len(t, edges, 2)
}

func TestAddEdgeRoundTripWithRemove(t *testing.T) {
	original := New(3)
	original.AddEdge(0, 1, 2)
	original.AddEdge(1, 2, 3)

	mutated := original.Clone()
	mutated.AddEdge(0, 2, 10)
	mutated.RemoveEdge(0, 2)

	assert.True(t, original.Equal(mutated))
}
