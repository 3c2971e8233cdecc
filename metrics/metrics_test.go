package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborist-net/mstnet/graph"
	"github.com/arborist-net/mstnet/metrics"
)

// buildChain builds the path 0-1-2-3-4 with the given weights, so depth and
// weighted diameter are unambiguous.
func buildChain(weights ...int32) *graph.Graph {
	g := graph.New(len(weights) + 1)
	for i, w := range weights {
		g.AddEdge(i, i+1, w)
	}
	return g
}

func TestTotalWeight(t *testing.T) {
	g := buildChain(1, 2, 3)
	assert.EqualValues(t, 6, metrics.TotalWeight(g))
}

func TestDepthPathOnChain(t *testing.T) {
	g := buildChain(1, 1, 1, 1)
	assert.Equal(t, "0->1->2->3->4", metrics.DepthPath(g))
}

func TestDepthPathOnEmptyMST(t *testing.T) {
	g := graph.New(0)
	assert.Equal(t, "", metrics.DepthPath(g))
}

func TestHeaviestAndLightestEdge(t *testing.T) {
	g := buildChain(5, 1, 9, 3)
	assert.Equal(t, "Vertex 2 <----(9)----> Vertex 3", metrics.HeaviestEdge(g))
	assert.Equal(t, "Vertex 1 <----(1)----> Vertex 2", metrics.LightestEdge(g))
}

func TestHeaviestPath(t *testing.T) {
	g := buildChain(5, 1, 9, 3)
	assert.Equal(t, "Heaviest path: 4 --(3)--> 3 --(9)--> 2 --(1)--> 1 --(5)--> 0", metrics.HeaviestPath(g))
}

func TestHeaviestPathOnEmptyMST(t *testing.T) {
	g := graph.New(0)
	assert.Equal(t, "Empty graph", metrics.HeaviestPath(g))
}

func TestAverageDistance(t *testing.T) {
	g := buildChain(1, 1, 1)
	// pairwise distances: (0,1)=1 (0,2)=2 (0,3)=3 (1,2)=1 (1,3)=2 (2,3)=1
	// sum=10, count=6
	assert.InDelta(t, 10.0/6.0, metrics.AverageDistance(g), 1e-9)
}

func TestPathBetweenVertices(t *testing.T) {
	g := buildChain(1, 1, 1, 1)
	assert.Equal(t, "0->1->2->3", metrics.Path(g, 0, 3))
	assert.Equal(t, "3->2->1->0", metrics.Path(g, 3, 0))
	assert.Equal(t, "2", metrics.Path(g, 2, 2))
}

func TestPathOutOfRangeOrDisconnected(t *testing.T) {
	g := graph.New(3)
	g.AddEdge(0, 1, 1)
	assert.Equal(t, "no path exists", metrics.Path(g, 0, 2))
	assert.Equal(t, "no path exists", metrics.Path(g, 0, 9))
}
