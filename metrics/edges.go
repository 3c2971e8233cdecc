package metrics

import (
	"fmt"

	"github.com/arborist-net/mstnet/graph"
)

// HeaviestEdge returns the maximum-weight edge in t, rendered as
// "Vertex u <----(w)----> Vertex v". Ties are broken by whichever edge is
// encountered first scanning vertices and their adjacency lists in order.
// An empty MST has no edges, so both endpoints come back as vertex -1.
func HeaviestEdge(t *graph.Graph) string {
	return scanExtremeEdge(t, func(candidate, best int32) bool { return candidate > best })
}

// LightestEdge returns the minimum-weight edge in t, same format and
// tie-break rule as HeaviestEdge.
func LightestEdge(t *graph.Graph) string {
	return scanExtremeEdge(t, func(candidate, best int32) bool { return candidate < best })
}

func scanExtremeEdge(t *graph.Graph, better func(candidate, best int32) bool) string {
	n := t.NumVertices()
	u, v := -1, -1
	var best int32
	found := false
	for i := 0; i < n; i++ {
		for _, e := range t.Neighbors(i) {
			if !found || better(e.Weight, best) {
				best = e.Weight
				u, v = i, e.To
				found = true
			}
		}
	}
	return fmt.Sprintf("Vertex %d <----(%d)----> Vertex %d", u, best, v)
}
