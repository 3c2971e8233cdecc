package mst

import (
	"sort"

	"github.com/arborist-net/mstnet/graph"
)

// solveKruskal sorts all edges by ascending (weight, u, v), admits an edge
// iff its endpoints lie in different components, and stops after n-1
// admissions. Fewer admissions at the end means the graph is disconnected.
func solveKruskal(g *graph.Graph) *graph.Graph {
	n := g.NumVertices()
	if n == 0 {
		return Empty()
	}
	if n == 1 {
		return buildTree(1, nil)
	}

	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].W != edges[j].W {
			return edges[i].W < edges[j].W
		}
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	d := newDSU(n)
	var mst []graph.Triple
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		if d.union(e.U, e.V) {
			mst = append(mst, e)
			if len(mst) == n-1 {
				break
			}
		}
	}

	if len(mst) < n-1 {
		return Empty()
	}
	return buildTree(n, mst)
}
