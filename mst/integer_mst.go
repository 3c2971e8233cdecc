package mst

import (
	"sort"

	"github.com/arborist-net/mstnet/graph"
)

// solveIntegerMST runs the same Borůvka round structure as solveBoruvka but
// partitions each round's edges into weight buckets first, exploiting the
// integer weight domain the way a radix-sort pass would. Correctness is
// identical to solveBoruvka; only the scan order differs.
func solveIntegerMST(g *graph.Graph) *graph.Graph {
	return runBoruvkaFamily(g, selectRoundCandidatesBucketed)
}

func selectRoundCandidatesBucketed(edges []graph.Triple, d *dsu) map[int]boruvkaCandidate {
	buckets := make(map[int32][]graph.Triple)
	for _, e := range edges {
		buckets[e.W] = append(buckets[e.W], e)
	}
	weights := make([]int32, 0, len(buckets))
	for w := range buckets {
		weights = append(weights, w)
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })

	best := make(map[int]boruvkaCandidate)
	for _, w := range weights {
		for _, e := range buckets[w] {
			ru, rv := d.find(e.U), d.find(e.V)
			if ru == rv {
				continue
			}
			cu := best[ru]
			cu.consider(e, e.V)
			best[ru] = cu

			cv := best[rv]
			cv.consider(e, e.U)
			best[rv] = cv
		}
	}
	return best
}
