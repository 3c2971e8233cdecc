package mst

import (
	"container/heap"

	"github.com/arborist-net/mstnet/graph"
)

// tarjanEntry is one heap element: a crossing edge together with the far
// endpoint used for the (weight, other_endpoint) tie-break.
type tarjanEntry struct {
	edge  graph.Triple
	other int
}

type tarjanHeap []tarjanEntry

func (h tarjanHeap) Len() int { return len(h) }
func (h tarjanHeap) Less(i, j int) bool {
	if h[i].edge.W != h[j].edge.W {
		return h[i].edge.W < h[j].edge.W
	}
	return h[i].other < h[j].other
}
func (h tarjanHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *tarjanHeap) Push(x interface{}) { *h = append(*h, x.(tarjanEntry)) }
func (h *tarjanHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// solveTarjan runs the same Borůvka round structure as solveBoruvka, but
// selects each round's per-component candidate from a min-heap of that
// component's crossing edges instead of a linear scan.
func solveTarjan(g *graph.Graph) *graph.Graph {
	return runBoruvkaFamily(g, selectRoundCandidatesHeap)
}

func selectRoundCandidatesHeap(edges []graph.Triple, d *dsu) map[int]boruvkaCandidate {
	heaps := make(map[int]*tarjanHeap)
	for _, e := range edges {
		ru, rv := d.find(e.U), d.find(e.V)
		if ru == rv {
			continue
		}
		pushInto(heaps, ru, tarjanEntry{edge: e, other: e.V})
		pushInto(heaps, rv, tarjanEntry{edge: e, other: e.U})
	}

	best := make(map[int]boruvkaCandidate)
	for root, h := range heaps {
		heap.Init(h)
		for h.Len() > 0 {
			top := heap.Pop(h).(tarjanEntry)
			if d.find(top.edge.U) == d.find(top.edge.V) {
				continue
			}
			best[root] = boruvkaCandidate{has: true, edge: top.edge, weight: top.edge.W, other: top.other}
			break
		}
	}
	return best
}

func pushInto(heaps map[int]*tarjanHeap, root int, entry tarjanEntry) {
	h, ok := heaps[root]
	if !ok {
		h = &tarjanHeap{}
		heaps[root] = h
	}
	*h = append(*h, entry)
}
