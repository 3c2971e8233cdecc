package mst

import (
	"container/heap"

	"github.com/arborist-net/mstnet/graph"
)

// primEdge is one candidate crossing edge: from is implicit (the visited
// endpoint), to is the far endpoint the edge would add.
type primEdge struct {
	from, to int
	weight   int32
}

// primPQ implements heap.Interface for a min-heap of primEdge ordered by
// weight.
type primPQ []primEdge

func (pq primPQ) Len() int            { return len(pq) }
func (pq primPQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq primPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *primPQ) Push(x interface{}) { *pq = append(*pq, x.(primEdge)) }
func (pq *primPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}

// solvePrim grows a tree from vertex 0, per spec: repeatedly extract the
// minimum-weight crossing edge and add its far endpoint. A graph with no
// vertices or with fewer than n covered vertices at the end is disconnected.
func solvePrim(g *graph.Graph) *graph.Graph {
	n := g.NumVertices()
	if n == 0 {
		return Empty()
	}

	visited := make([]bool, n)
	visited[0] = true
	pq := &primPQ{}
	heap.Init(pq)
	for _, nb := range g.Neighbors(0) {
		if !visited[nb.To] {
			heap.Push(pq, primEdge{from: 0, to: nb.To, weight: nb.Weight})
		}
	}

	var edges []graph.Triple
	covered := 1
	for pq.Len() > 0 && covered < n {
		e := heap.Pop(pq).(primEdge)
		if visited[e.to] {
			continue
		}
		visited[e.to] = true
		covered++
		u, v := e.from, e.to
		if u > v {
			u, v = v, u
		}
		edges = append(edges, graph.Triple{U: u, V: v, W: e.weight})
		for _, nb := range g.Neighbors(e.to) {
			if !visited[nb.To] {
				heap.Push(pq, primEdge{from: e.to, to: nb.To, weight: nb.Weight})
			}
		}
	}

	if covered < n {
		return Empty()
	}
	return buildTree(n, edges)
}
