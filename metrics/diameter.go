package metrics

import (
	"strconv"
	"strings"

	"github.com/arborist-net/mstnet/graph"
)

// farthestFrom runs a DFS from start over t, accumulating distance along
// each edge according to weigh (1 for an edge-count sweep, the edge's
// weight for a weighted sweep). It returns the farthest node reached and
// the parent of every visited node, for path reconstruction by the caller.
func farthestFrom(t *graph.Graph, start int, weigh func(w int32) int64) (farthest int, parent []int) {
	n := t.NumVertices()
	visited := make([]bool, n)
	distance := make([]int64, n)
	parent = make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	farthest = start
	maxDistance := int64(0)

	type frame struct{ node int }
	stack := []frame{{start}}
	visited[start] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range t.Neighbors(cur.node) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			parent[e.To] = cur.node
			distance[e.To] = distance[cur.node] + weigh(e.Weight)
			if distance[e.To] > maxDistance {
				maxDistance = distance[e.To]
				farthest = e.To
			}
			stack = append(stack, frame{e.To})
		}
	}
	return farthest, parent
}

// DepthPath is the longest path in t by edge count, found with two DFS
// sweeps: a is the node farthest from vertex 0, then b is the node farthest
// from a. Returns "b->...->a" (so a chain rooted at 0 reads from 0); the
// empty MST sentinel yields "".
func DepthPath(t *graph.Graph) string {
	if t.NumVertices() == 0 {
		return ""
	}

	countEdges := func(int32) int64 { return 1 }
	start, _ := farthestFrom(t, 0, countEdges)
	end, parent := farthestFrom(t, start, countEdges)

	var path []int
	for v := end; v != -1; v = parent[v] {
		path = append(path, v)
	}

	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "->")
}

// HeaviestPath is the weighted diameter of t: the path whose summed edge
// weights are maximal, found with two DFS sweeps (farthest-from-0, then
// farthest-from-that) using edge weight as distance. Unlike DepthPath this
// reports the path in sweep order, starting at the node farthest from
// vertex 0 and ending at the node farthest from that one. Rendered as
// "Heaviest path: a --(w)--> b --(w)--> ... --> z".
func HeaviestPath(t *graph.Graph) string {
	if t.NumVertices() == 0 {
		return "Empty graph"
	}

	weighByEdge := func(w int32) int64 { return int64(w) }
	start, _ := farthestFrom(t, 0, weighByEdge)
	end, parent := farthestFrom(t, start, weighByEdge)

	var path []int
	for v := end; v != -1; v = parent[v] {
		path = append(path, v)
	}
	reverse(path)

	var b strings.Builder
	b.WriteString("Heaviest path: ")
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		w := edgeWeight(t, u, v)
		b.WriteString(strconv.Itoa(u))
		b.WriteString(" --(")
		b.WriteString(strconv.Itoa(int(w)))
		b.WriteString(")--> ")
	}
	b.WriteString(strconv.Itoa(end))
	return b.String()
}

func edgeWeight(t *graph.Graph, u, v int) int32 {
	for _, e := range t.Neighbors(u) {
		if e.To == v {
			return e.Weight
		}
	}
	return 0
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
