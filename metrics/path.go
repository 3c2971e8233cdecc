package metrics

import (
	"strconv"
	"strings"

	"github.com/arborist-net/mstnet/graph"
)

// noPathText is returned by Path when u and v are not connected in t —
// either t is the empty sentinel or u and v lie in different components
// of a tree that does not actually span every vertex.
const noPathText = "no path exists"

// Path reconstructs the unique path between u and v in the tree t via a DFS
// from u, returning "u->...->v". Out-of-range endpoints or an unreachable v
// yield noPathText.
func Path(t *graph.Graph, u, v int) string {
	n := t.NumVertices()
	if u < 0 || u >= n || v < 0 || v >= n {
		return noPathText
	}
	if u == v {
		return strconv.Itoa(u)
	}

	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	visited[u] = true
	stack := []int{u}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == v {
			break
		}
		for _, e := range t.Neighbors(cur) {
			if !visited[e.To] {
				visited[e.To] = true
				parent[e.To] = cur
				stack = append(stack, e.To)
			}
		}
	}

	if !visited[v] {
		return noPathText
	}

	var path []int
	for at := v; at != -1; at = parent[at] {
		path = append(path, at)
	}
	reverse(path)

	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "->")
}
