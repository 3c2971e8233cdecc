package metrics

import (
	"math"

	"github.com/arborist-net/mstnet/graph"
)

const unreachable = math.MaxInt64

// AverageDistance runs Floyd-Warshall over t and returns the mean shortest
// distance across every unordered reachable pair {i,j}, i<j. On a tree
// every pair is reachable unless t is disconnected (the 0-vertex
// sentinel), so this mirrors the teacher's matrix/ops/floyd_warshal.go
// triple loop over a flat distance matrix instead of a *graph.Graph.
func AverageDistance(t *graph.Graph) float64 {
	n := t.NumVertices()
	if n == 0 {
		return 0
	}

	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = unreachable
			}
		}
	}
	for i := 0; i < n; i++ {
		for _, e := range t.Neighbors(i) {
			dist[i][e.To] = int64(e.Weight)
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == unreachable {
					continue
				}
				if via := dist[i][k] + dist[k][j]; via < dist[i][j] {
					dist[i][j] = via
				}
			}
		}
	}

	var sum int64
	var count int64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dist[i][j] != unreachable {
				sum += dist[i][j]
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
