// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trim

import (
	"container/heap"
	"math"

	"github.com/j6k4m8/igneous/skeleton"
	"gonum.org/v1/gonum/graph"
)

// shortestPath returns any shortest vertex path (by physical edge
// length) from u to v in g, using the coordinates in comp to weight
// edges. It implements Dijkstra's algorithm directly, in the style of
// gonum's graph/path.DijkstraFromTo, rather than calling that package:
// the weighted-graph contract DijkstraFromTo requires is not needed
// here since every edge weight is a deterministic function of the two
// endpoint vertices' coordinates, and a direct implementation keeps the
// single adjacency representation (skeleton.ToGraph's unweighted
// simple.UndirectedGraph) as the only graph value every pass mutates.
//
// shortestPath panics if v is unreachable from u; callers in this
// package only ever invoke it with endpoints already known to lie in
// the same component.
func shortestPath(g graph.Graph, comp skeleton.Skeleton, u, v int) []int {
	dist := map[int]float64{u: 0}
	prev := map[int]int{}
	visited := map[int]bool{}

	pq := &distHeap{{id: u, dist: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(distNode)
		if visited[cur.id] {
			continue
		}
		if cur.dist > dist[cur.id] {
			continue
		}
		visited[cur.id] = true
		if cur.id == v {
			break
		}

		neighbors := graph.NodesOf(g.From(int64(cur.id)))
		for _, n := range neighbors {
			nid := int(n.ID())
			if visited[nid] {
				continue
			}
			w := dist[cur.id] + euclid(comp, cur.id, nid)
			if d, ok := dist[nid]; !ok || w < d {
				dist[nid] = w
				prev[nid] = cur.id
				heap.Push(pq, distNode{id: nid, dist: w})
			}
		}
	}

	if !visited[v] {
		panic("trim: no path between vertices in the same component")
	}

	path := []int{v}
	for path[len(path)-1] != u {
		path = append(path, prev[path[len(path)-1]])
	}
	reverse(path)
	return path
}

func euclid(comp skeleton.Skeleton, i, j int) float64 {
	a, b := comp.Vertices[i], comp.Vertices[j]
	dx, dy, dz := a.X()-b.X(), a.Y()-b.Y(), a.Z()-b.Z()
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

type distNode struct {
	id   int
	dist float64
}

type distHeap []distNode

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distNode)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
