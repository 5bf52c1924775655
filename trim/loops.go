// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trim

import (
	"github.com/j6k4m8/igneous/skeleton"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// RemoveLoops eliminates every cycle in skel using the four
// branch-topology cases of spec §4.2. Loop removal is independent per
// original connected component. An empty or single-vertex skeleton has
// no cycle and is returned unchanged.
func RemoveLoops(skel skeleton.Skeleton) (skeleton.Skeleton, error) {
	if len(skel.Vertices) < 2 {
		return skel, nil
	}

	var out []skeleton.Skeleton
	for _, comp := range skeleton.Split(skel) {
		out = append(out, removeLoopsComponent(comp))
	}
	return skeleton.Consolidate(skeleton.Merge(out...)), nil
}

func removeLoopsComponent(comp skeleton.Skeleton) skeleton.Skeleton {
	g := skeleton.ToGraph(comp)

	for {
		cycle := findCycle(g)
		if cycle == nil {
			break
		}

		cycleVerts := make(map[int]bool, len(cycle))
		for _, id := range cycle {
			cycleVerts[int(id)] = true
		}
		branch := branchVertices(g, cycleVerts)

		switch len(branch) {
		case 0:
			removeCycleEdges(g, cycle)

		case 1:
			b := branch[0]
			farthest := farthestSquared(comp, b, cycle)
			removeCycleEdges(g, cycle)
			if farthest != b {
				g.SetEdge(simple.Edge{F: simple.Node(b), T: simple.Node(farthest)})
			}

		case 2:
			b1, b2 := branch[0], branch[1]
			path := shortestPath(g, comp, b1, b2)
			onPath := pathEdgeSet(path)
			var toRemove []cycleEdge
			for _, e := range cycle {
				if !onPath[e.normalized()] {
					toRemove = append(toRemove, e)
				}
			}
			removeCycleEdges(g, toRemove)

		default:
			v := nearestToCentroid(comp, branch)
			removeCycleEdges(g, cycle)
			for _, b := range branch {
				if b == v {
					continue
				}
				g.SetEdge(simple.Edge{F: simple.Node(b), T: simple.Node(v)})
			}
		}
	}

	out := comp.Clone()
	out.Edges = skeleton.EdgesOf(g)
	return out
}

// cycleEdge is an edge on a detected cycle.
type cycleEdge struct{ u, v int }

func (e cycleEdge) normalized() cycleEdge {
	if e.u > e.v {
		return cycleEdge{u: e.v, v: e.u}
	}
	return e
}

// findCycle returns the edges of one cycle in g, or nil if g is
// acyclic. It uses gonum's undirected cycle-basis finder and returns
// only the first reported cycle; spec §9 leaves the exact cycle chosen
// unspecified.
func findCycle(g *simple.UndirectedGraph) []cycleEdge {
	bases := topo.UndirectedCyclesIn(g)
	if len(bases) == 0 {
		return nil
	}
	// Each basis cycle is a node path that already repeats its first
	// node as its last element to close the loop, so consecutive pairs
	// are exactly the cycle's edges.
	cycle := bases[0]
	var edges []cycleEdge
	for i := 0; i+1 < len(cycle); i++ {
		edges = append(edges, cycleEdge{u: int(cycle[i].ID()), v: int(cycle[i+1].ID())})
	}
	return edges
}

// branchVertices returns the vertices in cycleVerts that currently have
// degree >= 3 in g, sorted ascending for determinism.
func branchVertices(g graph.Graph, cycleVerts map[int]bool) []int {
	var branch []int
	for v := range cycleVerts {
		if degreeOf(g, v) >= 3 {
			branch = append(branch, v)
		}
	}
	sortInts(branch)
	return branch
}

func degreeOf(g graph.Graph, id int) int {
	return len(graph.NodesOf(g.From(int64(id))))
}

func removeCycleEdges(g *simple.UndirectedGraph, edges []cycleEdge) {
	for _, e := range edges {
		g.RemoveEdge(int64(e.u), int64(e.v))
	}
}

func pathEdgeSet(path []int) map[cycleEdge]bool {
	set := make(map[cycleEdge]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		set[cycleEdge{u: path[i], v: path[i+1]}.normalized()] = true
	}
	return set
}

// farthestSquared returns the vertex in cycle farthest from b by
// squared euclidean distance (spec §4.2 Case |B|=1). Ties are broken by
// lowest vertex index so the result is deterministic for identical
// input, independent of Go's randomized map iteration order.
func farthestSquared(comp skeleton.Skeleton, b int, cycle []cycleEdge) int {
	verts := sortedCycleVertices(cycle)
	best := b
	var bestDist float64 = -1
	for _, v := range verts {
		d := sqDistVerts(comp, b, v)
		if d > bestDist {
			bestDist = d
			best = v
		}
	}
	return best
}

func sortedCycleVertices(cycle []cycleEdge) []int {
	set := cycleVertexSet(cycle)
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sortInts(out)
	return out
}

func cycleVertexSet(cycle []cycleEdge) map[int]bool {
	verts := make(map[int]bool)
	for _, e := range cycle {
		verts[e.u] = true
		verts[e.v] = true
	}
	return verts
}

// nearestToCentroid returns the skeleton vertex whose squared distance
// to the centroid of branch's coordinates is smallest (spec §4.2 Case
// |B|>=3), searching over every vertex in the component, with ties
// broken by lowest index.
func nearestToCentroid(comp skeleton.Skeleton, branch []int) int {
	var cx, cy, cz float64
	for _, b := range branch {
		v := comp.Vertices[b]
		cx += v.X()
		cy += v.Y()
		cz += v.Z()
	}
	n := float64(len(branch))
	cx, cy, cz = cx/n, cy/n, cz/n

	best := -1
	var bestDist float64
	for i, v := range comp.Vertices {
		dx, dy, dz := v.X()-cx, v.Y()-cy, v.Z()-cz
		d := dx*dx + dy*dy + dz*dz
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func sqDistVerts(comp skeleton.Skeleton, i, j int) float64 {
	a, b := comp.Vertices[i], comp.Vertices[j]
	dx, dy, dz := a.X()-b.X(), a.Y()-b.Y(), a.Z()-b.Z()
	return dx*dx + dy*dy + dz*dz
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
