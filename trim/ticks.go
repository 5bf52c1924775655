// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trim

import (
	"github.com/j6k4m8/igneous/skeleton"
	"gonum.org/v1/gonum/graph/simple"
)

// RemoveTicks prunes short terminal branches from skel using the
// critical-point supergraph algorithm of spec §4.4, independently per
// component.
func RemoveTicks(skel skeleton.Skeleton, threshold float64) (skeleton.Skeleton, error) {
	if skel.Empty() {
		return skel, nil
	}

	var out []skeleton.Skeleton
	for _, comp := range skeleton.Split(skel) {
		out = append(out, removeTicksComponent(comp, threshold))
	}
	// Unlike the other passes, RemoveTicks does not consolidate the
	// merged result globally: spec §4.4's edge cases require an empty or
	// single-vertex component to come back byte-for-byte unchanged, and a
	// global consolidate would silently drop such a component's one
	// degree-0 vertex. Each component that was actually pruned already
	// consolidated itself below.
	return skeleton.Merge(out...), nil
}

// removeTicksComponent prunes comp against its own critical-point
// supergraph, per the iterative algorithm of spec §4.4. Components with
// fewer than two vertices, or with no terminal vertex to root the
// traversal at (only possible if comp still contains a cycle, which
// never happens for input that has passed through loop removal), are
// returned unchanged (spec §4.4, "Edge cases").
func removeTicksComponent(comp skeleton.Skeleton, threshold float64) skeleton.Skeleton {
	if len(comp.Vertices) < 2 {
		return comp
	}

	g := skeleton.ToGraph(comp)
	sg := buildSupergraph(comp, g)
	if sg == nil {
		return comp
	}

	for sg.activeCount() > 1 {
		t := sg.terminalEdges()
		if len(t) == 0 {
			break
		}
		id := sg.minWeightEdge(t)
		e := sg.edges[id]

		if sg.branchCount[e.u] == 1 && sg.branchCount[e.v] == 1 {
			break // single path component; preserve intact (spec §3 invariant 6)
		}
		if e.weight >= threshold {
			break
		}

		path := shortestPath(g, comp, e.u, e.v)
		removeVertexPath(g, path)

		sg.removeEdge(id)
		sg.branchCount[e.u]--
		sg.branchCount[e.v]--

		if sg.branchCount[e.u] == 2 {
			sg.fuse(e.u)
		}
		if sg.branchCount[e.v] == 2 {
			sg.fuse(e.v)
		}
	}

	out := comp.Clone()
	out.Edges = skeleton.EdgesOf(g)
	return skeleton.Consolidate(out)
}

// removeVertexPath deletes every edge along a vertex path from g.
func removeVertexPath(g *simple.UndirectedGraph, path []int) {
	for i := 0; i+1 < len(path); i++ {
		g.RemoveEdge(int64(path[i]), int64(path[i+1]))
	}
}
