// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trim

import (
	"sort"

	"github.com/j6k4m8/igneous/skeleton"
	"gonum.org/v1/gonum/graph"
)

// superEdge is one edge of a critical-point supergraph: a maximal path
// in the underlying skeleton between two critical vertices, weighted by
// the summed euclidean length of all its segments (spec §3,
// "superedge"; spec §4.4).
type superEdge struct {
	u, v   int
	weight float64
}

func (e superEdge) other(v int) int {
	if e.u == v {
		return e.v
	}
	return e.u
}

// supergraph is the critical-point multigraph spec §4.4 builds once per
// component and then repeatedly prunes: edges indexed by id so that
// fusion can locate and retire them in O(1) via incident, rather than
// scanning the whole edge set.
type supergraph struct {
	edges       []superEdge
	alive       []bool
	incident    map[int][]int // vertex -> ids of currently alive edges touching it
	branchCount map[int]int
}

func newSupergraph() *supergraph {
	return &supergraph{incident: make(map[int][]int), branchCount: make(map[int]int)}
}

func (sg *supergraph) addEdge(u, v int, weight float64) int {
	id := len(sg.edges)
	sg.edges = append(sg.edges, superEdge{u: u, v: v, weight: weight})
	sg.alive = append(sg.alive, true)
	sg.incident[u] = append(sg.incident[u], id)
	sg.incident[v] = append(sg.incident[v], id)
	sg.branchCount[u]++
	sg.branchCount[v]++
	return id
}

// removeEdge retires edge id without touching branchCount; callers
// update branchCount themselves since deletion (decrement) and fusion
// (no net change) have different bookkeeping (spec §4.4 steps 4-5).
func (sg *supergraph) removeEdge(id int) {
	sg.alive[id] = false
	e := sg.edges[id]
	sg.incident[e.u] = dropID(sg.incident[e.u], id)
	sg.incident[e.v] = dropID(sg.incident[e.v], id)
}

func dropID(ids []int, id int) []int {
	for i, x := range ids {
		if x == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// fuse removes the two superedges incident to the degree-2 critical
// vertex v and replaces them with a single superedge between their
// other endpoints, summing weight, then retires v (spec §4.4 step 5).
func (sg *supergraph) fuse(v int) {
	ids := append([]int(nil), sg.incident[v]...)
	if len(ids) != 2 {
		return
	}
	e1, e2 := sg.edges[ids[0]], sg.edges[ids[1]]
	other1, other2 := e1.other(v), e2.other(v)
	weight := e1.weight + e2.weight

	sg.removeEdge(ids[0])
	sg.removeEdge(ids[1])
	sg.addEdge(other1, other2, weight)
	// addEdge just bumped both survivors' counts for the new superedge;
	// each also lost one of the two old edges removeEdge didn't account
	// for, so the fusion is degree-neutral for them (spec §4.4 step 5).
	sg.branchCount[other1]--
	sg.branchCount[other2]--
	sg.branchCount[v] = 0
}

// activeCount returns the number of critical vertices still tracked by
// the supergraph, i.e. |D| in spec §4.4's pruning loop.
func (sg *supergraph) activeCount() int {
	n := 0
	for _, c := range sg.branchCount {
		if c > 0 {
			n++
		}
	}
	return n
}

// terminalEdges returns the alive edge ids with at least one endpoint
// at branch-count 1 (spec §4.4 step 1, set T), in deterministic id
// order.
func (sg *supergraph) terminalEdges() []int {
	var ids []int
	for id, alive := range sg.alive {
		if !alive {
			continue
		}
		e := sg.edges[id]
		if sg.branchCount[e.u] == 1 || sg.branchCount[e.v] == 1 {
			ids = append(ids, id)
		}
	}
	return ids
}

// minWeightEdge returns the id in ids with smallest weight, breaking
// ties by lowest id (spec §9: exact winner among ties is unspecified by
// the source; lowest id gives a reproducible, deterministic choice).
func (sg *supergraph) minWeightEdge(ids []int) int {
	best := ids[0]
	for _, id := range ids[1:] {
		if sg.edges[id].weight < sg.edges[best].weight {
			best = id
		}
	}
	return best
}

// buildSupergraph computes the critical-point supergraph of comp by an
// iterative depth-first traversal from the lowest-indexed terminal
// (spec §4.4): each DFS frame tracks the vertex it resumed from, the
// critical vertex the accumulator is measured from, and the distance
// accumulated since that root. Recursion is iterative so the traversal
// is bounded by an explicit stack rather than Go's call stack, per the
// spec's stated motivation (skeletons may hold hundreds of thousands of
// vertices).
//
// buildSupergraph returns nil if comp has no terminal vertex (possible
// only if comp still contains a cycle, which the pipeline never passes
// to tick removal; callers treat nil as "leave comp unchanged").
func buildSupergraph(comp skeleton.Skeleton, g graph.Graph) *supergraph {
	critical := func(v int) bool {
		d := degreeOf(g, v)
		return d == 1 || d >= 3
	}

	root := -1
	for i := range comp.Vertices {
		if degreeOf(g, i) == 1 {
			root = i
			break
		}
	}
	if root == -1 {
		return nil
	}

	sg := newSupergraph()

	type frame struct {
		vertex, parent, root int
		acc                  float64
	}
	visited := map[int]bool{root: true}
	stack := []frame{{vertex: root, parent: -1, root: root, acc: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors := graph.NodesOf(g.From(int64(f.vertex)))
		ids := make([]int, 0, len(neighbors))
		for _, n := range neighbors {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)

		for _, n := range ids {
			if n == f.parent || visited[n] {
				continue
			}
			visited[n] = true
			d := f.acc + euclid(comp, f.vertex, n)
			if critical(n) {
				sg.addEdge(f.root, n, d)
				stack = append(stack, frame{vertex: n, parent: f.vertex, root: n, acc: 0})
			} else {
				stack = append(stack, frame{vertex: n, parent: f.vertex, root: f.root, acc: d})
			}
		}
	}

	return sg
}
