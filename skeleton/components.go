// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/spatial/r3"
)

// Split partitions s into its maximal connected subgraphs (spec §3,
// "Components"). Components are returned ordered by the minimum vertex
// index they contain, so that Split is deterministic for identical
// input, as spec §5 requires of any pass that iterates components.
// Each returned Skeleton has its own compact vertex numbering over
// [0, N), built by subSkeleton.
func Split(s Skeleton) []Skeleton {
	if s.Empty() {
		return nil
	}
	g := ToGraph(s)
	groups := topo.ConnectedComponents(g)

	type group struct {
		idx []int
		min int
	}
	gs := make([]group, 0, len(groups))
	for _, nodes := range groups {
		idx := make([]int, 0, len(nodes))
		for _, n := range nodes {
			idx = append(idx, int(n.ID()))
		}
		sort.Ints(idx)
		gs = append(gs, group{idx: idx, min: idx[0]})
	}
	sort.Slice(gs, func(i, j int) bool { return gs[i].min < gs[j].min })

	out := make([]Skeleton, 0, len(gs))
	for _, grp := range gs {
		out = append(out, subSkeleton(s, grp.idx))
	}
	return out
}

// subSkeleton extracts the induced subgraph of s over the vertex
// indices in idx (sorted ascending), reindexed to [0, len(idx)).
func subSkeleton(s Skeleton, idx []int) Skeleton {
	remap := make(map[int]int, len(idx))
	for newIdx, oldIdx := range idx {
		remap[oldIdx] = newIdx
	}

	out := Skeleton{
		ID:       s.ID,
		Vertices: make([]r3.Vec, len(idx)),
		Radii:    make([]float64, len(idx)),
	}
	if s.VertexTypes != nil {
		out.VertexTypes = make([]uint8, len(idx))
	}
	for newIdx, oldIdx := range idx {
		out.Vertices[newIdx] = s.Vertices[oldIdx]
		out.Radii[newIdx] = s.Radii[oldIdx]
		if s.VertexTypes != nil {
			out.VertexTypes[newIdx] = s.VertexTypes[oldIdx]
		}
	}

	keep := make(map[int]bool, len(idx))
	for _, oldIdx := range idx {
		keep[oldIdx] = true
	}
	for _, e := range s.Edges {
		if !keep[e.U] || !keep[e.V] {
			continue
		}
		out.Edges = append(out.Edges, Edge{U: remap[e.U], V: remap[e.V]}.Normalize())
	}
	sortEdges(out.Edges)
	return out
}

// Consolidate removes vertices of degree 0 and reindexes the remaining
// vertices to a compact range [0, N), rewriting edges and shrinking
// radii (and vertex types) to match (spec §3 invariant 3, §4.5).
func Consolidate(s Skeleton) Skeleton {
	if s.Empty() {
		return s
	}
	deg := s.degree()
	idx := make([]int, 0, len(s.Vertices))
	for i := range s.Vertices {
		if deg[i] > 0 {
			idx = append(idx, i)
		}
	}
	return subSkeleton(s, idx)
}

// Merge concatenates the vertex, edge, and radii arrays of several
// skeletons, shifting each successor's edge indices by the cumulative
// vertex count of its predecessors (spec §4.5, "Simple merge"). It does
// not deduplicate vertices and does not consolidate. The identifier of
// the first non-empty input is preserved; empty inputs are skipped
// entirely.
func Merge(skels ...Skeleton) Skeleton {
	var out Skeleton
	idSet := false
	for _, s := range skels {
		if s.Empty() {
			continue
		}
		offset := len(out.Vertices)
		out.Vertices = append(out.Vertices, s.Vertices...)
		out.Radii = append(out.Radii, s.Radii...)
		if s.VertexTypes != nil {
			if out.VertexTypes == nil {
				out.VertexTypes = make([]uint8, offset)
			}
			out.VertexTypes = append(out.VertexTypes, s.VertexTypes...)
		} else if out.VertexTypes != nil {
			out.VertexTypes = append(out.VertexTypes, make([]uint8, len(s.Vertices))...)
		}
		for _, e := range s.Edges {
			out.Edges = append(out.Edges, Edge{U: e.U + offset, V: e.V + offset})
		}
		if !idSet {
			out.ID = s.ID
			idSet = true
		}
	}
	return out
}
