// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trim

import (
	"sort"

	"github.com/j6k4m8/igneous/skeleton"
	"github.com/j6k4m8/igneous/trim/internal/kdtree"
	"gonum.org/v1/gonum/graph/topo"
)

// ConnectPieces re-joins components of skel that can be bridged by a
// single radius-valid edge (spec §4.3). It repeats the full sweep over
// component pairs, restarting after every bridge added, until a
// complete sweep adds nothing — intentionally preserving the original
// algorithm's O(N²·C) worst case for determinism (spec §9).
func ConnectPieces(skel skeleton.Skeleton) (skeleton.Skeleton, error) {
	if skel.Empty() {
		return skel, nil
	}

	edges := append([]skeleton.Edge(nil), skel.Edges...)
	for {
		comps := orderedComponents(skel, edges)
		if len(comps) < 2 {
			break
		}

		bridge, ok := findBridge(skel, comps)
		if !ok {
			break
		}
		edges = append(edges, skeleton.Edge{U: bridge.p, V: bridge.q}.Normalize())
	}

	out := skel.Clone()
	out.Edges = edges
	return skeleton.Consolidate(out), nil
}

type candidateBridge struct {
	p, q int
}

// orderedComponents returns the connected components of skel (with the
// given working edge set) as sorted slices of global vertex indices,
// ordered by minimum vertex index, matching the lexicographic
// component-index iteration spec §4.3/§5 requires.
func orderedComponents(skel skeleton.Skeleton, edges []skeleton.Edge) [][]int {
	working := skel
	working.Edges = edges
	g := skeleton.ToGraph(working)
	groups := topo.ConnectedComponents(g)

	comps := make([][]int, 0, len(groups))
	for _, nodes := range groups {
		idx := make([]int, 0, len(nodes))
		for _, n := range nodes {
			idx = append(idx, int(n.ID()))
		}
		sort.Ints(idx)
		comps = append(comps, idx)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return comps
}

// findBridge scans every unordered pair of components in lexicographic
// order and returns the first radius-admissible bridging edge found
// (spec §4.3 step 3).
func findBridge(skel skeleton.Skeleton, comps [][]int) (candidateBridge, bool) {
	for i := 0; i < len(comps); i++ {
		for j := i + 1; j < len(comps); j++ {
			p, q, d, found := nearestBetween(skel, comps[i], comps[j])
			if !found {
				continue
			}
			if skel.Radii[p]+skel.Radii[q] >= d {
				return candidateBridge{p: p, q: q}, true
			}
		}
	}
	return candidateBridge{}, false
}

// nearestBetween finds the closest pair (p in P, q in Q) by euclidean
// distance, building a spatial index over Q and querying with every
// vertex of P (spec §4.3 step 3). Ties among equidistant p are broken
// by the smallest vertex index in P.
func nearestBetween(skel skeleton.Skeleton, p, q []int) (pStar, qStar int, dist float64, found bool) {
	if len(p) == 0 || len(q) == 0 {
		return 0, 0, 0, false
	}

	pts := make([]kdtree.Point, 0, len(q))
	for _, qi := range q {
		pts = append(pts, kdtree.Point{Coord: skel.Vertices[qi], Index: qi})
	}
	tree := kdtree.New(pts)

	best := -1
	var bestQ int
	var bestDist float64
	for _, pi := range p {
		nearest, d := tree.Nearest(skel.Vertices[pi])
		// p is walked in ascending index order, so a strict < already
		// keeps the first (lowest-index) winner on any tie; no separate
		// tie-break clause is needed.
		if best == -1 || d < bestDist {
			best = pi
			bestQ = nearest.Index
			bestDist = d
		}
	}
	return best, bestQ, bestDist, true
}
