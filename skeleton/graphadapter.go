// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGraph builds a gonum undirected graph over s, with one node per
// vertex index (so every vertex — including isolated ones — keeps a
// stable node ID equal to its index in s.Vertices) and one edge per
// s.Edges entry. It is the shared adaptation layer every pass in
// package trim operates through so that cycle detection and connected
// components run on the real gonum/graph/topo machinery rather than a
// hand-rolled traversal.
//
// Edge weight is not stored on the graph: every consumer of ToGraph
// that needs physical length recomputes it from s.Vertices, since that
// is the single source of truth for vertex geometry.
func ToGraph(s Skeleton) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range s.Vertices {
		g.AddNode(simple.Node(i))
	}
	for _, e := range s.Edges {
		g.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}
	return g
}

// EdgesOf drains g's edge set back into the []Edge representation,
// normalized and sorted into a deterministic order. It is the inverse
// of ToGraph, used after a pass has mutated the working graph to
// materialize the result back into a Skeleton.
func EdgesOf(g graph.Graph) []Edge {
	raw := graph.EdgesOf(g.Edges())
	edges := make([]Edge, 0, len(raw))
	for _, e := range raw {
		edges = append(edges, Edge{U: int(e.From().ID()), V: int(e.To().ID())}.Normalize())
	}
	sortEdges(edges)
	return edges
}

func sortEdges(edges []Edge) {
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && less(edges[j], edges[j-1]); j-- {
			edges[j], edges[j-1] = edges[j-1], edges[j]
		}
	}
}

func less(a, b Edge) bool {
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}
