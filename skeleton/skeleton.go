// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Edge is an unordered pair of vertex indices. U and V are not ordered
// with respect to each other; use Normalize for a canonical form.
type Edge struct {
	U, V int
}

// Normalize returns e with U <= V, so that two edges referring to the
// same unordered pair compare equal regardless of construction order.
func (e Edge) Normalize() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Skeleton is a geometric graph over a set of 3-D points in physical
// units (nanometers), as produced by merging overlapping chunk-local
// TEASAR fragments for a single segmented object.
//
// Vertices is index-aligned with Radii; Edges reference positions in
// Vertices. VertexTypes, when non-nil, is index-aligned with Vertices
// and is preserved by every operation in this package and in package
// trim without ever being consulted by them.
type Skeleton struct {
	ID          uint64
	Vertices    []r3.Vec
	Edges       []Edge
	Radii       []float64
	VertexTypes []uint8
}

// Empty reports whether s has no vertices.
func (s Skeleton) Empty() bool {
	return len(s.Vertices) == 0
}

// Clone returns a deep copy of s.
func (s Skeleton) Clone() Skeleton {
	out := Skeleton{
		ID:       s.ID,
		Vertices: append([]r3.Vec(nil), s.Vertices...),
		Edges:    append([]Edge(nil), s.Edges...),
		Radii:    append([]float64(nil), s.Radii...),
	}
	if s.VertexTypes != nil {
		out.VertexTypes = append([]uint8(nil), s.VertexTypes...)
	}
	return out
}

// Validate checks the structural invariants spec'd for a well-formed
// Skeleton: edge endpoints reference valid vertices, radii is aligned
// with vertices, and no coordinate is NaN. It does not check for
// acyclicity or connectivity; those are properties established (or not)
// by the trim passes, not preconditions on input.
func (s Skeleton) Validate() error {
	if len(s.Radii) != len(s.Vertices) {
		return &ValidationError{
			Kind:   "radii length mismatch",
			Detail: formatLenMismatch(len(s.Radii), len(s.Vertices)),
		}
	}
	if s.VertexTypes != nil && len(s.VertexTypes) != len(s.Vertices) {
		return &ValidationError{
			Kind:   "vertex type length mismatch",
			Detail: formatLenMismatch(len(s.VertexTypes), len(s.Vertices)),
		}
	}
	n := len(s.Vertices)
	for i, v := range s.Vertices {
		if math.IsNaN(v.X()) || math.IsNaN(v.Y()) || math.IsNaN(v.Z()) {
			return &ValidationError{Kind: "NaN coordinate", Detail: indexDetail(i)}
		}
	}
	for _, e := range s.Edges {
		if e.U == e.V {
			return &ValidationError{Kind: "self-loop edge", Detail: indexDetail(e.U)}
		}
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return &ValidationError{Kind: "edge references invalid vertex", Detail: edgeDetail(e, n)}
		}
	}
	return nil
}

// CableLength returns the sum of euclidean edge lengths of s.
func (s Skeleton) CableLength() float64 {
	var total float64
	for _, e := range s.Edges {
		total += dist(s.Vertices[e.U], s.Vertices[e.V])
	}
	return total
}

// degree returns, for every vertex index with at least one incident
// edge, the number of distinct edges touching it.
func (s Skeleton) degree() map[int]int {
	deg := make(map[int]int, len(s.Vertices))
	for _, e := range s.Edges {
		deg[e.U]++
		deg[e.V]++
	}
	return deg
}

func dist(a, b r3.Vec) float64 {
	return math.Sqrt(sqDist(a, b))
}

func sqDist(a, b r3.Vec) float64 {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	dz := a.Z() - b.Z()
	return dx*dx + dy*dy + dz*dz
}
