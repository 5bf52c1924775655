// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kdtree implements a minimal 3-D k-d tree for nearest-neighbor
// queries over skeleton vertex coordinates, used by piece connection to
// find the closest vertex in one component to each vertex of another
// (spec §4.3: "Build a spatial index over Q's vertex coordinates").
//
// No full k-d-tree or vantage-point-tree implementation was available
// to ground an import on in the examples pack — spatial/vptree
// retained only its package doc comment, and no spatial/kdtree package
// was retrieved at all — so this is a small hand-written tree rather
// than a wired third-party dependency. Its bounding-volume-free,
// median-split shape follows the conventional k-d tree construction
// algorithm; each node holds one Point and its split axis, and no node
// stores a bounding volume (there is no spatial/r3.Box-style Min/Max).
package kdtree

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point pairs a 3-D coordinate with the caller's index for it, so a
// query result can be mapped back to a vertex index in the original
// skeleton.
type Point struct {
	Coord r3.Vec
	Index int
}

// Tree is a static 3-D k-d tree over a fixed set of Points.
type Tree struct {
	root *node
}

type node struct {
	point       Point
	axis        int
	left, right *node
}

// New builds a Tree over pts. pts is not retained; New copies what it
// needs.
func New(pts []Point) *Tree {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return &Tree{root: build(cp, 0)}
}

func build(pts []Point, depth int) *node {
	if len(pts) == 0 {
		return nil
	}
	axis := depth % 3
	sortByAxis(pts, axis)
	mid := len(pts) / 2
	return &node{
		point: pts[mid],
		axis:  axis,
		left:  build(pts[:mid], depth+1),
		right: build(pts[mid+1:], depth+1),
	}
}

func sortByAxis(pts []Point, axis int) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && coord(pts[j], axis) < coord(pts[j-1], axis); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

func coord(p Point, axis int) float64 {
	switch axis {
	case 0:
		return p.Coord.X()
	case 1:
		return p.Coord.Y()
	default:
		return p.Coord.Z()
	}
}

// Nearest returns the Point in the tree closest to q by euclidean
// distance, and that distance. Nearest panics if the tree is empty.
func (t *Tree) Nearest(q r3.Vec) (Point, float64) {
	if t.root == nil {
		panic("kdtree: nearest query on empty tree")
	}
	best := t.root.point
	bestSq := sqDist(best.Coord, q)
	best, bestSq = t.root.search(q, best, bestSq)
	return best, math.Sqrt(bestSq)
}

func (n *node) search(q r3.Vec, best Point, bestSq float64) (Point, float64) {
	if n == nil {
		return best, bestSq
	}
	d := sqDist(n.point.Coord, q)
	if d < bestSq {
		best, bestSq = n.point, d
	}

	diff := coord(q, n.axis) - coord(n.point.Coord, n.axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}

	best, bestSq = near.search(q, best, bestSq)
	if diff*diff < bestSq {
		best, bestSq = far.search(q, best, bestSq)
	}
	return best, bestSq
}

func sqDist(a, b r3.Vec) float64 {
	dx, dy, dz := a.X()-b.X(), a.Y()-b.Y(), a.Z()-b.Z()
	return dx*dx + dy*dy + dz*dz
}
