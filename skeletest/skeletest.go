// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skeletest builds fixture and randomized Skeleton values shared
// across package skeleton and package trim's tests, in the manner of
// gonum's graph/graphs/gen test-graph generators.
package skeletest

import (
	"math/rand"

	"github.com/j6k4m8/igneous/skeleton"
	"gonum.org/v1/gonum/spatial/r3"
)

// Path returns a straight-line path of n vertices spaced step apart
// along the X axis, each with radius r, edges (0,1),(1,2),....
func Path(n int, step, r float64) skeleton.Skeleton {
	s := skeleton.Skeleton{ID: 1}
	for i := 0; i < n; i++ {
		s.Vertices = append(s.Vertices, r3.Vec{float64(i) * step, 0, 0})
		s.Radii = append(s.Radii, r)
	}
	for i := 0; i+1 < n; i++ {
		s.Edges = append(s.Edges, skeleton.Edge{U: i, V: i + 1})
	}
	return s
}

// SquareRing returns the 4-cycle over a unit square of side length
// scaled by side, radius r on every vertex, used for the |B|=0
// loop-removal case.
func SquareRing(side, r float64) skeleton.Skeleton {
	return skeleton.Skeleton{
		ID: 1,
		Vertices: []r3.Vec{
			{0, 0, 0},
			{side, 0, 0},
			{side, side, 0},
			{0, side, 0},
		},
		Edges: []skeleton.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}},
		Radii: []float64{r, r, r, r},
	}
}

// Lollipop returns a path 0-1-2 with a triangle 2-3-4-2 hanging off
// vertex 2, used for the |B|=1 loop-removal case: vertex 2 is the sole
// branch vertex on the cycle.
func Lollipop() skeleton.Skeleton {
	return skeleton.Skeleton{
		ID: 1,
		Vertices: []r3.Vec{
			{0, 0, 0},
			{10, 0, 0},
			{20, 0, 0},
			{30, 10, 0},
			{30, -10, 0},
		},
		Edges: []skeleton.Edge{
			{U: 0, V: 1}, {U: 1, V: 2},
			{U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 2},
		},
		Radii: []float64{1, 1, 1, 1, 1},
	}
}

// TwoPaths returns two disjoint 3-vertex paths along the X axis with
// the given radius on every vertex, spaced gap apart, for piece
// connection tests.
func TwoPaths(gap, r float64) skeleton.Skeleton {
	return skeleton.Skeleton{
		ID: 1,
		Vertices: []r3.Vec{
			{0, 0, 0}, {10, 0, 0}, {20, 0, 0},
			{20 + gap, 0, 0}, {30 + gap, 0, 0}, {40 + gap, 0, 0},
		},
		Edges: []skeleton.Edge{
			{U: 0, V: 1}, {U: 1, V: 2},
			{U: 3, V: 4}, {U: 4, V: 5},
		},
		Radii: []float64{r, r, r, r, r, r},
	}
}

// RandomTree returns a random tree over n vertices (n >= 1): vertex i
// (i >= 1) attaches to a uniformly random earlier vertex, guaranteeing
// acyclicity by construction. Coordinates are uniform in
// [0, extent)³ and radii uniform in [0, maxRadius). Deterministic for a
// fixed seed.
func RandomTree(n int, seed int64, extent, maxRadius float64) skeleton.Skeleton {
	rng := rand.New(rand.NewSource(seed))
	s := skeleton.Skeleton{ID: 1}
	for i := 0; i < n; i++ {
		s.Vertices = append(s.Vertices, r3.Vec{
			rng.Float64() * extent,
			rng.Float64() * extent,
			rng.Float64() * extent,
		})
		s.Radii = append(s.Radii, rng.Float64()*maxRadius)
		if i > 0 {
			parent := rng.Intn(i)
			s.Edges = append(s.Edges, skeleton.Edge{U: parent, V: i})
		}
	}
	return s
}
