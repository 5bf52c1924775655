// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trim_test

import (
	"testing"

	"github.com/j6k4m8/igneous/skeleton"
	"github.com/j6k4m8/igneous/trim"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestTrimTwoPathWithShortTick is end-to-end scenario 1 of spec §8: a
// straight path with a degree-2 vertex 2 no branch vertex exists
// anywhere in this topology, so by spec §4.4's own "Edge cases"
// paragraph and the single-path stop rule, the component is a pure path
// and is preserved intact; this is the resolution of the apparent
// conflict between that paragraph and the scenario's stated output (see
// DESIGN.md).
func TestTrimTwoPathWithShortTick(t *testing.T) {
	s := skeleton.Skeleton{
		ID: 1,
		Vertices: []r3.Vec{
			{0, 0, 0}, {100, 0, 0}, {200, 0, 0}, {200, 50, 0},
		},
		Edges: []skeleton.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}},
		Radii: []float64{1, 1, 1, 1},
	}

	out, err := trim.Trim(s, 10, 75)
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if len(out.Vertices) != 4 || len(out.Edges) != 3 {
		t.Errorf("Trim() on a branch-free path = %d verts/%d edges, want 4/3 (single-path preservation)",
			len(out.Vertices), len(out.Edges))
	}
}

// TestTrimSingleRing is end-to-end scenario 2 of spec §8.
func TestTrimSingleRing(t *testing.T) {
	s := skeleton.Skeleton{
		ID: 1,
		Vertices: []r3.Vec{
			{0, 0, 0}, {100, 0, 0}, {100, 100, 0}, {0, 100, 0},
		},
		Edges: []skeleton.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}},
		Radii: []float64{1, 1, 1, 1},
	}

	out, err := trim.Trim(s, 10, 75)
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if !out.Empty() {
		t.Errorf("Trim(ring) = %+v, want empty (loop removal's |B|=0 case drops every cycle edge, consolidate drops the rest)", out)
	}
}

// TestTrimBridgedPieces is end-to-end scenario 4 of spec §8.
func TestTrimBridgedPieces(t *testing.T) {
	s := skeleton.Skeleton{
		ID: 1,
		Vertices: []r3.Vec{
			{0, 0, 0}, {10, 0, 0}, {20, 0, 0},
			{30, 0, 0}, {40, 0, 0}, {50, 0, 0},
		},
		Edges: []skeleton.Edge{
			{U: 0, V: 1}, {U: 1, V: 2},
			{U: 3, V: 4}, {U: 4, V: 5},
		},
		Radii: []float64{6, 6, 6, 6, 6, 6},
	}

	out, err := trim.Trim(s, 0, 0)
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if len(skeleton.Split(out)) != 1 {
		t.Errorf("Trim() left %d components, want 1 (radius-valid bridge)", len(skeleton.Split(out)))
	}
}

// TestTrimBridgeRefused is end-to-end scenario 5 of spec §8.
func TestTrimBridgeRefused(t *testing.T) {
	s := skeleton.Skeleton{
		ID: 1,
		Vertices: []r3.Vec{
			{0, 0, 0}, {10, 0, 0}, {20, 0, 0},
			{30, 0, 0}, {40, 0, 0}, {50, 0, 0},
		},
		Edges: []skeleton.Edge{
			{U: 0, V: 1}, {U: 1, V: 2},
			{U: 3, V: 4}, {U: 4, V: 5},
		},
		Radii: []float64{3, 3, 3, 3, 3, 3},
	}

	out, err := trim.Trim(s, 0, 0)
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if len(skeleton.Split(out)) != 2 {
		t.Errorf("Trim() left %d components, want 2 (bridge refused, radii too small)", len(skeleton.Split(out)))
	}
}

func TestTrimDegenerateInputs(t *testing.T) {
	out, err := trim.Trim(skeleton.Skeleton{}, trim.DefaultDustThreshold, trim.DefaultTickThreshold)
	if err != nil || !out.Empty() {
		t.Fatalf("Trim(empty) = %+v, %v, want empty, nil", out, err)
	}

	single := skeleton.Skeleton{ID: 5, Vertices: []r3.Vec{{1, 2, 3}}, Radii: []float64{1}}
	out, err = trim.Trim(single, trim.DefaultDustThreshold, trim.DefaultTickThreshold)
	if err != nil {
		t.Fatalf("Trim(single vertex) error = %v", err)
	}
	if len(out.Vertices) != 1 || out.ID != 5 {
		t.Errorf("Trim(single vertex) = %+v, want unchanged single vertex with ID 5", out)
	}
}

func TestTrimRejectsMalformedInput(t *testing.T) {
	bad := skeleton.Skeleton{Vertices: []r3.Vec{{0, 0, 0}}, Radii: []float64{1, 2}}
	if _, err := trim.Trim(bad, 10, 10); err == nil {
		t.Fatal("Trim() on radii/vertex length mismatch = nil error, want error")
	}
}

func TestTrimRejectsNegativeThreshold(t *testing.T) {
	s := skeleton.Skeleton{ID: 1, Vertices: []r3.Vec{{0, 0, 0}}, Radii: []float64{1}}
	if _, err := trim.Trim(s, -1, 10); err == nil {
		t.Fatal("Trim() with negative dust threshold = nil error, want error")
	}
}

func TestTrimIsIdempotent(t *testing.T) {
	s := skeleton.Skeleton{
		ID: 1,
		Vertices: []r3.Vec{
			{0, 0, 0}, {100, 0, 0}, {200, 0, 0}, {200, 50, 0},
		},
		Edges: []skeleton.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}},
		Radii: []float64{1, 1, 1, 1},
	}

	once, err := trim.Trim(s, 10, 75)
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	twice, err := trim.Trim(once, 10, 75)
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if len(once.Vertices) != len(twice.Vertices) || len(once.Edges) != len(twice.Edges) {
		t.Errorf("Trim() is not idempotent: once=%d verts/%d edges, twice=%d verts/%d edges",
			len(once.Vertices), len(once.Edges), len(twice.Vertices), len(twice.Edges))
	}
}
