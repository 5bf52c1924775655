// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/j6k4m8/igneous/skeleton"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

func square() skeleton.Skeleton {
	return skeleton.Skeleton{
		ID:       7,
		Vertices: []r3.Vec{{0, 0, 0}, {100, 0, 0}, {100, 100, 0}, {0, 100, 0}},
		Edges:    []skeleton.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}},
		Radii:    []float64{1, 1, 1, 1},
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	if err := square().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsRadiiMismatch(t *testing.T) {
	s := square()
	s.Radii = s.Radii[:2]
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for radii length mismatch")
	}
}

func TestValidateRejectsSelfLoop(t *testing.T) {
	s := square()
	s.Edges = append(s.Edges, skeleton.Edge{U: 1, V: 1})
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for self-loop edge")
	}
}

func TestValidateRejectsOutOfRangeEdge(t *testing.T) {
	s := square()
	s.Edges = append(s.Edges, skeleton.Edge{U: 0, V: 9})
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for out-of-range edge")
	}
}

func TestValidateRejectsNaN(t *testing.T) {
	s := square()
	s.Vertices[0] = r3.Vec{math.NaN(), 0, 0}
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for NaN coordinate")
	}
}

func TestCableLength(t *testing.T) {
	s := square()
	got := s.CableLength()
	want := 400.0
	if !floats.EqualWithinAbs(got, want, 1e-9) {
		t.Errorf("CableLength() = %v, want %v", got, want)
	}
}

func TestEdgeNormalize(t *testing.T) {
	e := skeleton.Edge{U: 5, V: 2}
	got := e.Normalize()
	want := skeleton.Edge{U: 2, V: 5}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
	if diff := cmp.Diff(want, skeleton.Edge{U: 2, V: 5}.Normalize()); diff != "" {
		t.Errorf("Normalize() on already-canonical edge changed it (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := square()
	c := s.Clone()
	c.Vertices[0] = r3.Vec{999, 999, 999}
	c.Edges[0] = skeleton.Edge{U: 3, V: 3}
	if s.Vertices[0] == c.Vertices[0] {
		t.Error("Clone() shares the Vertices backing array with the original")
	}
	if s.Edges[0] == c.Edges[0] {
		t.Error("Clone() shares the Edges backing array with the original")
	}
}

func TestEmpty(t *testing.T) {
	if !(skeleton.Skeleton{}).Empty() {
		t.Error("Empty() = false for a zero-value Skeleton")
	}
	if square().Empty() {
		t.Error("Empty() = true for a populated Skeleton")
	}
}
