// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/j6k4m8/igneous/skeleton"
)

func TestToGraphRoundTrip(t *testing.T) {
	s := square()
	g := skeleton.ToGraph(s)

	for i := range s.Vertices {
		if g.Node(int64(i)) == nil {
			t.Errorf("ToGraph() missing node %d", i)
		}
	}

	got := skeleton.EdgesOf(g)
	want := []skeleton.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 2, V: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EdgesOf(ToGraph(s)) (-want +got):\n%s", diff)
	}
}

func TestToGraphKeepsIsolatedVertices(t *testing.T) {
	s := twoComponents()
	s.Vertices = append(s.Vertices, s.Vertices[0])
	s.Radii = append(s.Radii, 1)

	g := skeleton.ToGraph(s)
	isolated := int64(len(s.Vertices) - 1)
	if g.Node(isolated) == nil {
		t.Fatalf("ToGraph() dropped isolated vertex %d", isolated)
	}
	if g.From(isolated).Len() != 0 {
		t.Errorf("isolated vertex %d has neighbors in ToGraph() output", isolated)
	}
}
