// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skeleton defines the geometric graph value produced by merging
// chunk-local TEASAR skeletons, along with the structural operations —
// split into components, consolidate, and simple merge — that the trim
// pipeline in package trim builds on.
//
// A Skeleton is deliberately a plain value: vertices, undirected edges,
// and per-vertex radii, all index-aligned. It carries no behavior beyond
// validation and the handful of structural utilities described in this
// package; the geometric transformations that clean a raw skeleton live
// in package trim.
package skeleton // import "github.com/j6k4m8/igneous/skeleton"
