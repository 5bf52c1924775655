// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trim implements the trim_skeleton pipeline: the four
// graph-geometric passes that turn a raw, chunk-merged TEASAR skeleton
// into a clean tree-like structure for a single segmented object —
// dust removal, loop removal, piece connection, and tick removal — run
// in that fixed order by Trim.
//
// Each pass is a pure function from one skeleton.Skeleton value to
// another; there is no shared mutable state between invocations, so
// the package is safe to call concurrently across independent
// skeletons (spec §5). Within a single call there is no concurrency:
// each pass observes the full output of the previous one.
package trim // import "github.com/j6k4m8/igneous/trim"
