// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trim

import "github.com/j6k4m8/igneous/skeleton"

// DefaultDustThreshold and DefaultTickThreshold are the nanometer cable
// length thresholds used when a caller has no more specific value, per
// spec §6.
const (
	DefaultDustThreshold = 4000.0
	DefaultTickThreshold = 6000.0
)

// Trim runs the full trim_skeleton pipeline over skel: dust removal,
// loop removal, piece connection, and tick removal, in that order
// (spec §2). Both thresholds must be nonnegative; a zero threshold
// disables the corresponding pass's effect (spec §6) rather than being
// rejected.
//
// Trim returns a *skeleton.ValidationError if skel is malformed (spec
// §7); degenerate-but-valid inputs (empty, single vertex) are returned
// unchanged, as a copy, without consolidation.
func Trim(skel skeleton.Skeleton, dustThreshold, tickThreshold float64) (skeleton.Skeleton, error) {
	if err := skel.Validate(); err != nil {
		return skeleton.Skeleton{}, err
	}
	if dustThreshold < 0 || tickThreshold < 0 {
		return skeleton.Skeleton{}, &skeleton.ValidationError{
			Kind: "negative threshold",
		}
	}
	if len(skel.Vertices) <= 1 {
		// Empty and single-vertex skeletons are degenerate-but-valid
		// (spec §7): dust removal would otherwise drop a lone vertex for
		// having zero cable length, which spec §7's table explicitly
		// excludes from that policy. Consolidate is not appropriate here
		// either, since it would remove a single vertex as "isolated."
		return skel.Clone(), nil
	}

	out, err := RemoveDust(skel, dustThreshold)
	if err != nil {
		return skeleton.Skeleton{}, err
	}
	out, err = RemoveLoops(out)
	if err != nil {
		return skeleton.Skeleton{}, err
	}
	out, err = ConnectPieces(out)
	if err != nil {
		return skeleton.Skeleton{}, err
	}
	out, err = RemoveTicks(out, tickThreshold)
	if err != nil {
		return skeleton.Skeleton{}, err
	}
	return out, nil
}
