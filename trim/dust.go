// Copyright 2026 The igneous Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trim

import "github.com/j6k4m8/igneous/skeleton"

// RemoveDust drops every connected component of skel whose cable length
// does not exceed threshold (spec §4.1). Order among surviving
// components follows skeleton.Split's deterministic ordering by
// minimum vertex index, so the result is reproducible for identical
// input.
func RemoveDust(skel skeleton.Skeleton, threshold float64) (skeleton.Skeleton, error) {
	if skel.Empty() {
		return skel, nil
	}

	var survivors []skeleton.Skeleton
	for _, comp := range skeleton.Split(skel) {
		if comp.CableLength() > threshold {
			survivors = append(survivors, comp)
		}
	}

	return skeleton.Consolidate(skeleton.Merge(survivors...)), nil
}
