// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

import "math"

// nilIdx marks the absence of a link, whether in a live sequence or on a
// pool's free list.
const nilIdx int32 = -1

// sizeClasses returns m, the maximum number of distinct bucket size
// classes the histogram can hold for a window of size n with accuracy
// parameter k: m = 1 + ceil(log2((n-1)/k + 1)).
func sizeClasses(n, k uint32) int {
	x := float64(n-1)/float64(k) + 1
	return 1 + int(math.Ceil(math.Log2(x)))
}

// poolCapacities returns the bucket and group pool capacities DGIM
// guarantees suffice for the given k and m: (k+1)*m buckets, m groups.
// ok is false if either capacity would overflow the int32 index space
// the pools are addressed with, in which case no allocation is attempted.
func poolCapacities(k uint32, m int) (bucketCap, groupCap int, ok bool) {
	g := uint64(m)
	b := (uint64(k) + 1) * g
	if g > math.MaxInt32 || b > math.MaxInt32 {
		return 0, 0, false
	}
	return int(b), int(g), true
}
