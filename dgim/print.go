// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

// Print dumps the histogram's internal state for debugging: k, N, m,
// the logical clock, pool occupancies, the head/tail of both sequences,
// and the cumulative merge count. It has no semantic effect.
func (s *State) Print() {
	s.log.Infof(
		"dgim: k=%d N=%d m=%d now=%d "+
			"buckets(used=%d/%d head=%d tail=%d) "+
			"groups(used=%d/%d head=%d tail=%d) "+
			"merges=%d",
		s.k, s.n, s.m, s.now,
		s.buckets.used, len(s.buckets.slab), s.bHead, s.bTail,
		s.groups.used, len(s.groups.slab), s.gHead, s.gTail,
		s.mergeEventsValue(),
	)
}
