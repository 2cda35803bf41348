// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

// expireHead retires the oldest bucket if it has fallen outside the
// window. At most one bucket can expire per tick since now advances by
// exactly 1 and timestamps strictly increase.
func (s *State) expireHead() {
	b := s.bHead
	if b == nilIdx {
		return
	}
	if s.now-s.buckets.slab[b].lastSeen < s.n {
		return
	}

	next := s.buckets.slab[b].next
	s.bHead = next
	if next == nilIdx {
		s.bTail = nilIdx
	} else {
		s.buckets.slab[next].prev = nilIdx
	}
	s.buckets.release(b)

	g := s.gHead
	if g == nilIdx {
		s.log.Fatal("dgim: bucket expired with no owning group")
	}
	grp := &s.groups.slab[g]
	if grp.count == 0 {
		s.log.Fatal("dgim: group count underflow")
	}
	grp.count--
	grp.head = next

	if grp.count == 0 {
		succ := grp.next
		s.groups.release(g)
		s.gHead = succ
		if succ != nilIdx {
			s.groups.slab[succ].prev = nilIdx
		} else {
			s.gTail = nilIdx
		}
		s.groupCount--
	}
}
