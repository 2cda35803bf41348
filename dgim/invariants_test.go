// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

import (
	"math/rand"
	"testing"
)

// checkInvariants asserts the structural invariants that must hold on a
// State after every Next call.
func checkInvariants(t *testing.T, s *State) {
	t.Helper()

	// 1. Bucket timestamps strictly increase head to tail.
	var lastSeen uint32
	first := true
	bucketCount := 0
	for b := s.bHead; b != nilIdx; b = s.buckets.slab[b].next {
		ts := s.buckets.slab[b].lastSeen
		if !first && ts <= lastSeen {
			t.Fatalf("bucket timestamps not strictly increasing: %d after %d", ts, lastSeen)
		}
		lastSeen, first = ts, false
		bucketCount++
		if bucketCount > len(s.buckets.slab) {
			t.Fatalf("bucket sequence longer than pool capacity, or contains a cycle")
		}
	}

	// 2, 4, 6. Walk groups from tail (size class 0) to head, checking
	// per-group capacity, that the walk ends at the head group, that the
	// groups' bucket spans exactly tile the bucket sequence, and that the
	// groupCount bookkeeping matches the chain length.
	spanStart := s.bHead
	groupCount := 0
	var prevGroupWasHead bool
	for g := s.gTail; g != nilIdx; g = s.groups.slab[g].prev {
		grp := s.groups.slab[g]
		groupCount++
		if prevGroupWasHead {
			t.Fatalf("group sequence continues past the head group")
		}
		isHead := g == s.gHead
		prevGroupWasHead = isHead
		if !isHead && (grp.count < 1 || grp.count > s.k+1) {
			t.Fatalf("non-head group count %d out of [1, %d]", grp.count, s.k+1)
		}
		if grp.count < 1 {
			t.Fatalf("group %d has non-positive count %d", g, grp.count)
		}
		if grp.head != spanStart {
			t.Fatalf("group %d span does not start where the previous one ended", g)
		}
		b := grp.head
		for i := uint32(1); i < grp.count; i++ {
			b = s.buckets.slab[b].next
			if b == nilIdx {
				t.Fatalf("group %d span runs past the end of the bucket sequence", g)
			}
		}
		if b != grp.tail {
			t.Fatalf("group %d tail does not match its counted span", g)
		}
		spanStart = s.buckets.slab[b].next
	}
	if spanStart != nilIdx {
		t.Fatalf("bucket sequence has buckets not covered by any group")
	}
	if groupCount != s.groupCount {
		t.Fatalf("groupCount bookkeeping %d does not match actual chain length %d", s.groupCount, groupCount)
	}

	// 5. Live records fit within pool capacities.
	if s.buckets.used > len(s.buckets.slab) {
		t.Fatalf("bucket pool over capacity: used=%d cap=%d", s.buckets.used, len(s.buckets.slab))
	}
	if s.groups.used > len(s.groups.slab) {
		t.Fatalf("group pool over capacity: used=%d cap=%d", s.groups.used, len(s.groups.slab))
	}
	if bucketCount != s.buckets.used {
		t.Fatalf("live bucket chain length %d does not match pool's used counter %d", bucketCount, s.buckets.used)
	}

	// 6. Group count never exceeds m.
	if s.groupCount > s.m {
		t.Fatalf("group count %d exceeds m=%d", s.groupCount, s.m)
	}

	// 7. Total bucket count never exceeds (k+1)*m.
	if uint32(bucketCount) > (s.k+1)*uint32(s.m) {
		t.Fatalf("bucket count %d exceeds (k+1)*m=%d", bucketCount, (s.k+1)*uint32(s.m))
	}
}

// trueCount returns the exact number of 1s among the last n entries of
// history (oldest first), used as a reference for the error-bound
// property. It exists only to verify dgim's approximation, never inside
// the package itself.
func trueCount(history []bool, n uint32) uint32 {
	start := 0
	if uint32(len(history)) > n {
		start = len(history) - int(n)
	}
	var c uint32
	for _, b := range history[start:] {
		if b {
			c++
		}
	}
	return c
}

func TestInvariantsRandomStreams(t *testing.T) {
	params := []struct{ n, k uint32 }{
		{5, 1}, {10, 2}, {4, 1}, {3, 1}, {37, 3}, {1, 1}, {2, 5},
	}
	for _, p := range params {
		p := p
		t.Run("", func(t *testing.T) {
			s, bytes := New(p.n, p.k)
			if s == nil || bytes == 0 {
				t.Fatalf("New(%d, %d) failed", p.n, p.k)
			}
			rng := rand.New(rand.NewSource(int64(p.n)*1000 + int64(p.k)))
			var history []bool
			for i := 0; i < 500; i++ {
				bit := rng.Intn(3) == 0 // skew toward zeros like a sparse stream
				history = append(history, bit)
				est := s.Next(bit)
				checkInvariants(t, s)

				tc := trueCount(history, p.n)
				if tc == 0 {
					if est != 0 {
						t.Fatalf("tick %d: true count is 0 but estimate is %d", i, est)
					}
					continue
				}
				var diff uint32
				if est > tc {
					diff = est - tc
				} else {
					diff = tc - est
				}
				// |E-T| <= T/k, checked without rounding as diff*k <= T.
				if uint64(diff)*uint64(p.k) > uint64(tc) {
					t.Fatalf("tick %d: |estimate(%d)-true(%d)| exceeds true/%d", i, est, tc, p.k)
				}
			}
		})
	}
}
