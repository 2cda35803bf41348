// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

// bucket tags the newest stream position of a contiguous run of 1s whose
// count is a power of two. next/prev link it into the live bucket
// sequence (oldest at head, newest at tail); while free, next instead
// threads the bucketPool's free list.
type bucket struct {
	lastSeen   uint32
	next, prev int32
}

// bucketPool owns a fixed slab of bucket records and an intrusive free
// list threaded through their next field. Acquire and release are O(1)
// and never allocate once constructed.
type bucketPool struct {
	slab []bucket
	free int32
	used int
}

func newBucketPool(capacity int) *bucketPool {
	slab := make([]bucket, capacity)
	for i := range slab {
		if i == capacity-1 {
			slab[i].next = nilIdx
		} else {
			slab[i].next = int32(i + 1)
		}
	}
	free := nilIdx
	if capacity > 0 {
		free = 0
	}
	return &bucketPool{slab: slab, free: free}
}

// acquire pops the free head, returning its index. It returns
// ErrPoolExhausted when the pool is empty; under correct capacity
// sizing this never happens.
func (p *bucketPool) acquire() (int32, error) {
	if p.free == nilIdx {
		return nilIdx, ErrPoolExhausted
	}
	idx := p.free
	p.free = p.slab[idx].next
	p.slab[idx] = bucket{next: nilIdx, prev: nilIdx}
	p.used++
	return idx, nil
}

// release clears idx's live-sequence fields and pushes it onto the free
// list head.
func (p *bucketPool) release(idx int32) {
	p.slab[idx] = bucket{next: p.free, prev: nilIdx}
	p.free = idx
	p.used--
}
