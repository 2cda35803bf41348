// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

// group is a maximal contiguous run of buckets sharing the same size
// class. head/tail are bucket-arena indices delimiting the run; next/prev
// link neighboring groups (head group holds the largest, oldest size
// class; tail group holds size class 1, the newest). While free, next
// threads the groupPool's free list.
type group struct {
	count      uint32
	head, tail int32
	next, prev int32
}

// groupPool owns a fixed slab of group records with the same intrusive
// free-list discipline as bucketPool.
type groupPool struct {
	slab []group
	free int32
	used int
}

func newGroupPool(capacity int) *groupPool {
	slab := make([]group, capacity)
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
	return &groupPool{slab: slab, free: free}
}

// acquire pops the free head, returning its index. It returns
// ErrPoolExhausted when the pool is empty; under correct capacity
// sizing this never happens.
func (p *groupPool) acquire() (int32, error) {
	if p.free == nilIdx {
		return nilIdx, ErrPoolExhausted
	}
	idx := p.free
	p.free = p.slab[idx].next
	p.slab[idx] = group{head: nilIdx, tail: nilIdx, next: nilIdx, prev: nilIdx}
	p.used++
	return idx, nil
}

func (p *groupPool) release(idx int32) {
	p.slab[idx] = group{head: nilIdx, tail: nilIdx, next: p.free, prev: nilIdx}
	p.free = idx
	p.used--
}
