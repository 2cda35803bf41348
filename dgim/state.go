// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

import (
	"unsafe"

	"github.com/aristanetworks/dgim/glog"
	"github.com/aristanetworks/dgim/logger"
)

// State is a single DGIM histogram tracking an approximate count of
// 1-bits over the last N bits of a stream, accurate to a relative error
// of 1/k. It is not safe for concurrent mutation.
type State struct {
	n, k uint32
	m    int

	buckets *bucketPool
	groups  *groupPool

	bHead, bTail int32
	gHead, gTail int32
	groupCount   int

	now uint32

	mergeEvents  uint64
	mergeCounter *uint64

	log    logger.Logger
	closed bool
}

// Option configures optional collaborators of a State at construction.
type Option func(*State)

// WithLogger overrides the default glog-backed Logger used to report
// fatal invariant and precondition violations.
func WithLogger(l logger.Logger) Option {
	return func(s *State) { s.log = l }
}

// WithMergeCounter points the State's merge-event counter at a
// caller-owned uint64, so callers that run several States can aggregate
// merge activity across them. By default each State counts its own
// merges independently.
func WithMergeCounter(counter *uint64) Option {
	return func(s *State) { s.mergeCounter = counter }
}

// New constructs a State for a window of size n and accuracy parameter k
// (relative error 1/k), returning the number of bytes of heap-backed
// storage it owns. n and k must both be at least 1; violating this is a
// precondition violation and is fatal. If the requested capacities
// cannot be represented, New returns (nil, 0) and the state must not be
// used.
func New(n, k uint32, opts ...Option) (*State, uint64) {
	s := &State{log: &glog.Glog{}}
	for _, opt := range opts {
		opt(s)
	}
	if n < 1 || k < 1 {
		s.log.Fatalf("dgim: invalid parameters N=%d k=%d: both must be >= 1", n, k)
	}

	m := sizeClasses(n, k)
	bucketCap, groupCap, ok := poolCapacities(k, m)
	if !ok {
		return nil, 0
	}

	s.n, s.k, s.m = n, k, m
	s.buckets = newBucketPool(bucketCap)
	s.groups = newGroupPool(groupCap)
	s.bHead, s.bTail = nilIdx, nilIdx
	s.gHead, s.gTail = nilIdx, nilIdx

	bytes := uint64(unsafe.Sizeof(*s)) +
		uint64(bucketCap)*uint64(unsafe.Sizeof(bucket{})) +
		uint64(groupCap)*uint64(unsafe.Sizeof(group{}))
	return s, bytes
}

// Close releases the State's pool storage. The State must not be used
// afterwards.
func (s *State) Close() {
	s.buckets = nil
	s.groups = nil
	s.closed = true
}

func (s *State) assertOpen() {
	if s.closed {
		s.log.Fatal("dgim: State used after Close")
	}
}

func (s *State) mergeEventsValue() uint64 {
	if s.mergeCounter != nil {
		return *s.mergeCounter
	}
	return s.mergeEvents
}

func (s *State) recordMerge() {
	if s.mergeCounter != nil {
		*s.mergeCounter++
		return
	}
	s.mergeEvents++
}
