// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

// Next advances the logical clock by one tick, retires any bucket that
// has aged out of the window, and, if bit is set, records a new 1 and
// runs the merge cascade. It returns the current estimate of how many
// 1s appear among the most recent N stream positions.
func (s *State) Next(bit bool) uint32 {
	s.assertOpen()

	s.now++
	s.expireHead()
	if bit {
		s.insertOne()
	}
	return s.estimate()
}
