// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package dgim maintains an approximate count of 1-bits within a sliding
// window over a binary stream, using the Datar-Gionis-Indyk-Motwani
// exponential-histogram algorithm.
//
// For a window of size N and accuracy parameter k (relative error
// ε = 1/k), a State answers, after every bit ingested via Next, "how
// many 1s appeared among the most recent N bits" with error at most
// ε times the true count, using O(k·log(N/k)) memory regardless of
// how long the stream runs.
//
// A State is not safe for concurrent use; callers ingesting from
// multiple goroutines must serialize their own calls to Next.
package dgim
