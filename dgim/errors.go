// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

import "errors"

// ErrPoolExhausted indicates a pool's free list was empty on acquire.
// Under correct capacity sizing (see sizeClasses and poolCapacities)
// this can only happen if the maintenance invariants have been broken by
// a bug elsewhere in the package; it is never returned to a caller, only
// named in the message passed to Logger.Fatal.
var ErrPoolExhausted = errors.New("pool exhausted")
