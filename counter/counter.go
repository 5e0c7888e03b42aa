// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - tallies shared between worker goroutines
package counter

import (
	"strconv"
	"sync/atomic"
)

// Counter - an unsigned 64 bit tally that any goroutine may update
type Counter uint64

// Increment - add one, returns the new total
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract one, returns the new total
// wraps around below zero
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Add - add a batch of operations, returns the new total
func (c *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(c), n)
}

// Uint64 - current total
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true if nothing has been counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

// String - decimal total, for log lines
func (c *Counter) String() string {
	return strconv.FormatUint(c.Uint64(), 10)
}
