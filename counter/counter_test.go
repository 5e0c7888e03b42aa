// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64())

	c.Decrement()
	assert.Equal(t, uint64(4), c.Uint64())

	assert.Equal(t, uint64(104), c.Add(100))
	assert.Equal(t, "104", c.String())

	assert.Equal(t, uint64(0), c.Add(^uint64(103)))
	assert.True(t, c.IsZero())

	// underflow wraps, i.e. twos complement -1
	c.Decrement()
	assert.Equal(t, ^uint64(0), c.Uint64())
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const rounds = 1000
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j += 1 {
				c.Increment()
				c.Add(2)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(3*workers*rounds), c.Uint64())
}
