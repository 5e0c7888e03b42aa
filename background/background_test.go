// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/background"
)

type bg1 struct {
	count int
}

const (
	initialCount1 = 246
	finalCount1   = 987654321
	initialCount2 = 777
	finalCount2   = 897645312
)

func TestBackground(t *testing.T) {

	proc1 := &bg1{
		count: initialCount1,
	}
	proc2 := &bg1{
		count: initialCount2,
	}

	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	// Stop waits, so the final values are already written
	assert.Equal(t, finalCount1, proc1.count, "process 1 did not finish")
	assert.Equal(t, finalCount2, proc2.count, "process 2 did not finish")

	assert.NotPanics(t, p.Stop, "second stop")
}

func TestStopWithoutProcesses(t *testing.T) {
	p := background.Start(nil, nil)
	assert.NotPanics(t, p.Stop)
}

func (state *bg1) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

	n := 0
	switch state.count {
	case initialCount1:
		n = 1
	case initialCount2:
		n = 2
	default:
		t.Errorf("initialisation failed: unexpected initial count: %d", state.count)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
		}
		state.count += 9
	}

	switch n {
	case 1:
		state.count = finalCount1
	case 2:
		state.count = finalCount2
	default:
		t.Errorf("unexpected n: %d", n)
	}
}
