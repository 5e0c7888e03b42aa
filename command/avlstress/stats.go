// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	mega = 1048576
)

// periodic memory statistics, a background process
type memstats struct {
	log   *logger.L
	delay time.Duration
}

func newMemstats(delay time.Duration) *memstats {
	return &memstats{
		log:   logger.New("memory"),
		delay: delay,
	}
}

func (m *memstats) Run(args interface{}, shutdown <-chan struct{}) {
	log := m.log
	log.Info("starting…")

loop:
	for {
		var s runtime.MemStats
		runtime.ReadMemStats(&s)

		text, err := json.Marshal(s)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Debugf("stats: %s", text)
		}
		a := s.Alloc / mega
		t := s.TotalAlloc / mega
		o := s.Sys / mega
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  GC cycles: %d", a, t, o, s.NumGC)

		select {
		case <-shutdown:
			break loop
		case <-time.After(m.delay):
		}
	}
	log.Info("stopped")
}
