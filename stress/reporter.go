// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/util"
)

//go:generate mockgen -source=reporter.go -destination=mocks/reporter.go -package=mocks

// Result - outcome of one round of one worker
type Result struct {
	Worker   int    `json:"worker"`
	Round    int    `json:"round"`
	Inserted int    `json:"inserted"`
	Erased   int    `json:"erased"`
	Steps    int    `json:"steps"`    // cursor advances
	Retained int    `json:"retained"` // erased nodes held by cursors before release
	Live     int    `json:"live"`
	Err      error  `json:"-"`
	Error    string `json:"error,omitempty"`
}

// Totals - summary of a complete run
type Totals struct {
	Seed     int64         `json:"seed"`
	Rounds   uint64        `json:"rounds"`
	Failures uint64        `json:"failures"`
	Inserted uint64        `json:"inserted"`
	Erased   uint64        `json:"erased"`
	Steps    uint64        `json:"steps"`
	Retained uint64        `json:"retained"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Reporter - receives results as they complete
//
// all calls are made from the goroutine that called Run
type Reporter interface {
	Round(Result)
	Finished(Totals)
}

// LogReporter - write results to a logger channel
type LogReporter struct {
	log *logger.L
}

// NewLogReporter - reporter on the given channel
func NewLogReporter(log *logger.L) *LogReporter {
	return &LogReporter{
		log: log,
	}
}

// Round - failures at error level, passes at debug level
func (r *LogReporter) Round(result Result) {
	if nil != result.Err {
		message := fmt.Sprintf("worker: %d  round: %d  failed: %s", result.Worker, result.Round, result.Err)
		util.LogError(r.log, util.CoRed, message)
		return
	}
	r.log.Debugf("worker: %d  round: %d  inserted: %d  erased: %d  steps: %d  retained: %d  live: %d",
		result.Worker, result.Round, result.Inserted, result.Erased, result.Steps, result.Retained, result.Live)
}

// Finished - one line summary
func (r *LogReporter) Finished(totals Totals) {
	message := fmt.Sprintf("rounds: %d  failures: %d  inserted: %d  erased: %d  steps: %d  retained: %d  seed: %d  elapsed: %s",
		totals.Rounds, totals.Failures, totals.Inserted, totals.Erased, totals.Steps, totals.Retained, totals.Seed, totals.Elapsed)
	if 0 == totals.Failures {
		util.LogInfo(r.log, util.CoGreen, message)
	} else {
		util.LogWarn(r.log, util.CoYellow, message)
	}
}
