// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// running totals shared by the workers
type statistics struct {
	rounds   counter.Counter
	failures counter.Counter
	inserted counter.Counter
	erased   counter.Counter
	steps    counter.Counter
	retained counter.Counter
}

func (s *statistics) add(result Result) {
	s.rounds.Increment()
	if nil != result.Err {
		s.failures.Increment()
	}
	s.inserted.Add(uint64(result.Inserted))
	s.erased.Add(uint64(result.Erased))
	s.steps.Add(uint64(result.Steps))
	s.retained.Add(uint64(result.Retained))
}

func (s *statistics) totals(seed int64, elapsed time.Duration) Totals {
	return Totals{
		Seed:     seed,
		Rounds:   s.rounds.Uint64(),
		Failures: s.failures.Uint64(),
		Inserted: s.inserted.Uint64(),
		Erased:   s.erased.Uint64(),
		Steps:    s.steps.Uint64(),
		Retained: s.retained.Uint64(),
		Elapsed:  elapsed,
	}
}

// Run - execute the workload, reporting each round as it completes
//
// closing shutdown stops every worker before its next round. Returns
// the totals and the first failure seen
func Run(conf *Configuration, reporter Reporter, log *logger.L, shutdown <-chan struct{}) (Totals, error) {
	if nil == log {
		return Totals{}, fault.ErrInvalidLoggerChannel
	}
	if err := conf.Validate(); nil != err {
		return Totals{}, err
	}

	seed := conf.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	log.Infof("start: workers: %d  rounds: %d  seed: %d", conf.Workers, conf.Rounds, seed)

	s := &statistics{}
	results := make(chan Result, conf.Workers)
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < conf.Workers; w += 1 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			// each worker has its own sequence so a seed replays exactly
			rng := rand.New(rand.NewSource(seed + int64(worker)))
			for round := 0; round < conf.Rounds; round += 1 {
				select {
				case <-shutdown:
					log.Debugf("worker: %d  stopped after: %d rounds", worker, round)
					return
				default:
				}
				result := runRound(conf, rng)
				result.Worker = worker
				result.Round = round
				s.add(result)
				results <- result
			}
		}(w)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var first error
	for result := range results {
		if nil != result.Err && nil == first {
			first = result.Err
		}
		reporter.Round(result)
	}

	totals := s.totals(seed, time.Since(start))
	reporter.Finished(totals)
	log.Infof("finish: rounds: %d  failures: %d", totals.Rounds, totals.Failures)

	return totals, first
}

// one round on a fresh tree
//
// a panic from the tree is turned into a failed result so the other
// workers can carry on
func runRound(conf *Configuration, rng *rand.Rand) (result Result) {
	defer func() {
		if r := recover(); nil != r {
			result.Err = fault.ProcessError(fmt.Sprintf("panic: %v", r))
			result.Error = result.Err.Error()
		}
	}()

	tree := avl.New[int, int]()
	for i := 0; i < conf.Insertions; i += 1 {
		if tree.Insert(rng.Intn(conf.KeyRange), i) {
			result.Inserted += 1
		}
	}

	cursors := make([]*avl.Cursor[int, int], 0, conf.Cursors)
	for i := 0; i < conf.Cursors; i += 1 {
		c := tree.Begin()
		skip := 0
		if conf.MaxSkip > 0 {
			skip = rng.Intn(conf.MaxSkip)
		}
		for j := 1; j < skip && !c.AtEnd(); j += 1 {
			c.Next()
			result.Steps += 1
		}
		cursors = append(cursors, c)
	}

	for i := 0; i < conf.Erasures; i += 1 {
		if tree.Erase(rng.Intn(conf.KeyRange)) {
			result.Erased += 1
		}
	}

	limit := tree.Count() + 1
	for _, c := range cursors {
		n, err := walk(c, limit)
		result.Steps += n
		if nil != err {
			return failed(result, err)
		}
	}

	if err := tree.Check(); nil != err {
		return failed(result, err)
	}

	result.Retained = tree.Stats().Retained
	for _, c := range cursors {
		c.Release()
	}
	if 0 != tree.Stats().Retained {
		return failed(result, fault.ErrRetainedNodes)
	}
	result.Live = tree.Count()
	return result
}

// advance a cursor to the end, keys must strictly increase on the way
func walk(c *avl.Cursor[int, int], limit int) (int, error) {
	if c.AtEnd() {
		return 0, nil
	}
	previous := c.Key()
	for n := 1; n <= limit; n += 1 {
		c.Next()
		if c.AtEnd() {
			return n, nil
		}
		key := c.Key()
		if key <= previous {
			return n, fault.ErrKeyOrder
		}
		previous = key
	}
	return limit, fault.ErrCursorNotAtEnd
}

func failed(result Result, err error) Result {
	result.Err = err
	result.Error = err.Error()
	return result
}
