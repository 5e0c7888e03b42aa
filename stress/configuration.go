// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Configuration - shape of the workload
type Configuration struct {
	Rounds     int   `gluamapper:"rounds" json:"rounds"`         // rounds per worker
	Workers    int   `gluamapper:"workers" json:"workers"`       // concurrent goroutines
	Insertions int   `gluamapper:"insertions" json:"insertions"` // random keys inserted per round
	Erasures   int   `gluamapper:"erasures" json:"erasures"`     // random keys erased per round
	Cursors    int   `gluamapper:"cursors" json:"cursors"`       // cursors parked per round
	MaxSkip    int   `gluamapper:"max_skip" json:"max_skip"`     // cursor start is below this many steps from Begin
	KeyRange   int   `gluamapper:"key_range" json:"key_range"`   // keys are in [0, KeyRange)
	Seed       int64 `gluamapper:"seed" json:"seed"`             // zero picks a seed from the clock
}

// Validate - check the values are usable
func (conf *Configuration) Validate() error {
	switch {
	case conf.Rounds < 1:
		return fault.ErrInvalidRoundCount
	case conf.Workers < 1:
		return fault.ErrInvalidWorkerCount
	case conf.Insertions < 1:
		return fault.ErrInvalidInsertionCount
	case conf.Erasures < 0:
		return fault.ErrInvalidErasureCount
	case conf.Cursors < 0:
		return fault.ErrInvalidCursorCount
	case conf.MaxSkip < 0:
		return fault.ErrInvalidSkipCount
	case conf.KeyRange < 1:
		return fault.ErrInvalidKeyRange
	}
	return nil
}
