// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stress - randomised consistency workload for the avl tree
//
// every worker goroutine owns its own tree for the whole of a round:
// random keys are inserted, cursors are parked at random positions,
// random keys are erased underneath them and then every cursor is
// walked to the end.  Each round checks that the walk sees strictly
// increasing keys, that the tree structure is intact and that no
// erased node outlives the cursors that held it.
package stress
