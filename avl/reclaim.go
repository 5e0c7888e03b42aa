// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// turn an unlinked node into a tombstone
//
// an unreferenced node is reclaimed immediately, otherwise it pins
// the nodes its frozen links point to so a cursor can still follow them
func (tree *Tree[K, V]) bury(h handle) {
	p := &tree.nodes[h]
	p.state = stateTombstone
	if 0 == p.refs {
		tree.freeNode(h)
		return
	}
	for _, n := range [...]handle{p.up, p.left, p.right} {
		if none != n {
			tree.acquire(n)
		}
	}
}

// take a reference on a node
func (tree *Tree[K, V]) acquire(h handle) {
	p := &tree.nodes[h]
	if stateFree == p.state {
		fault.Panicf("avl: acquire slot %d: %s", h, fault.ErrReclaimedNode)
	}
	p.refs += 1
}

// drop a reference on a node; a tombstone left without references is
// reclaimed and drops the pins it held, which can cascade
func (tree *Tree[K, V]) release(h handle) {
	pending := []handle{h}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		p := &tree.nodes[n]
		if stateFree == p.state {
			fault.Panicf("avl: release slot %d: %s", n, fault.ErrReclaimedNode)
		}
		p.refs -= 1
		if p.refs < 0 {
			fault.Panicf("avl: release slot %d: %s", n, fault.ErrNegativeReferenceCount)
		}
		if 0 != p.refs || stateTombstone != p.state {
			continue
		}

		for _, m := range [...]handle{p.up, p.left, p.right} {
			if none != m {
				pending = append(pending, m)
			}
		}
		tree.freeNode(n)
	}
}
