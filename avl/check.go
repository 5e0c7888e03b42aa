// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the structure of the tree and its arena
//
// returns the first problem found: up links, key order, heights and
// balance, live count, sentinel placement, free list and tombstones
func (tree *Tree[K, V]) Check() error {
	if none == tree.end || stateSentinel != tree.nodes[tree.end].state {
		return fault.ErrSentinelCorrupt
	}
	if none != tree.nodes[tree.end].right {
		return fault.ErrSentinelCorrupt
	}

	c := checker[K, V]{tree: tree}
	if _, err := c.check(tree.root, none); nil != err {
		return err
	}
	if c.count != tree.count {
		return fault.ErrCountMismatch
	}
	if c.previous != tree.end {
		return fault.ErrSentinelCorrupt
	}
	return tree.checkArena()
}

// internal: in-order consistency checker
type checker[K any, V any] struct {
	tree     *Tree[K, V]
	count    int
	previous handle
}

// returns the height of the sub-tree
func (c *checker[K, V]) check(h handle, up handle) (int, error) {
	if none == h {
		return -1, nil
	}
	p := &c.tree.nodes[h]
	if p.up != up {
		return 0, fault.ErrUpLinkMismatch
	}
	switch p.state {
	case stateLive:
		c.count += 1
	case stateSentinel:
		if h != c.tree.end {
			return 0, fault.ErrSentinelCorrupt
		}
	default:
		return 0, fault.ErrUnlinkedNode
	}

	hl, err := c.check(p.left, h)
	if nil != err {
		return 0, err
	}
	if none != c.previous && !c.tree.nodeBelow(c.previous, h) {
		return 0, fault.ErrKeyOrder
	}
	c.previous = h
	hr, err := c.check(p.right, h)
	if nil != err {
		return 0, err
	}

	height := hl + 1
	if hr > hl {
		height = hr + 1
	}
	if p.height != height {
		return 0, fault.ErrHeightMismatch
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, fault.ErrUnbalancedNode
	}
	return height, nil
}

// internal: reference counts and free list
func (tree *Tree[K, V]) checkArena() error {
	free := 0
	for h := tree.pool; none != h; h = tree.nodes[h].up {
		if stateFree != tree.nodes[h].state || free > len(tree.nodes) {
			return fault.ErrFreeListCorrupt
		}
		free += 1
	}
	if free != tree.freeNodes {
		return fault.ErrFreeListCorrupt
	}

	for i := 1; i < len(tree.nodes); i += 1 {
		p := &tree.nodes[i]
		if p.refs < 0 {
			return fault.ErrNegativeReferenceCount
		}
		switch p.state {
		case stateFree:
			free -= 1
		case stateTombstone:
			if 0 == p.refs {
				return fault.ErrUnreferencedTombstone
			}
		}
	}
	if 0 != free {
		return fault.ErrFreeListCorrupt
	}
	return nil
}
