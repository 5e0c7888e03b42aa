// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Cursor - a reference counted position in a tree
//
// a cursor holds its node until Release() is called, so every cursor
// obtained must eventually be released or assigned over
type Cursor[K any, V any] struct {
	tree *Tree[K, V]
	node handle
}

// Begin - cursor at the node with the lowest key, End() if empty
func (tree *Tree[K, V]) Begin() *Cursor[K, V] {
	return tree.cursor(tree.first(tree.root))
}

// End - cursor at the sentinel
func (tree *Tree[K, V]) End() *Cursor[K, V] {
	return tree.cursor(tree.end)
}

func (tree *Tree[K, V]) cursor(h handle) *Cursor[K, V] {
	tree.acquire(h)
	return &Cursor[K, V]{
		tree: tree,
		node: h,
	}
}

// the node under the cursor
func (c *Cursor[K, V]) current() *node[K, V] {
	if nil == c.tree || none == c.node {
		panic(fault.ErrCursorReleased)
	}
	p := &c.tree.nodes[c.node]
	if stateFree == p.state {
		fault.Panicf("avl: cursor at slot %d: %s", c.node, fault.ErrReclaimedNode)
	}
	return p
}

// Key - key of the node, panics at End()
func (c *Cursor[K, V]) Key() K {
	p := c.current()
	if stateSentinel == p.state {
		panic(fault.ErrCursorAtEnd)
	}
	return p.key
}

// Value - value of the node, panics at End()
//
// an erased node keeps the value it had when erased
func (c *Cursor[K, V]) Value() V {
	p := c.current()
	if stateSentinel == p.state {
		panic(fault.ErrCursorAtEnd)
	}
	return p.value
}

// AtEnd - true if positioned at End()
func (c *Cursor[K, V]) AtEnd() bool {
	return stateSentinel == c.current().state
}

// Erased - true if the key under the cursor has been erased
func (c *Cursor[K, V]) Erased() bool {
	return stateTombstone == c.current().state
}

// Equal - true if both cursors are on the same node
func (c *Cursor[K, V]) Equal(other *Cursor[K, V]) bool {
	return c.tree == other.tree && c.node == other.node
}

// Clone - another cursor on the same node
func (c *Cursor[K, V]) Clone() *Cursor[K, V] {
	c.current()
	return c.tree.cursor(c.node)
}

// Assign - move this cursor to the node of another cursor
func (c *Cursor[K, V]) Assign(other *Cursor[K, V]) {
	other.current()
	other.tree.acquire(other.node)
	if nil != c.tree && none != c.node {
		c.tree.release(c.node)
	}
	c.tree = other.tree
	c.node = other.node
}

// Release - drop the reference to the node, the cursor becomes unusable
//
// releasing twice is harmless
func (c *Cursor[K, V]) Release() {
	if nil == c.tree || none == c.node {
		return
	}
	h := c.node
	c.node = none
	c.tree.release(h)
}

// Next - advance to the node with the next highest key
// does nothing at End()
func (c *Cursor[K, V]) Next() {
	if stateSentinel == c.current().state {
		return
	}
	c.moveTo(c.tree.successor(c.node))
}

// Prev - move to the node with the next lowest key
// returns false and stays in place if there is none
func (c *Cursor[K, V]) Prev() bool {
	c.current()
	h := c.tree.predecessor(c.node)
	if none == h {
		return false
	}
	c.moveTo(h)
	return true
}

// new position is taken before the old one is let go
func (c *Cursor[K, V]) moveTo(h handle) {
	c.tree.acquire(h)
	old := c.node
	c.node = h
	c.tree.release(old)
}

// node above n in key order
//
// a tombstone first follows its frozen links; the result is kept only
// if no live node lies between, otherwise the key is sought again from
// the root since rotations may have moved nodes under a frozen link
func (tree *Tree[K, V]) successor(n handle) handle {
	c := tree.nextLink(n)
	if stateTombstone != tree.nodes[n].state {
		return c
	}
	if none != c && stateTombstone != tree.nodes[c].state {
		if p := tree.prevLink(c); none == p || !tree.nodeBelow(n, p) {
			return c
		}
	}
	return tree.ceiling(n)
}

// node below n in key order, none if n is the lowest
func (tree *Tree[K, V]) predecessor(n handle) handle {
	c := tree.prevLink(n)
	if stateTombstone != tree.nodes[n].state {
		return c
	}
	if none != c && stateLive == tree.nodes[c].state {
		if !tree.nodeBelow(tree.nextLink(c), n) {
			return c
		}
	}
	return tree.floor(n)
}

// step up along the links of n
//
// descending only while the left child is still above n keeps the walk
// out of stale left links, climbing until a parent is above n covers
// both a right child and a tombstone that is no longer its parent's child
func (tree *Tree[K, V]) nextLink(n handle) handle {
	if r := tree.nodes[n].right; none != r {
		h := r
		for {
			l := tree.nodes[h].left
			if none == l || !tree.nodeBelow(n, l) {
				return h
			}
			h = l
		}
	}
	for h := tree.nodes[n].up; none != h; h = tree.nodes[h].up {
		if tree.nodeBelow(n, h) {
			return h
		}
	}
	return none
}

// step down along the links of n, mirror of nextLink
func (tree *Tree[K, V]) prevLink(n handle) handle {
	if l := tree.nodes[n].left; none != l {
		h := l
		for {
			r := tree.nodes[h].right
			if none == r || !tree.nodeBelow(r, n) {
				return h
			}
			h = r
		}
	}
	for h := tree.nodes[n].up; none != h; h = tree.nodes[h].up {
		if tree.nodeBelow(h, n) {
			return h
		}
	}
	return none
}
