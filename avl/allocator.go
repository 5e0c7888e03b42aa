// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// index of a node in the tree's arena, zero means no node
type handle uint32

const none handle = 0

// lifecycle of an arena slot
type state uint8

const (
	stateFree      state = iota // on the free list
	stateLive                   // linked into the tree and counted
	stateTombstone              // erased but still referenced
	stateSentinel               // the end marker
)

func (s state) String() string {
	switch s {
	case stateFree:
		return "free"
	case stateLive:
		return "live"
	case stateTombstone:
		return "tombstone"
	case stateSentinel:
		return "sentinel"
	default:
		return "unknown"
	}
}

// a node in the tree
type node[K any, V any] struct {
	left   handle // left sub-tree
	right  handle // right sub-tree
	up     handle // points to parent node, next free slot when on the free list
	key    K      // key part for ordering
	value  V      // value part for data storage
	height int    // 0 for a leaf, absent sub-tree counts as -1
	refs   int    // cursors plus pins held by tombstones
	state  state
}

// Stats - arena usage of a tree
type Stats struct {
	Live     int // nodes reachable in key order, sentinel excluded
	Retained int // erased nodes kept for cursors
	Free     int // reclaimed slots awaiting reuse
	Total    int // slots allocated, sentinel included
}

// Stats - return the current arena usage
func (tree *Tree[K, V]) Stats() Stats {
	total := len(tree.nodes) - 1 // slot zero is never used
	return Stats{
		Live:     tree.count,
		Retained: total - tree.count - tree.freeNodes - 1,
		Free:     tree.freeNodes,
		Total:    total,
	}
}

// allocate a new node, reuses reclaimed slots if any are available
//
// the arena may move, so no node pointer survives this call
func (tree *Tree[K, V]) newNode(key K, value V, s state) handle {
	if none == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panicf("avl: free list empty with %d free nodes", tree.freeNodes)
		}
		tree.nodes = append(tree.nodes, node[K, V]{
			key:   key,
			value: value,
			state: s,
		})
		return handle(len(tree.nodes) - 1)
	}
	h := tree.pool
	p := &tree.nodes[h]
	if stateFree != p.state {
		fault.Panicf("avl: free list slot %d is %s", h, p.state)
	}
	tree.pool = p.up
	*p = node[K, V]{
		key:   key,
		value: value,
		state: s,
	}
	tree.freeNodes -= 1
	return h
}

// reclaim a node and put its slot on the free list
func (tree *Tree[K, V]) freeNode(h handle) {
	tree.nodes[h] = node[K, V]{
		up:    tree.pool, // use as free list pointer
		state: stateFree,
	}
	tree.pool = h
	tree.freeNodes += 1
}
