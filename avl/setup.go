// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// initial arena capacity, grows as needed
const initialNodes = 64

// Pair - a key with its associated value
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Tree - type to hold the nodes of a tree
type Tree[K any, V any] struct {
	nodes     []node[K, V] // arena, slot zero is not used
	pool      handle       // head of the list of reclaimed slots
	freeNodes int          // number of slots in the pool
	root      handle
	end       handle // the sentinel
	count     int
	less      func(a, b K) bool
}

// New - create an initially empty tree ordered by "<"
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWithComparator[K, V](cmp.Less[K])
}

// NewWithComparator - create an initially empty tree ordered by a
// strict weak ordering
func NewWithComparator[K any, V any](less func(a, b K) bool) *Tree[K, V] {
	if nil == less {
		panic(fault.ErrMissingComparator)
	}
	tree := &Tree[K, V]{
		nodes: make([]node[K, V], 1, initialNodes),
		less:  less,
	}
	var key K
	var value V
	tree.end = tree.newNode(key, value, stateSentinel)
	tree.root = tree.end
	return tree
}

// NewFromPairs - create a tree ordered by "<" and insert the pairs in
// order, later duplicates are ignored
func NewFromPairs[K cmp.Ordered, V any](pairs ...Pair[K, V]) *Tree[K, V] {
	tree := New[K, V]()
	for _, p := range pairs {
		tree.InsertPair(p)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return 0 == tree.count
}

// Count - number of live nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}
