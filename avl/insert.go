// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
// returns false and leaves the tree unchanged if the key is present
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	parent, found := tree.search(key)
	if found {
		return false
	}

	n := tree.newNode(key, value, stateLive)
	tree.nodes[n].up = parent

	// the sentinel is above every key so it only gains left children
	if tree.keyBelow(key, parent) {
		tree.nodes[parent].left = n
	} else {
		tree.nodes[parent].right = n
	}
	tree.count += 1

	tree.rebalanceFrom(parent)
	return true
}

// InsertPair - insert a key/value pair
func (tree *Tree[K, V]) InsertPair(p Pair[K, V]) bool {
	return tree.Insert(p.Key, p.Value)
}
