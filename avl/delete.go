// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - removes a specific key from the tree
// returns false if the key was not present
//
// the node is unlinked and a replacement is moved into its place, it
// never copies data between nodes so cursors stay on their node
func (tree *Tree[K, V]) Erase(key K) bool {
	h, found := tree.search(key)
	if !found {
		return false
	}
	tree.count -= 1

	// copy of the links, these stay frozen in the erased node
	q := tree.nodes[h]

	// replacement: highest on the left, else lowest on the right
	r := none
	if none != q.left {
		r = tree.last(q.left)
	} else if none != q.right {
		r = tree.first(q.right)
	}

	start := q.up // leaf case
	if none != r {
		p := &tree.nodes[r]
		rp := p.up
		if rp == h {
			// direct child keeps its own sub-tree and takes the other side
			start = r
			if r == q.left {
				p.right = q.right
			} else {
				p.left = q.left
			}
		} else {
			// an extremal node has at most one child, lift it
			start = rp
			child := p.left
			if none == child {
				child = p.right
			}
			tree.replaceChild(rp, r, child)
			if none != child {
				tree.nodes[child].up = rp
			}
			p.left = q.left
			p.right = q.right
		}
		if none != p.left {
			tree.nodes[p.left].up = r
		}
		if none != p.right {
			tree.nodes[p.right].up = r
		}
		p.up = q.up
		p.height = q.height
	}
	tree.replaceChild(q.up, h, r)

	// deletion may need rotations at several levels
	tree.rebalanceFrom(start)

	tree.bury(h)
	return true
}
