// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent sub-tree
func (tree *Tree[K, V]) heightOf(h handle) int {
	if none == h {
		return -1
	}
	return tree.nodes[h].height
}

// recompute the height of a node from its children
func (tree *Tree[K, V]) updateHeight(h handle) {
	p := &tree.nodes[h]
	hl := tree.heightOf(p.left)
	hr := tree.heightOf(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

// height(left) - height(right), zero for an absent node
func (tree *Tree[K, V]) balanceOf(h handle) int {
	if none == h {
		return 0
	}
	p := &tree.nodes[h]
	return tree.heightOf(p.left) - tree.heightOf(p.right)
}

// make child take the place of old below parent, or become the root
func (tree *Tree[K, V]) replaceChild(parent handle, old handle, child handle) {
	if none == parent {
		tree.root = child
		return
	}
	p := &tree.nodes[parent]
	if old == p.left {
		p.left = child
	} else {
		p.right = child
	}
}

// single LL rotation: left child is lifted over h
func (tree *Tree[K, V]) rotateLL(h handle) handle {
	p := &tree.nodes[h]
	p1 := p.left
	c := &tree.nodes[p1]

	up := p.up
	p.left = c.right
	if none != p.left {
		tree.nodes[p.left].up = h
	}
	c.right = h
	c.up = up
	p.up = p1
	tree.replaceChild(up, h, p1)

	tree.updateHeight(h)
	tree.updateHeight(p1)
	return p1
}

// single RR rotation: right child is lifted over h
func (tree *Tree[K, V]) rotateRR(h handle) handle {
	p := &tree.nodes[h]
	p1 := p.right
	c := &tree.nodes[p1]

	up := p.up
	p.right = c.left
	if none != p.right {
		tree.nodes[p.right].up = h
	}
	c.left = h
	c.up = up
	p.up = p1
	tree.replaceChild(up, h, p1)

	tree.updateHeight(h)
	tree.updateHeight(p1)
	return p1
}

// double LR rotation
func (tree *Tree[K, V]) rotateLR(h handle) handle {
	tree.rotateRR(tree.nodes[h].left)
	return tree.rotateLL(h)
}

// double RL rotation
func (tree *Tree[K, V]) rotateRL(h handle) handle {
	tree.rotateLL(tree.nodes[h].right)
	return tree.rotateRR(h)
}

// restore the balance of a single node, returns the root of its
// (possibly rotated) sub-tree
//
// a zero balance child only occurs after a delete and takes the
// single rotation
func (tree *Tree[K, V]) rebalance(h handle) handle {
	tree.updateHeight(h)
	bf := tree.balanceOf(h)
	switch {
	case bf > 1:
		if tree.balanceOf(tree.nodes[h].left) >= 0 {
			return tree.rotateLL(h)
		}
		return tree.rotateLR(h)
	case bf < -1:
		if tree.balanceOf(tree.nodes[h].right) <= 0 {
			return tree.rotateRR(h)
		}
		return tree.rotateRL(h)
	}
	return h
}

// walk from a node to the root rebalancing every level
func (tree *Tree[K, V]) rebalanceFrom(h handle) {
	for none != h {
		h = tree.rebalance(h)
		h = tree.nodes[h].up
	}
}
