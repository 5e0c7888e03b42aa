// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - cursor at the node holding key, or at End() if not present
func (tree *Tree[K, V]) Find(key K) *Cursor[K, V] {
	h, found := tree.search(key)
	if !found {
		h = tree.end
	}
	return tree.cursor(h)
}

// search from the root: returns the node with an equal key, or the
// node below which the key would be attached
func (tree *Tree[K, V]) search(key K) (handle, bool) {
	h := tree.root
	for {
		p := &tree.nodes[h]
		if tree.keyBelow(key, h) {
			if none == p.left {
				return h, false
			}
			h = p.left
		} else if tree.less(p.key, key) {
			if none == p.right {
				return h, false
			}
			h = p.right
		} else {
			return h, true
		}
	}
}

// key < node, the sentinel is above every key
func (tree *Tree[K, V]) keyBelow(key K, h handle) bool {
	p := &tree.nodes[h]
	if stateSentinel == p.state {
		return true
	}
	return tree.less(key, p.key)
}

// node a < node b; tombstones keep their key so stale nodes compare too
func (tree *Tree[K, V]) nodeBelow(a handle, b handle) bool {
	pa := &tree.nodes[a]
	if stateSentinel == pa.state {
		return false
	}
	pb := &tree.nodes[b]
	if stateSentinel == pb.state {
		return true
	}
	return tree.less(pa.key, pb.key)
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V]) first(h handle) handle {
	for none != tree.nodes[h].left {
		h = tree.nodes[h].left
	}
	return h
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V]) last(h handle) handle {
	for none != tree.nodes[h].right {
		h = tree.nodes[h].right
	}
	return h
}

// lowest linked node above n, the sentinel if there is none
func (tree *Tree[K, V]) ceiling(n handle) handle {
	found := tree.end
	h := tree.root
	for none != h {
		if tree.nodeBelow(n, h) {
			found = h
			h = tree.nodes[h].left
		} else {
			h = tree.nodes[h].right
		}
	}
	return found
}

// highest linked node below n, none if there is none
func (tree *Tree[K, V]) floor(n handle) handle {
	found := none
	h := tree.root
	for none != h {
		if tree.nodeBelow(h, n) {
			found = h
			h = tree.nodes[h].right
		} else {
			h = tree.nodes[h].left
		}
	}
	return found
}
