// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent links and reference
// counted cursors that survive the erasure of the node they are on
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in an arena owned by the tree and are addressed by
// handles.  A sentinel node terminates every tree: it compares above
// all keys, never has a right child and is the position of End().
//
// Erasing a key unlinks its node from the tree.  If no cursor refers
// to the node it is reclaimed at once, otherwise it is kept as a
// tombstone with its links frozen and holds a reference on each node
// it links to.  A cursor on a tombstone still returns the old key and
// value and can continue with Next() to the following key.  The
// tombstone is reclaimed when the last cursor leaves it, which may in
// turn reclaim the tombstones it was holding.
package avl
