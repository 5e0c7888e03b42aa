// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree[K, V]) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - write an ASCII graphic representation of the tree to w
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Fprint(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", rootBranch, printData)
}

func (tree *Tree[K, V]) printTree(w io.Writer, h handle, prefix string, br branch, printData bool) int {
	if none == h {
		return 0
	}
	p := &tree.nodes[h]
	rd := 0
	ld := 0
	if none != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if none != p.up {
		up = tree.label(p.up)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d/h:%d refs:%d\n", tree.label(h), tree.data(h), up, tree.balanceOf(h), p.height, p.refs)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.label(h), up)
	}
	if none != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// printable key, the sentinel has none
func (tree *Tree[K, V]) label(h handle) interface{} {
	if stateSentinel == tree.nodes[h].state {
		return "<end>"
	}
	return tree.nodes[h].key
}

func (tree *Tree[K, V]) data(h handle) interface{} {
	if stateSentinel == tree.nodes[h].state {
		return "-"
	}
	return tree.nodes[h].value
}
