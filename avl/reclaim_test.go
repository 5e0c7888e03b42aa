// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTombstonePinsNeighbours(t *testing.T) {
	tree := New[int, int]()
	for i := 1; i <= 15; i += 1 {
		tree.Insert(i, i*10)
	}

	c := tree.Find(8)
	h := c.node
	links := tree.nodes[h]
	neighbours := []handle{}
	refs := map[handle]int{}
	for _, n := range []handle{links.up, links.left, links.right} {
		if none != n {
			neighbours = append(neighbours, n)
			refs[n] = tree.nodes[n].refs
		}
	}
	require.NotEmpty(t, neighbours)

	require.True(t, tree.Erase(8))
	require.NoError(t, tree.Check())

	p := &tree.nodes[h]
	assert.Equal(t, stateTombstone, p.state)
	assert.Equal(t, 1, p.refs)
	assert.Equal(t, links.up, p.up, "frozen up link")
	assert.Equal(t, links.left, p.left, "frozen left link")
	assert.Equal(t, links.right, p.right, "frozen right link")
	for _, n := range neighbours {
		assert.Equal(t, refs[n]+1, tree.nodes[n].refs, "pin on slot: %d", n)
	}
	assert.Equal(t, 1, tree.Stats().Retained)

	// a pinned live neighbour becomes a tombstone of its own when erased
	var pinned handle
	for _, n := range neighbours {
		if stateLive == tree.nodes[n].state {
			pinned = n
			break
		}
	}
	require.NotEqual(t, none, pinned)
	require.True(t, tree.Erase(tree.nodes[pinned].key))
	require.NoError(t, tree.Check())
	assert.Equal(t, stateTombstone, tree.nodes[pinned].state)
	assert.Equal(t, 2, tree.Stats().Retained)

	// releasing the cursor cascades through the pin
	c.Release()
	require.NoError(t, tree.Check())
	assert.Equal(t, stateFree, tree.nodes[h].state)
	assert.Equal(t, stateFree, tree.nodes[pinned].state)
	s := tree.Stats()
	assert.Equal(t, 0, s.Retained)
	assert.Equal(t, 2, s.Free)
	assert.Equal(t, 13, s.Live)
}

func TestUnreferencedEraseIsReclaimed(t *testing.T) {
	tree := New[int, int]()
	for i := 1; i <= 15; i += 1 {
		tree.Insert(i, i)
	}
	h, found := tree.search(8)
	require.True(t, found)

	require.True(t, tree.Erase(8))
	assert.Equal(t, stateFree, tree.nodes[h].state)
	assert.Equal(t, h, tree.pool)

	// the slot is reused before the arena grows
	total := len(tree.nodes)
	require.True(t, tree.Insert(100, 100))
	assert.Equal(t, total, len(tree.nodes))
	assert.Equal(t, stateLive, tree.nodes[h].state)
	assert.Equal(t, 100, tree.nodes[h].key)
	require.NoError(t, tree.Check())
}

func TestHeightBound(t *testing.T) {
	tree := New[int, struct{}]()
	const n = 1000
	for i := 0; i < n; i += 1 {
		tree.Insert(i, struct{}{})
	}
	require.NoError(t, tree.Check())

	// AVL worst case, the sentinel is counted as a node
	limit := int(1.4405*math.Log2(n+3) - 0.3277)
	assert.LessOrEqual(t, tree.heightOf(tree.root), limit)

	for i := 0; i < n; i += 2 {
		tree.Erase(i)
	}
	require.NoError(t, tree.Check())
	assert.LessOrEqual(t, tree.heightOf(tree.root), limit)
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := New[int, int]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(i, i)
	}
	require.NoError(t, tree.Check())

	tree.nodes[tree.root].height += 1
	assert.Error(t, tree.Check())
	tree.updateHeight(tree.root)
	require.NoError(t, tree.Check())

	tree.count += 1
	assert.Error(t, tree.Check())
	tree.count -= 1

	l := tree.nodes[tree.root].left
	tree.nodes[l].up = none
	assert.Error(t, tree.Check())
	tree.nodes[l].up = tree.root
	require.NoError(t, tree.Check())
}

func TestFprint(t *testing.T) {
	tree := New[int, string]()
	for i := 1; i <= 3; i += 1 {
		tree.Insert(i, strings.Repeat("x", i))
	}
	var buffer bytes.Buffer
	depth := tree.Fprint(&buffer, true)
	assert.Greater(t, depth, 0)

	out := buffer.String()
	for _, s := range []string{"x", "xx", "xxx", "<end>"} {
		assert.Contains(t, out, s)
	}
}
