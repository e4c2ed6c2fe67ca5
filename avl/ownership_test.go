// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
)

// an object with a separate identity from its key
type box struct {
	key int
	id  int
}

// records every release by identity
type tally struct {
	nextID   int
	released map[int]int
	order    []int
}

func newTally() *tally {
	return &tally{
		released: make(map[int]int),
	}
}

func (ty *tally) make(key int) *box {
	ty.nextID += 1
	return &box{key: key, id: ty.nextID}
}

func (ty *tally) release(b *box) {
	ty.released[b.id] += 1
	ty.order = append(ty.order, b.id)
}

func compareBoxes(a *box, b *box) int {
	return a.key - b.key
}

func newOwnedTree(ty *tally) *avl.Tree[*box] {
	return avl.NewFunc(compareBoxes, avl.Owned(ty.release))
}

func TestOwnershipModes(t *testing.T) {
	var zero avl.Ownership[int]
	assert.False(t, zero.IsOwned(), "zero value is owned")
	assert.Equal(t, "borrowed", zero.String(), "wrong zero value name")

	assert.False(t, avl.Borrowed[int]().IsOwned(), "borrowed is owned")
	owned := avl.Owned(func(int) {})
	assert.True(t, owned.IsOwned(), "owned is not owned")
	assert.Equal(t, "owned", owned.String(), "wrong owned name")

	tree := avl.NewFunc(func(a int, b int) int { return a - b }, owned)
	assert.True(t, tree.Ownership().IsOwned(), "tree lost its ownership mode")

	assert.Panics(t, func() { avl.Owned[int](nil) }, "nil release accepted")
	assert.Panics(t, func() { avl.NewFunc[int](nil, avl.Borrowed[int]()) }, "nil compare accepted")
}

func TestDuplicateInsertReleasesNewObject(t *testing.T) {
	ty := newTally()
	tree := newOwnedTree(ty)

	first := ty.make(1)
	second := ty.make(1)
	tree.Insert(first)
	tree.Insert(second)

	assert.Equal(t, []int{second.id}, ty.order, "wrong object released")
	stored, _ := tree.Search(&box{key: 1})
	assert.Same(t, first, stored, "stored object changed")
	assert.Equal(t, 2, tree.Count(first), "wrong count")
}

func TestReplaceReleasesPreviousObject(t *testing.T) {
	ty := newTally()
	tree := newOwnedTree(ty)

	first := ty.make(1)
	tree.Insert(first)
	tree.Insert(ty.make(1))
	ty.order = nil

	replacement := ty.make(1)
	assert.False(t, tree.Replace(replacement), "replace added a node")

	assert.Equal(t, []int{first.id}, ty.order, "wrong object released")
	stored, _ := tree.Search(&box{key: 1})
	assert.Same(t, replacement, stored, "not replaced")
	assert.Equal(t, 2, tree.Count(replacement), "replace changed the count")
	assert.Equal(t, 2, tree.Total(), "replace changed the total")

	// replace of a new key behaves as insert
	assert.True(t, tree.Replace(ty.make(2)), "replace of new key did not add")
	assert.Equal(t, 1, tree.Count(&box{key: 2}), "wrong count for new key")
	assert.Equal(t, 3, tree.Total(), "wrong total")
	assert.Nil(t, tree.Check(), "check failed")
}

func TestRemoveReleasesStoredObjectOnly(t *testing.T) {
	ty := newTally()
	tree := newOwnedTree(ty)

	objects := map[int]*box{}
	for _, k := range []int{20, 10, 30, 5, 15, 25, 35} {
		objects[k] = ty.make(k)
		tree.Insert(objects[k])
	}

	// two children: the successor's object moves and is not released
	probe := &box{key: 20, id: -1}
	assert.True(t, tree.Remove(probe), "remove failed")
	assert.Equal(t, []int{objects[20].id}, ty.order, "wrong release for two children")
	moved, _ := tree.Search(&box{key: 25})
	assert.Same(t, objects[25], moved, "successor object not moved")

	// one child then leaf
	ty.order = nil
	tree.Remove(&box{key: 30})
	tree.Remove(&box{key: 5})
	assert.Equal(t, []int{objects[30].id, objects[5].id}, ty.order, "wrong release for splice")

	// missing key releases nothing
	ty.order = nil
	assert.False(t, tree.Remove(&box{key: 99}), "removed missing key")
	assert.Empty(t, ty.order, "missing key released something")
	assert.Zero(t, ty.released[-1], "probe released")
	assert.Nil(t, tree.Check(), "check failed")
}

func TestRemoveOneReleasesOnLastOccurrence(t *testing.T) {
	ty := newTally()
	tree := newOwnedTree(ty)

	stored := ty.make(7)
	tree.Insert(stored)
	tree.Insert(ty.make(7))
	ty.order = nil

	assert.True(t, tree.RemoveOne(&box{key: 7}), "remove one failed")
	assert.Empty(t, ty.order, "released before last occurrence")
	assert.True(t, tree.RemoveOne(&box{key: 7}), "remove one failed")
	assert.Equal(t, []int{stored.id}, ty.order, "last occurrence not released")
	assert.True(t, tree.IsEmpty(), "not empty")
}

// every object handed to the tree is released exactly once
func TestDestroyReleasesEverythingOnce(t *testing.T) {
	ty := newTally()
	tree := newOwnedTree(ty)

	for i := 0; i < 500; i += 1 {
		tree.Insert(ty.make((i * 7919) % 211))
	}
	for i := 0; i < 100; i += 1 {
		tree.Replace(ty.make((i * 31) % 211))
	}
	for k := 0; k < 211; k += 3 {
		tree.Remove(&box{key: k})
	}
	for k := 1; k < 211; k += 5 {
		tree.RemoveOne(&box{key: k})
	}
	assert.Nil(t, tree.Check(), "check failed")

	tree.Destroy()
	assert.True(t, tree.IsEmpty(), "not empty after destroy")
	assert.Equal(t, 0, tree.Total(), "total after destroy")

	assert.Equal(t, ty.nextID, len(ty.released), "leaked objects")
	for id, n := range ty.released {
		if 1 != n {
			t.Fatalf("object: %d released: %d times", id, n)
		}
	}

	// destroy again is a no-op
	tree.Destroy()
	assert.Equal(t, ty.nextID, len(ty.order), "second destroy released objects")

	// and the tree can be reused
	tree.Insert(ty.make(1))
	assert.Equal(t, 1, tree.Size(), "tree not reusable")
}

func TestBorrowedReleasesNothing(t *testing.T) {
	tree := avl.NewFunc(compareBoxes, avl.Borrowed[*box]())

	first := &box{key: 1, id: 1}
	tree.Insert(first)
	tree.Insert(&box{key: 1, id: 2})
	replacement := &box{key: 1, id: 3}
	tree.Replace(replacement)

	stored, _ := tree.Search(first)
	assert.Same(t, replacement, stored, "borrowed replace did not substitute")
	assert.True(t, tree.Remove(first), "remove failed")
	tree.Destroy()
	assert.True(t, tree.IsEmpty(), "not empty")
}
