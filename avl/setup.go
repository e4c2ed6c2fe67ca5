// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Item - a key item must implement the Compare function
//
// Compare returns negative, zero or positive for less than, equal to
// or greater than the argument and must be a total order.
type Item[T any] interface {
	Compare(T) int
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root      *node[T]
	compare   func(a T, b T) int
	own       Ownership[T]
	total     int      // sum of all occurrence counts
	pool      *node[T] // reclaimed nodes linked through right
	freeNodes int
}

// New - create an initially empty tree ordered by the items' own
// Compare method
func New[T Item[T]](own Ownership[T]) *Tree[T] {
	return NewFunc(func(a T, b T) int {
		return a.Compare(b)
	}, own)
}

// NewFunc - create an initially empty tree ordered by compare
func NewFunc[T any](compare func(a T, b T) int, own Ownership[T]) *Tree[T] {
	if nil == compare {
		fault.Panic("avl: nil compare function")
	}
	return &Tree[T]{
		root:    nil,
		compare: compare,
		own:     own,
	}
}

// Ownership - the mode fixed at creation
func (tree *Tree[T]) Ownership() Ownership[T] {
	return tree.own
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of distinct keys currently in the tree
func (tree *Tree[T]) Size() int {
	return nodes(tree.root)
}

// Total - number of occurrences of all keys
func (tree *Tree[T]) Total() int {
	return tree.total
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}
