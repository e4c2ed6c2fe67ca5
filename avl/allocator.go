// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// upper bound on reclaimed nodes kept by a single tree
const maxFreeNodes = 256

// a node in the tree
type node[T any] struct {
	left   *node[T] // left sub-tree
	right  *node[T] // right sub-tree
	object T        // stored key object
	count  int      // occurrences of the key, always >= 1
	height int      // leaf is 0, absent sub-tree is -1
	nodes  int      // nodes in this sub-tree including this one
}

// allocate a new leaf, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(object T) *node[T] {
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			panic("avl: pool corrupt")
		}
		return &node[T]{
			object: object,
			count:  1,
			height: 0,
			nodes:  1,
		}
	}
	tree.pool = p.right
	tree.freeNodes -= 1

	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	p.object = object
	p.count = 1
	p.height = 0
	p.nodes = 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(p *node[T]) {
	var zero T
	p.left = nil
	p.object = zero // do not keep the object reachable
	p.count = 0
	p.height = 0
	p.nodes = 0

	if tree.freeNodes >= maxFreeNodes {
		p.right = nil
		return
	}
	p.right = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}
