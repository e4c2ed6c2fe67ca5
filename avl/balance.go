// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// sibling sub-trees may differ in height by at most this much
const maxImbalance = 1

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

// height of a possibly absent sub-tree
func height[T any](p *node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// node count of a possibly absent sub-tree
func nodes[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// recompute the cached fields from the children
func (p *node[T]) update() {
	p.height = 1 + maxInt(height(p.left), height(p.right))
	p.nodes = 1 + nodes(p.left) + nodes(p.right)
}

// single rotation: the left child becomes the sub-tree root
func rotateWithLeft[T any](p *node[T]) *node[T] {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	p.update()
	p1.update()
	return p1
}

// single rotation: the right child becomes the sub-tree root
func rotateWithRight[T any](p *node[T]) *node[T] {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	p.update()
	p1.update()
	return p1
}

// double LR rotation
func doubleWithLeft[T any](p *node[T]) *node[T] {
	p.left = rotateWithRight(p.left)
	return rotateWithLeft(p)
}

// double RL rotation
func doubleWithRight[T any](p *node[T]) *node[T] {
	p.right = rotateWithLeft(p.right)
	return rotateWithRight(p)
}

// restore the balance of a sub-tree whose children are balanced and
// differ in height by at most 2, returns the new sub-tree root
//
// the single rotation is chosen when the outer grandchild is at least
// as tall as the inner one
func balance[T any](p *node[T]) *node[T] {
	if nil == p {
		return nil
	}
	if height(p.left)-height(p.right) > maxImbalance {
		if height(p.left.left) >= height(p.left.right) {
			p = rotateWithLeft(p)
		} else {
			p = doubleWithLeft(p)
		}
	} else if height(p.right)-height(p.left) > maxImbalance {
		if height(p.right.right) >= height(p.right.left) {
			p = rotateWithRight(p)
		} else {
			p = doubleWithRight(p)
		}
	}
	p.update()
	return p
}
