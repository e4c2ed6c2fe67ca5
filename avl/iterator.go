// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the object with the lowest key value
func (tree *Tree[T]) First() (T, bool) {
	p := tree.root.first()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.object, true
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the object with the highest key value
func (tree *Tree[T]) Last() (T, bool) {
	p := tree.root.last()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.object, true
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
