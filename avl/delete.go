// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a key with all its occurrences
//
// An Owned tree releases the stored object.  Removing a key that is
// not present leaves the tree unchanged and returns false.
func (tree *Tree[T]) Remove(key T) bool {
	removed := 0
	tree.root, removed = tree.delete(key, tree.root, true)
	tree.total -= removed
	return 0 != removed
}

// RemoveOne - removes a single occurrence of a key
//
// The node is only deleted when its last occurrence goes.
func (tree *Tree[T]) RemoveOne(key T) bool {
	p := tree.find(key)
	if nil == p {
		return false
	}
	if p.count > 1 {
		p.count -= 1
		tree.total -= 1
		return true
	}
	return tree.Remove(key)
}

// internal delete routine, returns the possibly rotated sub-tree and
// the count of the removed node (0 if key was not found)
//
// when release is false the object of the deleted node is not
// disposed of since it has already been moved to another node
func (tree *Tree[T]) delete(key T, p *node[T], release bool) (*node[T], int) {
	if nil == p { // key not in tree
		return nil, 0
	}

	removed := 0
	switch c := tree.compare(key, p.object); {
	case c < 0: // key < p.object
		p.left, removed = tree.delete(key, p.left, release)
	case c > 0: // key > p.object
		p.right, removed = tree.delete(key, p.right, release)
	default: // found: delete p
		removed = p.count
		if nil == p.left || nil == p.right {
			q := p
			if nil == q.left {
				p = q.right
			} else {
				p = q.left
			}
			if release {
				tree.own.dispose(q.object)
			}
			tree.freeNode(q) // return deleted node to pool
			return p, removed
		}

		// two children: take over the in-order successor's payload
		// then unlink the successor without releasing its object
		s := p.right.first()
		previous := p.object
		p.object = s.object
		p.count = s.count
		if release {
			tree.own.dispose(previous)
		}
		p.right, _ = tree.delete(s.object, p.right, false)
	}
	if 0 == removed {
		return p, 0
	}
	return balance(p), removed
}

// Destroy - release every stored object and empty the tree
//
// The tree remains usable afterwards.
func (tree *Tree[T]) Destroy() {
	tree.destroy(tree.root)
	tree.root = nil
	tree.total = 0
	tree.pool = nil
	tree.freeNodes = 0
}

// internal: post-order teardown
func (tree *Tree[T]) destroy(p *node[T]) {
	if nil == p {
		return
	}
	tree.destroy(p.left)
	tree.destroy(p.right)
	p.left = nil
	p.right = nil
	tree.own.dispose(p.object)
}
