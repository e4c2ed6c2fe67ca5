// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add one occurrence of an object
//
// A new key gets a node with count 1 and true is returned.  For a key
// already present the count is incremented, the given object is not
// kept (an Owned tree releases it at once) and false is returned.
func (tree *Tree[T]) Insert(object T) bool {
	added := false
	tree.root, added = tree.insert(object, tree.root, false)
	tree.total += 1
	return added
}

// Replace - store an object, substituting any equal one
//
// For a key already present the stored object is swapped for the
// given one (an Owned tree releases the previous object) and the
// count is left unchanged.  Returns true if a new node was created.
//
// Replacing an object with itself in an Owned tree releases the
// object that stays stored.
func (tree *Tree[T]) Replace(object T) bool {
	added := false
	tree.root, added = tree.insert(object, tree.root, true)
	if added {
		tree.total += 1
	}
	return added
}

// internal routine for insert and replace
// returns the possibly rotated sub-tree
func (tree *Tree[T]) insert(object T, p *node[T], replace bool) (*node[T], bool) {
	if nil == p { // insert new node
		return tree.newNode(object), true
	}

	added := false
	switch c := tree.compare(object, p.object); {
	case c < 0: // object < p.object
		p.left, added = tree.insert(object, p.left, replace)
	case c > 0: // object > p.object
		p.right, added = tree.insert(object, p.right, replace)
	default:
		if replace {
			previous := p.object
			p.object = object
			tree.own.dispose(previous)
		} else {
			p.count += 1
			tree.own.dispose(object)
		}
		return p, false
	}
	return balance(p), added
}
