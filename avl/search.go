// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the stored object equal to key
func (tree *Tree[T]) Search(key T) (T, bool) {
	p := tree.find(key)
	if nil == p {
		var zero T
		return zero, false
	}
	return p.object, true
}

// SearchIndex - find the stored object equal to key and its in-order
// index, the index is -1 if the key is not present
func (tree *Tree[T]) SearchIndex(key T) (T, int) {
	return tree.search(key, tree.root, 0)
}

func (tree *Tree[T]) search(key T, p *node[T], index int) (T, int) {
	if nil == p {
		var zero T
		return zero, -1
	}

	switch c := tree.compare(key, p.object); {
	case c < 0: // key < p.object
		return tree.search(key, p.left, index)
	case c > 0: // key > p.object
		return tree.search(key, p.right, index+nodes(p.left)+1)
	default:
		return p.object, index + nodes(p.left)
	}
}

// Count - occurrences recorded for key, 0 if absent
func (tree *Tree[T]) Count(key T) int {
	p := tree.find(key)
	if nil == p {
		return 0
	}
	return p.count
}

// internal: locate the node equal to key
func (tree *Tree[T]) find(key T) *node[T] {
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.object)
		if c < 0 {
			p = p.left
		} else if c > 0 {
			p = p.right
		} else {
			return p
		}
	}
	return nil
}
