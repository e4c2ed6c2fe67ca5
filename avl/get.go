// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - object at a specific in-order index of the distinct keys
func (tree *Tree[T]) Get(index int) (T, bool) {
	if index < 0 || index >= tree.Size() {
		var zero T
		return zero, false
	}
	p := get(index, tree.root)
	return p.object, true
}

func get[T any](index int, p *node[T]) *node[T] {
	if nil == p {
		return nil
	}

	nl := nodes(p.left)

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}
