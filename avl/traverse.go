// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Signal - returned by a visitor to control a traversal
type Signal int

// visitor signals
const (
	Continue Signal = iota
	Stop
)

// String - printable signal
func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Visitor - called for each object of a traversal, any state the
// visitor accumulates is captured by the closure
type Visitor[T any] func(object T) Signal

// Traverse - visit each distinct key's object in ascending order
//
// Returns Stop if the visitor stopped the traversal early.
func (tree *Tree[T]) Traverse(visit Visitor[T]) Signal {
	return inorder(tree.root, visit, false)
}

// TraverseExpanded - ascending traversal that visits an object once
// per occurrence, so a key with count k is passed to the visitor k
// times in a row
func (tree *Tree[T]) TraverseExpanded(visit Visitor[T]) Signal {
	return inorder(tree.root, visit, true)
}

// TraversePreorder - visit each node before its sub-trees
func (tree *Tree[T]) TraversePreorder(visit Visitor[T]) Signal {
	return preorder(tree.root, visit)
}

// TraversePostorder - visit each node after its sub-trees
func (tree *Tree[T]) TraversePostorder(visit Visitor[T]) Signal {
	return postorder(tree.root, visit)
}

func inorder[T any](p *node[T], visit Visitor[T], expand bool) Signal {
	if nil == p {
		return Continue
	}
	if Stop == inorder(p.left, visit, expand) {
		return Stop
	}
	n := 1
	if expand {
		n = p.count
	}
	for i := 0; i < n; i += 1 {
		if Stop == visit(p.object) {
			return Stop
		}
	}
	return inorder(p.right, visit, expand)
}

func preorder[T any](p *node[T], visit Visitor[T]) Signal {
	if nil == p {
		return Continue
	}
	if Stop == visit(p.object) {
		return Stop
	}
	if Stop == preorder(p.left, visit) {
		return Stop
	}
	return preorder(p.right, visit)
}

func postorder[T any](p *node[T], visit Visitor[T]) Signal {
	if nil == p {
		return Continue
	}
	if Stop == postorder(p.left, visit) {
		return Stop
	}
	if Stop == postorder(p.right, visit) {
		return Stop
	}
	return visit(p.object)
}
