// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Check - verify ordering, balance and all cached fields
//
// returns nil for a consistent tree or the error for the first
// violation found
func (tree *Tree[T]) Check() error {
	_, _, total, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if total != tree.total {
		return fault.ErrTreeTotal
	}
	return nil
}

// internal: consistency checker, low and high are exclusive bounds
// returns recomputed height, node count and total occurrences
func (tree *Tree[T]) check(p *node[T], low *T, high *T) (int, int, int, error) {
	if nil == p {
		return -1, 0, 0, nil
	}
	if nil != low && tree.compare(*low, p.object) >= 0 {
		return 0, 0, 0, fault.ErrTreeUnordered
	}
	if nil != high && tree.compare(p.object, *high) >= 0 {
		return 0, 0, 0, fault.ErrTreeUnordered
	}

	lh, ln, lt, err := tree.check(p.left, low, &p.object)
	if nil != err {
		return 0, 0, 0, err
	}
	rh, rn, rt, err := tree.check(p.right, &p.object, high)
	if nil != err {
		return 0, 0, 0, err
	}

	if p.count < 1 {
		return 0, 0, 0, fault.ErrTreeCount
	}
	h := 1 + maxInt(lh, rh)
	if h != p.height {
		return 0, 0, 0, fault.ErrTreeHeight
	}
	if lh-rh > maxImbalance || rh-lh > maxImbalance {
		return 0, 0, 0, fault.ErrTreeUnbalanced
	}
	n := 1 + ln + rn
	if n != p.nodes {
		return 0, 0, 0, fault.ErrTreeNodeCount
	}
	return h, n, p.count + lt + rt, nil
}
