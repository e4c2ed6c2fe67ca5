// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree that behaves as an ordered
// multiset: equal keys share one node that carries an occurrence
// count.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every tree is created with an ownership mode.  A Borrowed tree
// never releases anything, the caller keeps all objects alive.  An
// Owned tree calls its release function exactly once for every object
// it discards: the new object of a duplicate Insert, the previous
// object of a Replace, the object of a Remove and everything left at
// Destroy.
//
// Structural changes are recursive: each level returns the possibly
// rotated sub-tree to its parent and rebalancing happens on the way
// back up.  Since the tree height is O(log n) the recursion depth is
// bounded.
package avl
