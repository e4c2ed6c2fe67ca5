// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-demo - exercise the balanced multiset with random integers
//
// inserts a set of random values into an owned tree, shows the
// traversal orders, sums, counts and expansions, then removes a few
// keys and destroys the tree reporting how many values were released
//
//   avl-demo --count=16 --range=10 --seed=1 --print
package main
