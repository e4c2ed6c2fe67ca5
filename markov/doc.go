// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package markov - word level Markov chain text generator
//
// The transition table is a tree of words, each word holding a nested
// tree of the words that followed it.  The nested tree counts each
// follower's occurrences, the counts are normalised into probabilities
// and a random walk picks each next word by an in-order scan that
// stops once the accumulated probability passes a random draw.
package markov
