// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// markov - generate text from the word transitions of standard input
//
// reads text from standard input, builds a table of which words
// follow which and then either prints a random walk through it or
// dumps the transition statistics
//
//   markov --length=50 --wrap < book.txt
//   markov --stats --json < book.txt
//   markov --config=markov.conf < book.txt
package main
