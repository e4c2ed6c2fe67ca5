// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package markov

import (
	"strings"

	"github.com/bitmark-inc/avlset/avl"
)

// Word - an entry of the table or of a word's followers
type Word struct {
	text        string
	probability float64          // of following the owning word
	next        *avl.Tree[*Word] // followers, nil for a follower entry
}

// Text - the word itself
func (w *Word) Text() string {
	return w.text
}

// Probability - normalised frequency of this follower
func (w *Word) Probability() float64 {
	return w.probability
}

// String - printable word
func (w *Word) String() string {
	return w.text
}

// order words by their text
func compareWords(a *Word, b *Word) int {
	return strings.Compare(a.text, b.text)
}

// probe for searches, never stored
func key(text string) *Word {
	return &Word{text: text}
}

// pick the follower whose cumulative probability range holds r
//
// the last follower is returned if rounding leaves r beyond the sum
func (w *Word) choose(r float64) *Word {
	var chosen *Word
	sum := 0.0
	w.next.Traverse(func(n *Word) avl.Signal {
		chosen = n
		sum += n.probability
		if sum > r {
			return avl.Stop
		}
		return avl.Continue
	})
	return chosen
}
