// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package markov

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avlset/avl"
)

// Transition - one follower of a word
type Transition struct {
	Word        string  `json:"word"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
}

// WordStatistics - all followers of a word
type WordStatistics struct {
	Word        string       `json:"word"`
	Transitions []Transition `json:"transitions"`
}

// Statistics - the whole table in word order
func (t *Table) Statistics() []WordStatistics {
	if !t.normalised {
		t.Normalise()
	}
	result := make([]WordStatistics, 0, t.words.Size())
	t.words.Traverse(func(w *Word) avl.Signal {
		s := WordStatistics{
			Word:        w.text,
			Transitions: make([]Transition, 0, w.next.Size()),
		}
		w.next.Traverse(func(n *Word) avl.Signal {
			s.Transitions = append(s.Transitions, Transition{
				Word:        n.text,
				Count:       w.next.Count(n),
				Probability: n.probability,
			})
			return avl.Continue
		})
		result = append(result, s)
		return avl.Continue
	})
	return result
}

// PrintStatistics - each word followed by its indented followers and
// their probabilities
func (t *Table) PrintStatistics(w io.Writer) error {
	for _, s := range t.Statistics() {
		if _, err := fmt.Fprintf(w, "%s\n", s.Word); nil != err {
			return err
		}
		for _, n := range s.Transitions {
			if _, err := fmt.Fprintf(w, "    %s : %.2f\n", n.Word, n.Probability); nil != err {
				return err
			}
		}
	}
	return nil
}
