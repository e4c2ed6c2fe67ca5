// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package markov

import (
	"bufio"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// DefaultDelimiters - word separators when none are given
const DefaultDelimiters = " "

// Table - transition table of current word → following words
//
// not thread safe
type Table struct {
	log         *logger.L
	words       *avl.Tree[*Word]
	transitions int
	normalised  bool
}

// New - create an empty table
func New(log *logger.L) *Table {
	t := &Table{
		log:        log,
		normalised: true,
	}
	t.words = avl.NewFunc(compareWords, avl.Owned(t.releaseWord))
	return t
}

// the outer tree owns each word together with its followers
func (t *Table) releaseWord(w *Word) {
	if nil != w.next {
		w.next.Destroy()
		w.next = nil
	}
}

// a follower holds nothing of its own
func releaseFollower(w *Word) {
	w.probability = 0
}

// Add - record that next followed current
func (t *Table) Add(current string, next string) {
	w, found := t.words.Search(key(current))
	if !found {
		w = &Word{
			text: current,
			next: avl.NewFunc(compareWords, avl.Owned(releaseFollower)),
		}
		t.words.Insert(w)
	}

	// counting insert, a repeated follower is absorbed into the count
	w.next.Insert(key(next))
	t.transitions += 1
	t.normalised = false
}

// Read - add the transitions of every adjacent word pair of a text
//
// lines are split on any of the delimiter characters, empty words are
// skipped and pairs continue across line ends.  The last word gets a
// transition to itself so that every word has a follower.  The table
// is normalised afterwards.
func (t *Table) Read(r io.Reader, delimiters string) error {
	if "" == delimiters {
		return fault.ErrEmptyDelimiter
	}
	isDelimiter := func(c rune) bool {
		return strings.ContainsRune(delimiters, c)
	}

	reader := bufio.NewReader(r)
	current := ""
	lines := 0
	words := 0
	for {
		line, err := reader.ReadString('\n')
		if "" != line {
			lines += 1
			line = strings.TrimSuffix(line, "\n")
			for _, next := range strings.FieldsFunc(line, isDelimiter) {
				if "" != current {
					t.Add(current, next)
				}
				current = next
				words += 1
			}
		}
		if io.EOF == err {
			break
		}
		if nil != err {
			t.log.Errorf("read error: %s", err)
			return err
		}
	}

	t.log.Debugf("read lines: %d  words: %d", lines, words)

	if "" == current {
		t.log.Warn("empty input")
		return nil
	}
	t.Add(current, current)
	t.Normalise()

	t.log.Infof("distinct words: %d  transitions: %d", t.Size(), t.transitions)
	return nil
}

// Normalise - turn the follower counts of every word into
// probabilities summing to 1
func (t *Table) Normalise() {
	t.words.Traverse(func(w *Word) avl.Signal {
		total := float64(w.next.Total())
		w.next.Traverse(func(n *Word) avl.Signal {
			n.probability = float64(w.next.Count(n)) / total
			return avl.Continue
		})
		return avl.Continue
	})
	t.normalised = true
}

// Size - number of distinct current words
func (t *Table) Size() int {
	return t.words.Size()
}

// Transitions - number of word pairs recorded
func (t *Table) Transitions() int {
	return t.transitions
}

// Followers - number of distinct words seen after a word
func (t *Table) Followers(text string) int {
	w, found := t.words.Search(key(text))
	if !found {
		return 0
	}
	return w.next.Size()
}

// Probability - chance that next follows current
func (t *Table) Probability(current string, next string) float64 {
	if !t.normalised {
		t.Normalise()
	}
	w, found := t.words.Search(key(current))
	if !found {
		return 0
	}
	n, found := w.next.Search(key(next))
	if !found {
		return 0
	}
	return n.probability
}

// Next - draw the word following text
func (t *Table) Next(text string, rnd RandomSource) (string, error) {
	if !t.normalised {
		t.Normalise()
	}
	w, found := t.words.Search(key(text))
	if !found {
		return "", fault.ErrWordNotFound
	}
	return w.choose(rnd.Float64()).text, nil
}

// Destroy - release all words
func (t *Table) Destroy() {
	t.words.Destroy()
	t.transitions = 0
	t.normalised = true
}
