// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package markov

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// defaults for a generated chain
const (
	DefaultLength = 30
	DefaultWidth  = 80
)

// GenerateOptions - controls a random walk
type GenerateOptions struct {
	Length    int    // number of words to output
	Initial   string // first word, empty for the word at the table root
	Separator string // written after every word
	Width     int    // start a new line once a line reaches this, 0 = no wrapping
}

// Generate - write a random walk through the table
//
// nothing is written for an empty table.  A follower without a table
// entry of its own ends the walk with a newline and
// fault.ErrFollowerHasNoEntry.
func (t *Table) Generate(w io.Writer, options GenerateOptions, rnd RandomSource) error {
	if options.Length < 0 {
		return fault.ErrInvalidLength
	}
	if t.words.IsEmpty() {
		t.log.Warn("generate from empty table")
		return nil
	}
	if !t.normalised {
		t.Normalise()
	}

	text := options.Initial
	if "" == text {
		text = t.rootWord()
	}

	t.log.Debugf("generate: length: %d  initial: %q", options.Length, text)

	lineLength := 0
	for i := 0; i < options.Length; i += 1 {
		current, found := t.words.Search(key(text))
		if !found {
			if 0 == i {
				return fault.ErrInitialWordNotFound
			}
			// the walk so far is still terminated
			fault.Criticalf("generate: word: %q has no table entry", text)
			if _, err := io.WriteString(w, "\n"); nil != err {
				return err
			}
			return fault.ErrFollowerHasNoEntry
		}
		if options.Width > 0 && lineLength >= options.Width {
			if _, err := io.WriteString(w, "\n"); nil != err {
				return err
			}
			lineLength = 0
		}
		n, err := fmt.Fprintf(w, "%s%s", current.text, options.Separator)
		if nil != err {
			return err
		}
		lineLength += n

		text = current.choose(rnd.Float64()).text
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// the word stored at the root of the outer tree, the first node a
// pre-order traversal visits
func (t *Table) rootWord() string {
	text := ""
	t.words.TraversePreorder(func(w *Word) avl.Signal {
		text = w.text
		return avl.Stop
	})
	return text
}
