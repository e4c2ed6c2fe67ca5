// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"
	"github.com/fatih/color"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// keys removed after the traversals, 65536 is never present
var removals = []int{5, 65536, 3}

// section titles, plain when output is not a terminal
var heading = color.New(color.FgCyan, color.Bold)

// an integer value held by the tree
type number int

// Compare - order numbers numerically
func (n number) Compare(m number) int {
	switch {
	case n < m:
		return -1
	case n > m:
		return 1
	default:
		return 0
	}
}

// visitor that writes each number on its own line
func printer(w io.Writer) avl.Visitor[number] {
	return func(n number) avl.Signal {
		fmt.Fprintf(w, "%d\n", n)
		return avl.Continue
	}
}

// visitor collecting numbers into a slice
func collector(elements *[]int) avl.Visitor[number] {
	return func(n number) avl.Signal {
		*elements = append(*elements, int(n))
		return avl.Continue
	}
}

// run the whole demonstration on a set of values
//
// returns the number of values released by the tree
func exercise(w io.Writer, log *logger.L, values []int, draw bool) int {
	released := 0
	tree := avl.New[number](avl.Owned(func(number) {
		released += 1
	}))

	for i, v := range values {
		fmt.Fprintf(w, "values[%d] = %d\n", i, v)
	}
	fmt.Fprintf(w, "\n")
	for _, v := range values {
		if !tree.Insert(number(v)) {
			log.Debugf("duplicate: %d", v)
		}
	}
	log.Infof("distinct: %d  total: %d  height: %d", tree.Size(), tree.Total(), tree.Height())
	if draw {
		tree.Print(w, true)
		fmt.Fprintf(w, "\n")
	}

	heading.Fprintln(w, "in-order:")
	tree.Traverse(printer(w))
	fmt.Fprintf(w, "\n")
	heading.Fprintln(w, "pre-order:")
	tree.TraversePreorder(printer(w))
	fmt.Fprintf(w, "\n")
	heading.Fprintln(w, "post-order:")
	tree.TraversePostorder(printer(w))

	sum := 0
	tree.Traverse(func(n number) avl.Signal {
		sum += int(n)
		return avl.Continue
	})
	fmt.Fprintf(w, "\nheight = %d\n", tree.Height())
	fmt.Fprintf(w, "sum = %d\n", sum)

	sum = 0
	tree.Traverse(func(n number) avl.Signal {
		if n >= 5 {
			return avl.Stop
		}
		sum += int(n)
		return avl.Continue
	})
	fmt.Fprintf(w, "sum lt 5 = %d\n", sum)
	fmt.Fprintf(w, "count of 3 = %d\n", tree.Count(3))

	elements := make([]int, 0, tree.Size())
	tree.Traverse(collector(&elements))
	fmt.Fprintf(w, "\n")
	for i, e := range elements {
		fmt.Fprintf(w, "elements[%d] = %d\n", i, e)
	}

	elements = make([]int, 0, tree.Total())
	tree.TraverseExpanded(collector(&elements))
	fmt.Fprintf(w, "\n")
	for i, e := range elements {
		fmt.Fprintf(w, "expanded[%d] = %d\n", i, e)
	}

	fmt.Fprintf(w, "\n")
	heading.Fprintln(w, "remove:")
	tree.Traverse(printer(w))
	for _, n := range removals {
		found := tree.Remove(number(n))
		log.Debugf("remove: %d  found: %t", n, found)
		fmt.Fprintf(w, "\n")
		tree.Traverse(printer(w))
		if found {
			fmt.Fprintf(w, "removed %d\n", n)
		} else {
			fmt.Fprintf(w, "not found %d\n", n)
		}
		if draw {
			tree.Print(w, true)
		}
	}

	if err := tree.Check(); nil != err {
		fault.Panicf("tree check failed: %s", err)
	}

	tree.Destroy()
	fmt.Fprintf(w, "\nreleased = %d\n", released)
	return released
}
