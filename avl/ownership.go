// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

type ownershipMode int

const (
	borrowed ownershipMode = iota
	owned
)

// Ownership - decides who releases objects held by a tree
//
// The zero value is Borrowed.
type Ownership[T any] struct {
	mode    ownershipMode
	release func(T)
}

// Borrowed - the caller retains ownership, the tree never releases
func Borrowed[T any]() Ownership[T] {
	return Ownership[T]{
		mode: borrowed,
	}
}

// Owned - the tree owns every stored object and passes each discarded
// one to release exactly once
func Owned[T any](release func(T)) Ownership[T] {
	if nil == release {
		fault.Panic("avl: owned mode requires a release function")
	}
	return Ownership[T]{
		mode:    owned,
		release: release,
	}
}

// IsOwned - true if the tree releases discarded objects
func (o Ownership[T]) IsOwned() bool {
	return owned == o.mode
}

// String - name of the mode
func (o Ownership[T]) String() string {
	if owned == o.mode {
		return "owned"
	}
	return "borrowed"
}

// hand a discarded object back according to the mode
func (o Ownership[T]) dispose(object T) {
	if owned == o.mode {
		o.release(object)
	}
}
