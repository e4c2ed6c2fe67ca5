// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that the error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' for err = %v", i, err)
		}
	}
}

// the instances used by the tree checker and the commands
func TestInstances(t *testing.T) {
	for _, err := range []error{
		fault.ErrTreeCount,
		fault.ErrTreeHeight,
		fault.ErrTreeNodeCount,
		fault.ErrTreeTotal,
		fault.ErrTreeUnbalanced,
		fault.ErrTreeUnordered,
	} {
		assert.True(t, fault.IsErrRecord(err), "not a record error: %v", err)
		assert.False(t, fault.IsErrInvalid(err), "also an invalid error: %v", err)
	}

	assert.True(t, fault.IsErrNotFound(fault.ErrInitialWordNotFound), "initial word")
	assert.True(t, fault.IsErrNotFound(fault.ErrWordNotFound), "word")
	assert.True(t, fault.IsErrLength(fault.ErrInvalidLength), "length")
	assert.True(t, fault.IsErrInvalid(fault.ErrEmptyDelimiter), "delimiter")
	assert.True(t, fault.IsErrProcess(fault.ErrFollowerHasNoEntry), "follower")
	assert.Equal(t, "delimiter is empty", fault.ErrEmptyDelimiter.Error(), "message")
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) }, "nil error panicked")
	assert.PanicsWithValue(t, "check failed with error: tree is not balanced", func() {
		fault.PanicIfError("check", fault.ErrTreeUnbalanced)
	}, "wrong panic value")
}

func TestCritical(t *testing.T) {
	assert.NotPanics(t, func() { fault.Critical("simple message") }, "critical panicked")
	assert.NotPanics(t, func() { fault.Criticalf("value: %d", 42) }, "criticalf panicked")
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("tree check failed: %s", fault.ErrTreeHeight)
	}, "wrong panic value")
}
