// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigNotTable       = InvalidError("configuration did not return a table")
	ErrEmptyDelimiter       = InvalidError("delimiter is empty")
	ErrFollowerHasNoEntry   = ProcessError("follower has no table entry")
	ErrInitialWordNotFound  = NotFoundError("initial word not found in dictionary")
	ErrInvalidCount         = LengthError("count is invalid")
	ErrInvalidLength        = LengthError("length is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidRange         = LengthError("range is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrLogFileNotPlainName  = InvalidError("log file is not a plain name")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrTreeCount            = RecordError("tree node has no occurrences")
	ErrTreeHeight           = RecordError("tree node height is incorrect")
	ErrTreeNodeCount        = RecordError("tree node count is incorrect")
	ErrTreeTotal            = RecordError("tree total occurrences are incorrect")
	ErrTreeUnbalanced       = RecordError("tree is not balanced")
	ErrTreeUnordered        = RecordError("tree keys are out of order")
	ErrWordNotFound         = NotFoundError("word not found in dictionary")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
