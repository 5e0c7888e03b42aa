// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrConfigurationMissing   = NotFoundError("configuration file is required")
	ErrCountMismatch          = ProcessError("live node count mismatch")
	ErrCursorAtEnd            = InvalidError("cursor is at end")
	ErrCursorNotAtEnd         = ProcessError("cursor did not finish at end")
	ErrCursorReleased         = InvalidError("cursor has been released")
	ErrFreeListCorrupt        = ProcessError("free list is corrupt")
	ErrHeightMismatch         = ProcessError("node height is incorrect")
	ErrInvalidCursorCount     = InvalidError("cursor count is invalid")
	ErrInvalidErasureCount    = InvalidError("erasure count is invalid")
	ErrInvalidInsertionCount  = InvalidError("insertion count is invalid")
	ErrInvalidKeyRange        = InvalidError("key range is invalid")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidRoundCount      = InvalidError("round count is invalid")
	ErrInvalidSkipCount       = InvalidError("skip count is invalid")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidWorkerCount     = InvalidError("worker count is invalid")
	ErrKeyOrder               = ProcessError("keys are out of order")
	ErrMissingComparator      = InvalidError("comparator is missing")
	ErrNegativeReferenceCount = ProcessError("reference count is negative")
	ErrNotADirectory          = InvalidError("path is not a directory")
	ErrNotFinalTable          = InvalidError("configuration did not return a table")
	ErrReclaimedNode          = NotFoundError("node has been reclaimed")
	ErrRetainedNodes          = ProcessError("erased nodes are still retained")
	ErrSentinelCorrupt        = ProcessError("sentinel is corrupt")
	ErrUnbalancedNode         = ProcessError("node is out of balance")
	ErrUnlinkedNode           = ProcessError("erased node is still linked")
	ErrUnreferencedTombstone  = ProcessError("tombstone has no references")
	ErrUpLinkMismatch         = ProcessError("parent link is inconsistent")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
