// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{fault.ErrCursorAtEnd, false, true, false, false},
		{fault.ErrReclaimedNode, false, false, true, false},
		{fault.ErrKeyOrder, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) })
	assert.PanicsWithValue(t, "test failed with error: key range is invalid", func() {
		fault.PanicIfError("test", fault.ErrInvalidKeyRange)
	})
}

func TestPanicfWithoutLogger(t *testing.T) {
	assert.PanicsWithValue(t, "slot 7: node has been reclaimed", func() {
		fault.Panicf("slot %d: %s", 7, fault.ErrReclaimedNode)
	})
}
