// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/ledgerd/fault"
)

var (
	ErrArithmeticOne = fault.ArithmeticError("arithmetic one")
	ErrArithmeticTwo = fault.ArithmeticError("arithmetic two")
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrLimitOne      = fault.LimitError("limit one")
	ErrLimitTwo      = fault.LimitError("limit two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
	ErrRecordOne     = fault.RecordError("record one")
	ErrRecordTwo     = fault.RecordError("record two")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		arithmetic bool
		exists     bool
		invalid    bool
		limit      bool
		notFound   bool
		process    bool
		record     bool
	}{
		{ErrArithmeticOne, true, false, false, false, false, false, false},
		{ErrArithmeticTwo, true, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false},
		{ErrLimitOne, false, false, false, true, false, false, false},
		{ErrLimitTwo, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrArithmetic(err) != e.arithmetic {
			t.Errorf("%d: expected 'arithmetic' == %v for err = %v", i, e.arithmetic, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLimit(err) != e.limit {
			t.Errorf("%d: expected 'limit' == %v for err = %v", i, e.limit, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// ledger failures keep their class so callers can branch on it
func TestLedgerClasses(t *testing.T) {
	if !fault.IsErrArithmetic(fault.ErrOverflow) || !fault.IsErrArithmetic(fault.ErrUnderflow) {
		t.Error("overflow and underflow must be arithmetic errors")
	}
	if !fault.IsErrExists(fault.ErrDuplicateAsset) {
		t.Error("duplicate asset must be an exists error")
	}
	if !fault.IsErrLimit(fault.ErrCapacityExceeded) {
		t.Error("capacity exceeded must be a limit error")
	}
	if !fault.IsErrNotFound(fault.ErrNotFound) {
		t.Error("not found must be a not found error")
	}
	for _, err := range []error{fault.ErrInsufficientBalance, fault.ErrNotOwner, fault.ErrSelfTransfer} {
		if !fault.IsErrInvalid(err) {
			t.Errorf("%v must be an invalid error", err)
		}
	}
}
