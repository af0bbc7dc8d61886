// This file is part of dwarf2cpp.
//
// dwarf2cpp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dwarf2cpp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dwarf2cpp.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"reflect"
	"testing"
)

// ExpectEquality compares value against expectedValue and registers a test
// error if they differ. Values of differing types never compare equal.
//
// A literal number argument is of type int. To avoid casting at every call
// site an int expectedValue is widened when value is an int64, uint64,
// uint32, uint16 or uint8.
func ExpectEquality(t *testing.T, value, expectedValue interface{}) bool {
	t.Helper()

	if ev, ok := expectedValue.(int); ok {
		switch v := value.(type) {
		case int64:
			expectedValue = int64(ev)
			_ = v
		case uint64:
			expectedValue = uint64(ev)
		case uint32:
			expectedValue = uint32(ev)
		case uint16:
			expectedValue = uint16(ev)
		case uint8:
			expectedValue = uint8(ev)
		}
	}

	if !reflect.DeepEqual(value, expectedValue) {
		t.Errorf("equality test of type %T failed: %v does not equal %v", value, value, expectedValue)
		return false
	}

	return true
}

// outcome reduces a test result value to success or failure: a bool reports
// itself, an error succeeds when nil, and nil is a success. Any other type
// ends the test immediately.
func outcome(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}
}

// ExpectSuccess tests argument v for the success condition suitable for its
// type, as defined by outcome().
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	if outcome(t, v) {
		return true
	}

	if err, ok := v.(error); ok {
		t.Errorf("expected success (error: %v)", err)
	} else {
		t.Errorf("expected success (%T)", v)
	}

	return false
}

// ExpectFailure is the complement of ExpectSuccess. Note that a nil
// argument is a success, so ExpectFailure(t, nil) fails the test.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	if !outcome(t, v) {
		return true
	}

	t.Errorf("expected failure (%T)", v)

	return false
}
