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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/dwarf2cpp/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(100)

	s := &strings.Builder{}
	l.write(s)
	test.ExpectEquality(t, s.String(), "")

	l.log("test", "this is a test")
	s.Reset()
	l.write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test\n")

	// repeated entries are collapsed
	l.log("test", "this is a test")
	s.Reset()
	l.write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test (repeat x2)\n")

	l.logf("test2", "%d", 10)
	s.Reset()
	l.write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test (repeat x2)\ntest2: 10\n")

	s.Reset()
	l.tail(s, 1)
	test.ExpectEquality(t, s.String(), "test2: 10\n")

	l.clear()
	s.Reset()
	l.write(s)
	test.ExpectEquality(t, s.String(), "")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	s := &strings.Builder{}
	l.write(s)
	test.ExpectEquality(t, s.String(), "test: b\ntest: c\n")
}
