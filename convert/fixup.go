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

package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/logger"
)

// fixUserTypeNames makes every user type name in the compile unit unique
// and non-empty. Unnamed types become "type"; the members of a bucket with
// more than one entry are suffixed with their position in the bucket.
func (c *converter) fixUserTypeNames() {
	for name, bucket := range c.names {
		noname := name == ""
		duplicate := len(bucket) > 1

		if !noname && !duplicate {
			continue // for loop
		}

		for i, ut := range bucket {
			if noname {
				ut.Name = "type"
			}
			if duplicate {
				ut.Name = fmt.Sprintf("%s_%d", ut.Name, i)
			}
		}
	}
}

// readLengthName reads a <decimal length><name> sequence from s, as used in
// mangled names and vtable variable names. Returns false if s does not
// begin with digits or is too short for the named length.
func readLengthName(s string) (string, bool) {
	i := 0
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}

	if i == 0 || i+n > len(s) {
		return "", false
	}

	return s[i : i+n], true
}

// mangledClassName recovers the owning class name from a mangled function
// name. The scheme puts the class name after the last "__", prefixed with
// its length and followed by 'F' and the encoded parameter types:
//
//	doThing__3FooFi  ->  Foo
func mangledClassName(mangled string) (string, bool) {
	if len(mangled) <= 2 {
		return "", false
	}

	foundAt := strings.LastIndex(mangled, "__")
	if foundAt == -1 {
		return "", false
	}

	name, ok := readLengthName(mangled[foundAt+2:])
	if !ok {
		return "", false
	}

	// position of the first character after the class name. it must be the
	// 'F' that introduces the parameter types
	after := foundAt + 2
	for after < len(mangled) && mangled[after] >= '0' && mangled[after] <= '9' {
		after++
	}
	after += len(name)

	if after >= len(mangled) || mangled[after] != 'F' {
		return "", false
	}

	return name, true
}

// attachMethods recovers the class membership of the compile unit's
// functions. A function with a leading 'this' parameter is a method of the
// class that 'this' points at. Failing that, the class name encoded in the
// mangled name is looked up among the compile unit's user types.
//
// This runs before name disambiguation because mangled names refer to the
// class names the compiler knew, not to any synthetic name invented by the
// fixup.
func (c *converter) attachMethods(file *cpp.File) {
	for _, fn := range file.Functions {
		if len(fn.Parameters) > 0 && fn.Parameters[0].Name == "this" {
			pt := fn.Parameters[0].Type

			if pt.IsFundamental || pt.UserType == nil || pt.UserType.Class == nil {
				logger.Logf("convert", "function '%s': 'this' parameter does not point at a class", fn.Name)
				continue // for loop
			}

			fn.TypeOwner = pt.UserType
			fn.Parameters = fn.Parameters[1:]
			pt.UserType.Class.Methods = append(pt.UserType.Class.Methods, fn)
			continue // for loop
		}

		className, ok := mangledClassName(fn.MangledName)
		if !ok {
			continue // for loop
		}

		var matches []*cpp.UserType
		for _, ut := range file.UserTypes {
			if ut.Name == className && ut.Class != nil {
				matches = append(matches, ut)
			}
		}

		if len(matches) == 0 {
			continue // for loop
		}
		if len(matches) > 1 {
			logger.Logf("convert", "function '%s': class name '%s' is ambiguous (%d candidates)",
				fn.Name, className, len(matches))
		}

		fn.TypeOwner = matches[0]
		matches[0].Class.Methods = append(matches[0].Class.Methods, fn)
	}

	if c.dwf.HasLineInfo() {
		for _, ut := range file.UserTypes {
			if ut.Class != nil && len(ut.Class.Methods) > 1 {
				methods := ut.Class.Methods
				sort.SliceStable(methods, func(i, j int) bool {
					return c.functionLess(methods[i], methods[j])
				})
			}
		}
	}
}

// firstLine returns the source line of the first line table row for the
// function, if the function has line information at all.
func (c *converter) firstLine(fn *cpp.Function) (uint32, bool) {
	rows := c.dwf.LineEntries(fn.StartAddress)
	if len(rows) == 0 {
		return 0, false
	}
	return rows[0].LineNumber, true
}

// functionLess is the ordering used for function lists: descending source
// line, with functions lacking line information sorting after everything
// else, ordered among themselves by start address.
func (c *converter) functionLess(a *cpp.Function, b *cpp.Function) bool {
	al, aok := c.firstLine(a)
	bl, bok := c.firstLine(b)

	if aok && bok {
		return al > bl
	}
	if aok != bok {
		return aok
	}
	return a.StartAddress < b.StartAddress
}

// sortFunctions orders the compile unit's functions for emission. With line
// information the descending sort followed by the reversal leaves the
// functions in ascending source line order. Without line information the
// compile unit order stands.
func (c *converter) sortFunctions(file *cpp.File) {
	if !c.dwf.HasLineInfo() {
		return
	}

	fns := file.Functions
	sort.SliceStable(fns, func(i, j int) bool {
		return c.functionLess(fns[i], fns[j])
	})

	for i, j := 0, len(fns)-1; i < j; i, j = i+1, j-1 {
		fns[i], fns[j] = fns[j], fns[i]
	}
}

// attachVtables binds vtable addresses from the compiler-emitted __vt__
// variables. The scan covers user types from every compile unit because
// the vtable variable does not always live in the compile unit that
// declares the class.
func (c *converter) attachVtables(file *cpp.File) {
	for _, v := range file.Variables {
		if !strings.HasPrefix(v.Name, "__vt__") {
			continue // for loop
		}

		className, ok := readLengthName(v.Name[len("__vt__"):])
		if !ok {
			continue // for loop
		}

		size := 0
		if !v.Type.IsFundamental && v.Type.UserType != nil && v.Type.UserType.Class != nil {
			size = v.Type.UserType.Class.Size
		} else {
			logger.Logf("convert", "vtable variable '%s' is not of a class type", v.Name)
		}

		found := false
		for _, ut := range c.userTypes {
			if ut.Name == className && ut.Class != nil {
				ut.Class.VTable = v.Address
				ut.Class.VTableSize = size
				found = true
			}
		}

		if !found {
			logger.Logf("convert", "vtable variable '%s': no class named '%s'", v.Name, className)
		}
	}
}
