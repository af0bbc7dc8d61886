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

// Package ghidra writes the mapping export consumed by the Ghidra import
// script. One line per record, space delimited, with semicolons between the
// entries of a sub-list and commas between the fields of an entry. An empty
// sub-list is written as the word null.
//
// The record kinds are class, struct, union, enum, var and func. Array and
// subroutine types have no record of their own; they appear inline wherever
// another record refers to them.
package ghidra

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/dwarf"
	"github.com/jetsetilly/dwarf2cpp/logger"
)

// Write the mapping export for all files to the output.
func Write(output io.Writer, dwf *dwarf.Dwarf, files []*cpp.File) error {
	w := &writer{output: output}

	for _, f := range files {
		w.file(dwf, f)
	}

	return w.err
}

type writer struct {
	output io.Writer
	err    error
}

func (w *writer) line(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.output, s+"\n")
}

func (w *writer) file(dwf *dwarf.Dwarf, f *cpp.File) {
	w.line("# " + f.Filename)

	// compiler-invented type names are not unique across compile units.
	// prefix them with the basename of the file so the consumer sees one
	// namespace. note that this renames the shared user type for good
	basename := f.Filename
	if i := strings.LastIndex(basename, "/"); i != -1 {
		basename = basename[i+1:]
	}
	for _, ut := range f.UserTypes {
		if strings.HasPrefix(ut.Name, "_anon") || strings.HasPrefix(ut.Name, "_enum") ||
			strings.HasPrefix(ut.Name, "_class") {
			ut.Name = strings.ReplaceAll(basename+ut.Name, ".", "_")
		}
	}

	for _, ut := range f.UserTypes {
		switch ut.Kind {
		case cpp.KindClass:
			w.line(fmt.Sprintf("class %s %d %d %s %s %d", ut.Name,
				ut.Class.VTable, ut.Class.VTableSize,
				inheritanceList(ut.Class), memberList(ut.Class), ut.Class.Size))
		case cpp.KindStruct:
			w.line(fmt.Sprintf("struct %s %s %d", ut.Name, memberList(ut.Class), ut.Class.Size))
		case cpp.KindUnion:
			w.line(fmt.Sprintf("union %s %s %d", ut.Name, memberList(ut.Class), ut.Class.Size))
		case cpp.KindEnum:
			w.line(fmt.Sprintf("enum %s %d %s", ut.Name,
				cpp.FundamentalSize(ut.Enum.Base), elementList(ut.Enum)))
		}
	}

	for _, v := range f.Variables {
		w.line(fmt.Sprintf("var %s %s %s %t", v.Name, cpp.HexString(v.Address), v.Type, v.IsGlobal))
	}

	for _, fn := range f.Functions {
		w.function(dwf, fn)
	}

	logger.Logf("ghidra", "%s: %d user types, %d variables, %d functions",
		f.Filename, len(f.UserTypes), len(f.Variables), len(f.Functions))
}

func inheritanceList(c *cpp.ClassType) string {
	if len(c.Inheritances) == 0 {
		return "null"
	}

	b := strings.Builder{}
	for i, inh := range c.Inheritances {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(fmt.Sprintf("%s,%d", inh.Type, inh.Offset))
	}
	return b.String()
}

// memberSize is the size reported for a member in the mapping export. for
// class-like member types the aggregate's byte size is reported, even when
// the member is only a pointer to the aggregate.
func memberSize(m *cpp.Member) int {
	if m.Type.IsFundamental {
		return m.Type.Size()
	}

	switch m.Type.UserType.Kind {
	case cpp.KindClass, cpp.KindStruct, cpp.KindUnion:
		return m.Type.UserType.Class.Size
	}

	return m.Type.Size()
}

func memberList(c *cpp.ClassType) string {
	if len(c.Members) == 0 {
		return "null"
	}

	b := strings.Builder{}
	for i := range c.Members {
		if i > 0 {
			b.WriteString(";")
		}
		m := &c.Members[i]
		b.WriteString(fmt.Sprintf("%s,%s,%d,%d,%d,%d",
			m.Name, m.Type, m.Offset, memberSize(m), m.BitSize, m.BitOffset))
	}
	return b.String()
}

func elementList(e *cpp.EnumType) string {
	if len(e.Elements) == 0 {
		return "null"
	}

	b := strings.Builder{}
	for i, el := range e.Elements {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(fmt.Sprintf("%s=%d", el.Name, el.Value))
	}
	return b.String()
}

func (w *writer) function(dwf *dwarf.Dwarf, fn *cpp.Function) {
	mangled := fn.MangledName
	if mangled == "" {
		mangled = "null"
	}

	owner := "null"
	if fn.TypeOwner != nil {
		owner = fn.TypeOwner.Name
	}

	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("func %s %s %s %s %s ", fn.Name, mangled,
		cpp.HexString(int64(fn.StartAddress)), fn.ReturnType, owner))

	// parameters
	if len(fn.Parameters) == 0 {
		b.WriteString("null")
	} else {
		for i := range fn.Parameters {
			if i > 0 {
				b.WriteString(";")
			}
			p := &fn.Parameters[i]
			b.WriteString(fmt.Sprintf("%s,%s", p.Type, p.Name))
		}
	}
	b.WriteString(" ")

	// local variables, each with its location expression
	if len(fn.Variables) == 0 {
		b.WriteString("null")
	} else {
		for i, v := range fn.Variables {
			if i > 0 {
				b.WriteString(";")
			}
			b.WriteString(fmt.Sprintf("%s,%s,%t", v.Type, v.Name, v.IsGlobal))
			for _, op := range v.Location {
				b.WriteString(fmt.Sprintf(",%d", op.Opcode))
				if op.HasOperand() {
					b.WriteString(fmt.Sprintf("=%d", op.Value))
				}
			}
		}
	}
	b.WriteString(" ")

	// line numbers
	lines := dwf.LineEntries(fn.StartAddress)
	if len(lines) == 0 {
		b.WriteString("null")
	} else {
		for i, le := range lines {
			if i > 0 {
				b.WriteString(";")
			}
			b.WriteString(fmt.Sprintf("%d,%s", le.LineNumber, cpp.HexString(int64(le.AddressOffset))))
		}
	}

	w.line(b.String())
}
