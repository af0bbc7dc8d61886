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

package ghidra_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/dwarf"
	"github.com/jetsetilly/dwarf2cpp/elffile"
	"github.com/jetsetilly/dwarf2cpp/ghidra"
	"github.com/jetsetilly/dwarf2cpp/test"
)

func newClass(name string, kind cpp.UserTypeKind) *cpp.UserType {
	ut := &cpp.UserType{Name: name, Kind: kind}
	ut.Class = cpp.NewClassType(ut)
	return ut
}

// lineDwarf builds a dwarf context with no entries and a single line chunk.
func lineDwarf(t *testing.T, base uint32, rows ...[3]uint32) *dwarf.Dwarf {
	t.Helper()

	var line []byte
	line = binary.LittleEndian.AppendUint32(line, uint32(8+10*len(rows)))
	line = binary.LittleEndian.AppendUint32(line, base)
	for _, r := range rows {
		line = binary.LittleEndian.AppendUint32(line, r[0])
		line = binary.LittleEndian.AppendUint16(line, uint16(r[1]))
		line = binary.LittleEndian.AppendUint32(line, r[2])
	}

	dwf, err := dwarf.New(&elffile.File{Line: line})
	test.ExpectSuccess(t, err)

	return dwf
}

func TestMappingExport(t *testing.T) {
	base := newClass("Base", cpp.KindClass)
	base.Class.Size = 4

	foo := newClass("Foo", cpp.KindClass)
	foo.Class.Size = 16
	foo.Class.VTable = 0x8001000
	foo.Class.VTableSize = 16
	foo.Class.Inheritances = []cpp.Inheritance{
		{Type: cpp.Type{UserType: base}, Offset: 0},
	}
	foo.Class.Members = []cpp.Member{
		{Name: "x", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTInteger}, Offset: 0, BitOffset: -1, BitSize: -1},
	}

	mode := &cpp.UserType{Name: "Mode", Kind: cpp.KindEnum}
	mode.Enum = &cpp.EnumType{
		Base: dwarf.FTInteger,
		Elements: []cpp.EnumElement{
			{Name: "A", Value: 0},
			{Name: "B", Value: 5},
		},
	}

	g := &cpp.Variable{
		Name:     "g",
		Type:     cpp.Type{IsFundamental: true, Fund: dwarf.FTInteger},
		IsGlobal: true,
		Address:  0x8000100,
	}

	fn := &cpp.Function{
		Name:         "update",
		MangledName:  "update__3FooFi",
		IsGlobal:     true,
		StartAddress: 0x100,
		TypeOwner:    foo,
	}
	fn.ReturnType = cpp.Type{IsFundamental: true, Fund: dwarf.FTVoid}
	fn.Parameters = []cpp.Parameter{
		{Name: "x", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTInteger}},
	}
	fn.Variables = []*cpp.Variable{
		{
			Name: "f",
			Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTFloat},
			Location: []cpp.LocationOp{
				{Opcode: dwarf.OpReg, Value: 4},
				{Opcode: dwarf.OpAdd, Value: -1},
			},
		},
	}

	f := &cpp.File{
		Filename:  "src/game.cpp",
		UserTypes: []*cpp.UserType{base, foo, mode},
		Variables: []*cpp.Variable{g},
		Functions: []*cpp.Function{fn},
	}

	dwf := lineDwarf(t, 0x100, [3]uint32{10, 1, 0}, [3]uint32{0, 0xffff, 0x20})

	b := &strings.Builder{}
	err := ghidra.Write(b, dwf, []*cpp.File{f})
	test.ExpectSuccess(t, err)

	expected := "# src/game.cpp\n" +
		"class Base -1 0 null null 4\n" +
		"class Foo 134221824 16 Base,0 x,int,0,4,-1,-1 16\n" +
		"enum Mode 4 A=0;B=5\n" +
		"var g 0x8000100 int true\n" +
		"func update update__3FooFi 0x100 void Foo int,x float,f,false,1=4,7 10,0x0;0,0x20\n"

	test.ExpectEquality(t, b.String(), expected)
}

// compiler-invented names are prefixed with the file basename before the
// records are written.
func TestAnonymousTypeRenaming(t *testing.T) {
	anon := newClass("_anon0", cpp.KindStruct)
	anon.Class.Size = 4

	f := &cpp.File{
		Filename:  "src/game.cpp",
		UserTypes: []*cpp.UserType{anon},
	}

	dwf, err := dwarf.New(&elffile.File{})
	test.ExpectSuccess(t, err)

	b := &strings.Builder{}
	test.ExpectSuccess(t, ghidra.Write(b, dwf, []*cpp.File{f}))

	test.ExpectEquality(t, b.String(), "# src/game.cpp\nstruct game_cpp_anon0 null 4\n")

	// the rename sticks. the user type is shared with the source-style
	// emitter and both must agree on the name
	test.ExpectEquality(t, anon.Name, "game_cpp_anon0")
}

// a member that is a pointer to a class reports the class size, not the
// pointer size.
func TestMemberSizeOfClassPointer(t *testing.T) {
	big := newClass("Big", cpp.KindClass)
	big.Class.Size = 64

	s := newClass("Holder", cpp.KindStruct)
	s.Class.Size = 4
	s.Class.Members = []cpp.Member{
		{
			Name:      "ptr",
			Type:      cpp.Type{UserType: big, Modifiers: []uint8{dwarf.ModPointerTo}},
			Offset:    0,
			BitOffset: -1,
			BitSize:   -1,
		},
	}

	f := &cpp.File{
		Filename:  "a.cpp",
		UserTypes: []*cpp.UserType{big, s},
	}

	dwf, err := dwarf.New(&elffile.File{})
	test.ExpectSuccess(t, err)

	b := &strings.Builder{}
	test.ExpectSuccess(t, ghidra.Write(b, dwf, []*cpp.File{f}))

	expected := "# a.cpp\n" +
		"class Big -1 0 null null 64\n" +
		"struct Holder ptr,Big*,0,64,-1,-1 4\n"

	test.ExpectEquality(t, b.String(), expected)
}
