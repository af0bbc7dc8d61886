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

package cpp_test

import (
	"testing"

	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/dwarf"
	"github.com/jetsetilly/dwarf2cpp/test"
)

func newClass(name string, kind cpp.UserTypeKind) *cpp.UserType {
	ut := &cpp.UserType{Name: name, Kind: kind}
	ut.Class = cpp.NewClassType(ut)
	return ut
}

func TestHexString(t *testing.T) {
	test.ExpectEquality(t, cpp.HexString(0), "0x0")
	test.ExpectEquality(t, cpp.HexString(0x8001000), "0x8001000")

	// unresolved addresses appear as 32-bit two's complement
	test.ExpectEquality(t, cpp.HexString(-1), "0xffffffff")
}

func TestFundamentalRendering(t *testing.T) {
	test.ExpectEquality(t, cpp.FundamentalString(dwarf.FTInteger), "int")
	test.ExpectEquality(t, cpp.FundamentalString(dwarf.FTSignedInteger), "int")
	test.ExpectEquality(t, cpp.FundamentalString(dwarf.FTUnsignedInteger), "uint")
	test.ExpectEquality(t, cpp.FundamentalString(dwarf.FTExtPrecFloat), "long double")
	test.ExpectEquality(t, cpp.FundamentalString(dwarf.FTULong128), "ulonglong")
	test.ExpectEquality(t, cpp.FundamentalString(dwarf.FundType(0x999)), "<unknown fundamental type (0x999)>")

	test.ExpectEquality(t, cpp.FundamentalSize(dwarf.FTChar), 1)
	test.ExpectEquality(t, cpp.FundamentalSize(dwarf.FTShort), 2)
	test.ExpectEquality(t, cpp.FundamentalSize(dwarf.FTInteger), 4)
	test.ExpectEquality(t, cpp.FundamentalSize(dwarf.FTLong), 8)
	test.ExpectEquality(t, cpp.FundamentalSize(dwarf.FTBoolean), 1)
	test.ExpectEquality(t, cpp.FundamentalSize(dwarf.FundType(0x999)), -1)
}

func TestModifierRendering(t *testing.T) {
	test.ExpectEquality(t, cpp.ModifierString(dwarf.ModConst), "const")
	test.ExpectEquality(t, cpp.ModifierString(dwarf.ModVolatile), "volatile")
	test.ExpectEquality(t, cpp.ModifierString(dwarf.ModPointerTo), "*")
	test.ExpectEquality(t, cpp.ModifierString(dwarf.ModReferenceTo), "&")
	test.ExpectEquality(t, cpp.ModifierString(0x7), "<unknown modifier (0x7)>")
}

func TestTypeDeclaration(t *testing.T) {
	// const char *
	typ := cpp.Type{
		IsFundamental: true,
		Fund:          dwarf.FTChar,
		Modifiers:     []uint8{dwarf.ModPointerTo, dwarf.ModConst},
	}
	test.ExpectEquality(t, typ.Declaration("s"), "const char* s")
	test.ExpectEquality(t, typ.String(), "const char*")
	test.ExpectEquality(t, typ.Size(), 4)

	// reference to class
	c := newClass("Actor", cpp.KindClass)
	c.Class.Size = 16
	typ = cpp.Type{
		UserType:  c,
		Modifiers: []uint8{dwarf.ModReferenceTo},
	}
	test.ExpectEquality(t, typ.Declaration("a"), "Actor& a")
	test.ExpectEquality(t, typ.Size(), 4)

	// plain class type takes its size from the class body
	typ = cpp.Type{UserType: c}
	test.ExpectEquality(t, typ.Size(), 16)
}

// scenario: a bit-field member renders with its offset comment and width.
func TestMemberBitField(t *testing.T) {
	m := cpp.Member{
		Name:      "flags",
		Type:      cpp.Type{IsFundamental: true, Fund: dwarf.FTUnsignedInteger},
		Offset:    0x4,
		BitOffset: 5,
		BitSize:   3,
	}

	test.ExpectEquality(t, m.String(true), "/* 0x4 */ uint flags : 3")
	test.ExpectEquality(t, m.String(false), "uint flags : 3")
}

// scenario: consecutive members sharing an offset reconstruct as an
// anonymous union.
func TestAnonymousUnion(t *testing.T) {
	s := newClass("Value", cpp.KindStruct)
	s.Class.Size = 4
	s.Class.Members = []cpp.Member{
		{Name: "a", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTInteger}, Offset: 0, BitOffset: -1, BitSize: -1},
		{Name: "b", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTFloat}, Offset: 0, BitOffset: -1, BitSize: -1},
	}

	expected := "struct Value\n" +
		"{\n" +
		"\tunion\n" +
		"\t{\n" +
		"\t\tint a;\n" +
		"\t\tfloat b;\n" +
		"\t};\n" +
		"\t// vtable: 0xffffffff\n" +
		"};"

	test.ExpectEquality(t, s.DefinitionString(false), expected)
}

// bit-field members sharing an offset group as an anonymous struct instead.
func TestAnonymousStruct(t *testing.T) {
	s := newClass("Bits", cpp.KindStruct)
	s.Class.Members = []cpp.Member{
		{Name: "lo", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTUnsignedInteger}, Offset: 0, BitOffset: 0, BitSize: 4},
		{Name: "hi", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTUnsignedInteger}, Offset: 0, BitOffset: 4, BitSize: 4},
	}

	expected := "struct Bits\n" +
		"{\n" +
		"\tstruct\n" +
		"\t{\n" +
		"\t\tuint lo : 4;\n" +
		"\t\tuint hi : 4;\n" +
		"\t};\n" +
		"\t// vtable: 0xffffffff\n" +
		"};"

	test.ExpectEquality(t, s.DefinitionString(false), expected)
}

// members of a union never group, whatever their offsets.
func TestUnionBody(t *testing.T) {
	u := newClass("U", cpp.KindUnion)
	u.Class.Members = []cpp.Member{
		{Name: "a", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTInteger}, Offset: 0, BitOffset: -1, BitSize: -1},
		{Name: "b", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTFloat}, Offset: 0, BitOffset: -1, BitSize: -1},
	}

	expected := "union U\n" +
		"{\n" +
		"\tint a;\n" +
		"\tfloat b;\n" +
		"\t// vtable: 0xffffffff\n" +
		"};"

	test.ExpectEquality(t, u.DefinitionString(false), expected)
}

// scenario: sparse enumerations only print values that break the sequence.
func TestEnumSparseValues(t *testing.T) {
	e := &cpp.UserType{Name: "Mode", Kind: cpp.KindEnum}
	e.Enum = &cpp.EnumType{
		Base: dwarf.FTInteger,
		Elements: []cpp.EnumElement{
			{Name: "A", Value: 0},
			{Name: "B", Value: 1},
			{Name: "D", Value: 5},
			{Name: "E", Value: 6},
		},
	}

	expected := "enum Mode\n" +
		"{\n" +
		"\tA,\n" +
		"\tB,\n" +
		"\tD = 0x5,\n" +
		"\tE\n" +
		"};"

	test.ExpectEquality(t, e.DefinitionString(false), expected)
}

// an enumeration with a non-int underlying type names it in the header.
func TestEnumBaseType(t *testing.T) {
	e := &cpp.UserType{Name: "Small", Kind: cpp.KindEnum}
	e.Enum = &cpp.EnumType{Base: dwarf.FTUnsignedChar}

	test.ExpectEquality(t, e.DeclarationString(), "typedef enum Small : uchar;")
}

// scenario: an array of pointers to a class.
func TestArrayOfPointer(t *testing.T) {
	c := newClass("C", cpp.KindClass)
	c.Class.Size = 12

	arr := &cpp.UserType{Name: "CList", Kind: cpp.KindArray}
	arr.Array = &cpp.ArrayType{
		Elem:       cpp.Type{UserType: c, Modifiers: []uint8{dwarf.ModPointerTo}},
		Dimensions: []int{10},
	}

	typ := cpp.Type{UserType: arr}
	test.ExpectEquality(t, typ.Size(), 40)
	test.ExpectEquality(t, typ.Declaration("name"), "C* name[10]")

	// multi-dimensional size composes
	arr.Array.Dimensions = []int{10, 3}
	test.ExpectEquality(t, typ.Size(), 120)
}

// subroutine types rotate their separator with nesting depth.
func TestFunctionTypeSeparators(t *testing.T) {
	inner := &cpp.UserType{Kind: cpp.KindFunction}
	inner.Function = &cpp.FunctionType{
		ReturnType: cpp.Type{IsFundamental: true, Fund: dwarf.FTVoid},
	}

	outer := &cpp.UserType{Name: "cb", Kind: cpp.KindFunction}
	outer.Function = &cpp.FunctionType{
		ReturnType: cpp.Type{IsFundamental: true, Fund: dwarf.FTInteger},
		Parameters: []cpp.Parameter{
			{Name: "handler", Type: cpp.Type{UserType: inner}},
		},
	}

	// the outer level separates with '@', the nested function type with '$'
	test.ExpectEquality(t, outer.DeclarationString(), "typedef cb@int@null$void;")
}

func TestVariableLocationString(t *testing.T) {
	v := &cpp.Variable{
		Name:     "counter",
		Type:     cpp.Type{IsFundamental: true, Fund: dwarf.FTInteger},
		IsGlobal: true,
		Address:  0x8001000,
		Location: []cpp.LocationOp{
			{Opcode: dwarf.OpAddr, Value: 0x8001000},
			{Opcode: dwarf.OpAdd, Value: -1},
		},
	}

	test.ExpectEquality(t, v.Declaration(), "int counter")
	test.ExpectEquality(t, v.LocationString(), "Global, Address: 0x8001000, Loc Data: ADDR=134221824 ADD ")

	// unknown opcodes render as hex with their operand
	v.Location = []cpp.LocationOp{{Opcode: 0x30, Value: 2}}
	v.IsGlobal = false
	v.Address = -1
	test.ExpectEquality(t, v.LocationString(), "Local, Address: 0xffffffff, Loc Data: 0x30=2 ")
}

func TestFunctionRendering(t *testing.T) {
	c := newClass("Foo", cpp.KindClass)

	fn := &cpp.Function{
		Name:         "update",
		MangledName:  "update__3FooFi",
		IsGlobal:     true,
		StartAddress: 0x80010f0,
		TypeOwner:    c,
	}
	fn.ReturnType = cpp.Type{IsFundamental: true, Fund: dwarf.FTVoid}
	fn.Parameters = []cpp.Parameter{
		{Name: "x", Type: cpp.Type{IsFundamental: true, Fund: dwarf.FTInteger}},
	}

	test.ExpectEquality(t, fn.NameString(), "void Foo::update(int x)")
	test.ExpectEquality(t, fn.DeclarationString(), "void update(int x);")

	expected := "// update__3FooFi, Global\n" +
		"// Start address: 0x80010f0\n" +
		"void Foo::update(int x)\n" +
		"{\n" +
		"}"
	test.ExpectEquality(t, fn.DefinitionString(), expected)
}
