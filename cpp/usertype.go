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

package cpp

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/dwarf2cpp/dwarf"
)

// UserTypeKind discriminates the body of a UserType.
type UserTypeKind int

// a list of valid UserTypeKind values.
const (
	KindClass UserTypeKind = iota
	KindStruct
	KindUnion
	KindEnum
	KindArray
	KindFunction
)

// UserType is a single user-defined type: a class, struct or union; an
// enumeration; an array; or a subroutine type. The body corresponding to the
// Kind field is the only one that is non-nil.
type UserType struct {
	Name string

	// position of the user type in the owning File
	Index int

	Kind     UserTypeKind
	Class    *ClassType
	Enum     *EnumType
	Array    *ArrayType
	Function *FunctionType
}

// DeclarationString renders the typedef-style declaration of the user type.
func (ut *UserType) DeclarationString() string {
	return fmt.Sprintf("typedef %s;", ut.nameString(false, false))
}

// DefinitionString renders the full definition of the user type. Only
// class-like types and enumerations have definition bodies.
func (ut *UserType) DefinitionString(includeComments bool) string {
	b := strings.Builder{}
	b.WriteString(ut.nameString(includeComments, true))
	b.WriteString("\n")

	switch ut.Kind {
	case KindClass, KindStruct, KindUnion:
		b.WriteString(ut.Class.bodyString(includeComments))
	case KindEnum:
		b.WriteString(ut.Enum.bodyString())
	}

	b.WriteString(";")

	return b.String()
}

func (ut *UserType) nameString(includeSize bool, includeInheritances bool) string {
	switch ut.Kind {
	case KindClass, KindStruct, KindUnion:
		return ut.Class.nameString(ut.Name, includeSize, includeInheritances)
	case KindEnum:
		return ut.Enum.nameString(ut.Name)
	case KindArray:
		return ut.Array.declaration(ut.Name, 0)
	case KindFunction:
		return ut.Function.nameString(ut.Name, 0)
	}

	return fmt.Sprintf("<unknown user type (%#x)>", int(ut.Kind))
}

// ClassType is the body of a class, struct or union.
type ClassType struct {
	// the user type this body belongs to. the three class-like kinds share
	// this body type and the holder's Kind distinguishes them
	Holder *UserType

	// size of the aggregate in bytes
	Size int

	Members      []Member
	Inheritances []Inheritance

	// member functions attached by the fixup pass
	Methods []*Function

	// address and size of the class's vtable, bound by the fixup pass from
	// the compiler-emitted __vt__ variable. -1 until bound
	VTable     int64
	VTableSize int
}

// NewClassType creates a class body attached to its holding user type.
func NewClassType(holder *UserType) *ClassType {
	return &ClassType{
		Holder: holder,
		VTable: -1,
	}
}

// Member is a single data member of a class-like type.
type Member struct {
	Name   string
	Type   Type
	Offset int

	// bit-field position and width. both -1 when the member is not a
	// bit-field
	BitOffset int
	BitSize   int
}

// String renders the member as a declaration.
func (m Member) String(includeOffset bool) string {
	b := strings.Builder{}

	if includeOffset {
		b.WriteString(fmt.Sprintf("/* %s */ ", HexString(int64(m.Offset))))
	}

	b.WriteString(m.Type.Declaration(m.Name))
	if m.BitSize != -1 {
		b.WriteString(fmt.Sprintf(" : %d", m.BitSize))
	}

	return b.String()
}

// Inheritance records a base class and the offset of the base sub-object.
type Inheritance struct {
	Type   Type
	Offset int
}

func (c *ClassType) nameString(name string, includeSize bool, includeInheritances bool) string {
	b := strings.Builder{}

	switch c.Holder.Kind {
	case KindStruct:
		b.WriteString("struct ")
	case KindUnion:
		b.WriteString("union ")
	default:
		b.WriteString("class ")
	}
	b.WriteString(name)

	if includeInheritances {
		for i := range c.Inheritances {
			if i == 0 {
				b.WriteString(" : ")
			} else {
				b.WriteString(", ")
			}
			b.WriteString(c.Inheritances[i].Type.String())
		}
	}

	if includeSize {
		b.WriteString(fmt.Sprintf(" /* %s */", HexString(int64(c.Size))))
	}

	return b.String()
}

// bodyString renders the members and method declarations of the aggregate.
// consecutive members sharing an offset are grouped into an anonymous union,
// or an anonymous struct when the members are bit-fields.
func (c *ClassType) bodyString(includeOffsets bool) string {
	b := strings.Builder{}
	b.WriteString("{\n")

	// anonymous grouping makes no sense inside a union
	includeGroups := c.Holder.Kind != KindUnion
	groupOffset := -1

	for i := range c.Members {
		b.WriteString("\t")

		m := &c.Members[i]
		offset := m.Offset

		if includeGroups && offset != groupOffset &&
			i < len(c.Members)-1 && c.Members[i+1].Offset == offset {
			groupOffset = offset

			if m.BitSize == -1 {
				b.WriteString("union")
			} else {
				b.WriteString("struct")
			}

			b.WriteString("\n\t{\n\t")
		}

		if includeGroups && groupOffset != -1 {
			b.WriteString("\t")
		}

		b.WriteString(m.String(includeOffsets))
		b.WriteString(";\n")

		if includeGroups && groupOffset != -1 &&
			(i == len(c.Members)-1 || c.Members[i+1].Offset != offset) {
			groupOffset = -1
			b.WriteString("\t};\n")
		}
	}

	if len(c.Methods) > 0 {
		b.WriteString("\n")
		for _, fn := range c.Methods {
			b.WriteString("\t")
			b.WriteString(fn.DeclarationString())
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("\t// vtable: %s\n", HexString(c.VTable)))
	b.WriteString("}")

	return b.String()
}

// EnumType is the body of an enumeration.
type EnumType struct {
	// fundamental type underlying the enumeration, derived from the byte
	// size of the enumeration
	Base dwarf.FundType

	Elements []EnumElement
}

// EnumElement is a single enumerator.
type EnumElement struct {
	Name  string
	Value int64
}

func (e *EnumType) nameString(name string) string {
	b := strings.Builder{}
	b.WriteString("enum ")
	b.WriteString(name)
	if e.Base != dwarf.FTInteger {
		b.WriteString(" : ")
		b.WriteString(FundamentalString(e.Base))
	}
	return b.String()
}

// bodyString renders the enumerators. the value is omitted whenever it
// follows on from the previous enumerator, matching how the source was most
// likely written.
func (e *EnumType) bodyString() string {
	b := strings.Builder{}
	b.WriteString("{\n")

	last := int64(-1)
	for i, el := range e.Elements {
		b.WriteString("\t")
		b.WriteString(el.Name)
		if el.Value != last+1 {
			b.WriteString(" = ")
			b.WriteString(HexString(el.Value))
		}
		last = el.Value

		if i != len(e.Elements)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString("}")

	return b.String()
}

// ArrayType is the body of an array type.
type ArrayType struct {
	// element type. decoded from the FMT_ET record of the subscript data
	Elem Type

	// size of each dimension, outermost first
	Dimensions []int
}

func (a *ArrayType) declaration(varName string, depth int) string {
	b := strings.Builder{}
	b.WriteString(a.Elem.declaration(varName, depth))

	for _, d := range a.Dimensions {
		b.WriteString(fmt.Sprintf("[%d]", d))
	}

	return b.String()
}

// FunctionType is the body of a subroutine type. It also forms the
// signature part of a Function.
type FunctionType struct {
	ReturnType Type
	Parameters []Parameter
}

// Parameter is a single formal parameter.
type Parameter struct {
	Name string
	Type Type
}

// separator characters for the nested rendering of subroutine types,
// selected by nesting depth. the rotation is a contract with the mapping
// consumer and must remain stable.
var nestChars = [4]byte{'@', '$', ':', '|'}

// nameString renders the subroutine type in the form
// name@return@param@param, with the separator selected by nesting depth.
func (f *FunctionType) nameString(name string, depth int) string {
	b := strings.Builder{}

	sep := nestChars[depth%len(nestChars)]

	if name == "" {
		b.WriteString("null")
	} else {
		b.WriteString(name)
	}
	b.WriteByte(sep)
	b.WriteString(f.ReturnType.declaration("", depth+1))

	for i := range f.Parameters {
		b.WriteByte(sep)
		b.WriteString(f.Parameters[i].Type.declaration("", depth+1))
	}

	return b.String()
}

// parametersString renders the parameter list of a function declaration.
func (f *FunctionType) parametersString() string {
	b := strings.Builder{}
	b.WriteString("(")

	for i := range f.Parameters {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(f.Parameters[i].Type.Declaration(f.Parameters[i].Name))
	}

	b.WriteString(")")

	return b.String()
}
