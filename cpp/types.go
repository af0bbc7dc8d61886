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

// HexString formats a value the way addresses and offsets appear in the
// output. negative values are treated as 32-bit two's complement, which is
// how an unresolved address of -1 has always appeared in this format.
func HexString(v int64) string {
	if v < 0 {
		return fmt.Sprintf("%#x", uint32(int32(v)))
	}
	return fmt.Sprintf("%#x", v)
}

// Type describes the type of a variable, member, parameter or return value.
// It is either a fundamental type or a reference to a UserType, wrapped in
// zero or more modifiers.
type Type struct {
	IsFundamental bool
	Fund          dwarf.FundType
	UserType      *UserType

	// modifier bytes stored verbatim in DWARFv1 order, innermost first.
	// const and volatile render as a prefix, pointer and reference as a
	// postfix
	Modifiers []uint8
}

// Declaration renders the type as the declaration of the named variable.
// Pass an empty string for the bare type.
func (t Type) Declaration(varName string) string {
	return t.declaration(varName, 0)
}

func (t Type) String() string {
	return t.declaration("", 0)
}

// depth is the function-type nesting depth, used to select the separator for
// subroutine types.
func (t Type) declaration(varName string, depth int) string {
	b := strings.Builder{}

	for _, m := range t.Modifiers {
		if m == dwarf.ModConst || m == dwarf.ModVolatile {
			b.WriteString(ModifierString(m))
			b.WriteString(" ")
		}
	}

	if t.IsFundamental {
		b.WriteString(FundamentalString(t.Fund))
	} else {
		switch t.UserType.Kind {
		case KindArray:
			b.WriteString(t.UserType.Array.declaration(varName, depth))
			for _, m := range t.Modifiers {
				if m != dwarf.ModConst && m != dwarf.ModVolatile {
					b.WriteString(ModifierString(m))
				}
			}
			return b.String()
		case KindFunction:
			// subroutine types render in the nested separator form,
			// discarding any modifiers
			return t.UserType.Function.nameString(varName, depth)
		default:
			b.WriteString(t.UserType.Name)
		}
	}

	for _, m := range t.Modifiers {
		if m == dwarf.ModPointerTo || m == dwarf.ModReferenceTo {
			b.WriteString(ModifierString(m))
		}
	}

	if varName != "" {
		b.WriteString(" ")
		b.WriteString(varName)
	}

	return b.String()
}

// Size in bytes of a value of this type. A pointer or reference modifier
// makes the size that of a machine word regardless of what is pointed at.
func (t Type) Size() int {
	for _, m := range t.Modifiers {
		if m == dwarf.ModPointerTo || m == dwarf.ModReferenceTo {
			return 4
		}
	}

	if t.IsFundamental {
		return FundamentalSize(t.Fund)
	}

	switch t.UserType.Kind {
	case KindClass, KindStruct, KindUnion:
		return t.UserType.Class.Size
	case KindArray:
		amount := 1
		for _, d := range t.UserType.Array.Dimensions {
			amount *= d
		}
		return amount * t.UserType.Array.Elem.Size()
	case KindFunction:
		return 4
	case KindEnum:
		return FundamentalSize(t.UserType.Enum.Base)
	}

	return -1
}

// ModifierString converts a modifier byte to its printable form.
func ModifierString(m uint8) string {
	switch m {
	case dwarf.ModConst:
		return "const"
	case dwarf.ModVolatile:
		return "volatile"
	case dwarf.ModPointerTo:
		return "*"
	case dwarf.ModReferenceTo:
		return "&"
	}

	return fmt.Sprintf("<unknown modifier (%#x)>", m)
}

// FundamentalString converts a fundamental type to its printable form. The
// signedness-qualified variants print the same as the plain variant, except
// for the unsigned types. unsigned char, short, int and long have short forms
// of their own; unsigned long long is spelled out in full.
func FundamentalString(ft dwarf.FundType) string {
	switch ft {
	case dwarf.FTChar, dwarf.FTSignedChar:
		return "char"
	case dwarf.FTUnsignedChar:
		return "uchar"
	case dwarf.FTShort, dwarf.FTSignedShort:
		return "short"
	case dwarf.FTUnsignedShort:
		return "ushort"
	case dwarf.FTInteger, dwarf.FTSignedInteger:
		return "int"
	case dwarf.FTUnsignedInteger:
		return "uint"
	case dwarf.FTLong, dwarf.FTSignedLong:
		return "long"
	case dwarf.FTUnsignedLong:
		return "ulong"
	case dwarf.FTFloat:
		return "float"
	case dwarf.FTDblPrecFloat:
		return "double"
	case dwarf.FTExtPrecFloat:
		return "long double"
	case dwarf.FTVoid:
		return "void"
	case dwarf.FTBoolean:
		return "bool"
	case dwarf.FTLongLong, dwarf.FTSignedLongLong:
		return "long long"
	case dwarf.FTUnsignedLongLong:
		return "unsigned long long"
	case dwarf.FTULong128:
		return "ulonglong"
	}

	return fmt.Sprintf("<unknown fundamental type (%#x)>", uint16(ft))
}

// FundamentalSize returns the size in bytes of a fundamental type, or -1 if
// the type is not known. Note that long is eight bytes wide on the MIPS
// toolchains this program targets.
func FundamentalSize(ft dwarf.FundType) int {
	switch ft {
	case dwarf.FTChar, dwarf.FTSignedChar, dwarf.FTUnsignedChar:
		return 1
	case dwarf.FTShort, dwarf.FTSignedShort, dwarf.FTUnsignedShort:
		return 2
	case dwarf.FTInteger, dwarf.FTSignedInteger, dwarf.FTUnsignedInteger:
		return 4
	case dwarf.FTLong, dwarf.FTSignedLong, dwarf.FTUnsignedLong:
		return 8
	case dwarf.FTFloat:
		return 4
	case dwarf.FTDblPrecFloat:
		return 8
	case dwarf.FTExtPrecFloat:
		return 8
	case dwarf.FTVoid:
		return 4
	case dwarf.FTBoolean:
		return 1
	case dwarf.FTLongLong, dwarf.FTSignedLongLong, dwarf.FTUnsignedLongLong, dwarf.FTULong128:
		return 8
	}

	return -1
}
