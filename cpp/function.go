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

// Function is a subroutine found in a compile unit. The embedded
// FunctionType carries the signature.
type Function struct {
	FunctionType

	Name        string
	MangledName string
	IsGlobal    bool

	// low PC of the function's machine code
	StartAddress uint32

	// local variables from all of the function's lexical blocks, flattened
	// into one list
	Variables []*Variable

	// the class this function is a method of. nil for free functions. set
	// by the fixup pass
	TypeOwner *UserType

	// the owning DWARF context, for line number lookups during rendering
	Dwarf *dwarf.Dwarf
}

// NameString renders the function signature, including the owning class
// namespace if there is one.
func (f *Function) NameString() string {
	return f.nameStringMethod(false)
}

func (f *Function) nameStringMethod(skipNamespace bool) string {
	b := strings.Builder{}
	b.WriteString(f.ReturnType.String())
	b.WriteString(" ")
	if f.TypeOwner != nil && !skipNamespace {
		b.WriteString(f.TypeOwner.Name)
		b.WriteString("::")
	}
	b.WriteString(f.Name)
	b.WriteString(f.parametersString())
	return b.String()
}

// DeclarationString renders the function declaration, without namespace.
func (f *Function) DeclarationString() string {
	return f.nameStringMethod(true) + ";"
}

// DefinitionString renders the function with a body of local variable
// declarations and line number comments.
func (f *Function) DefinitionString() string {
	b := strings.Builder{}

	if f.MangledName == "" {
		b.WriteString("// ")
	} else {
		b.WriteString(fmt.Sprintf("// %s, ", f.MangledName))
	}
	if f.IsGlobal {
		b.WriteString("Global\n")
	} else {
		b.WriteString("Local\n")
	}
	b.WriteString(fmt.Sprintf("// Start address: %s\n", HexString(int64(f.StartAddress))))

	b.WriteString(f.NameString())
	b.WriteString("\n{\n")

	for _, v := range f.Variables {
		b.WriteString("\t")
		if v.IsGlobal {
			b.WriteString("static ")
		}
		b.WriteString(v.Declaration())
		b.WriteString(fmt.Sprintf("; // %s\n", v.LocationString()))
	}

	if f.Dwarf != nil {
		for _, le := range f.Dwarf.LineEntries(f.StartAddress) {
			b.WriteString("\t// ")
			if le.LineNumber != 0 {
				b.WriteString(fmt.Sprintf("Line %d", le.LineNumber))
			} else {
				b.WriteString("Func End")
			}

			if le.CharOffset != dwarf.NoCharOffset {
				b.WriteString(fmt.Sprintf(", Character %d", le.CharOffset))
			}
			b.WriteString(fmt.Sprintf(", Address: %s, Func Offset: %s\n",
				HexString(int64(f.StartAddress)+int64(le.AddressOffset)),
				HexString(int64(le.AddressOffset))))
		}
	}

	b.WriteString("}")

	return b.String()
}
