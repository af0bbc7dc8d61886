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
	"strings"

	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/curated"
	"github.com/jetsetilly/dwarf2cpp/dwarf"
)

// processUserType decodes a user type entry into the shell allocated during
// the first pass.
func (c *converter) processUserType(entry *dwarf.Entry, ut *cpp.UserType) error {
	if attr := entry.Attr(dwarf.AttrName); attr != nil {
		name, err := attr.String()
		if err != nil {
			return err
		}

		// the compiler uses '@' in the names it invents for anonymous
		// types. '@' is also the outermost separator of the subroutine type
		// rendering, so it cannot appear in a type name
		ut.Name = strings.ReplaceAll(name, "@", "_")
	}

	var err error

	switch entry.Tag {
	case dwarf.TagClassType, dwarf.TagStructureType, dwarf.TagUnionType:
		switch entry.Tag {
		case dwarf.TagStructureType:
			ut.Kind = cpp.KindStruct
		case dwarf.TagUnionType:
			ut.Kind = cpp.KindUnion
		default:
			ut.Kind = cpp.KindClass
		}
		ut.Class = cpp.NewClassType(ut)
		err = c.processClassType(entry, ut.Class)

	case dwarf.TagEnumerationType:
		ut.Kind = cpp.KindEnum
		ut.Enum = &cpp.EnumType{}
		err = c.processEnumType(entry, ut.Enum)

	case dwarf.TagArrayType:
		ut.Kind = cpp.KindArray
		ut.Array = &cpp.ArrayType{}
		err = c.processArrayType(entry, ut.Array)

	case dwarf.TagSubroutineType:
		ut.Kind = cpp.KindFunction
		ut.Function = &cpp.FunctionType{}
		err = c.processFunctionType(entry, ut.Function)
	}

	if err != nil {
		return curated.Errorf("user type '%s': %v", ut.Name, err)
	}

	return nil
}

// processClassType decodes the members and inheritances of a class, struct
// or union.
func (c *converter) processClassType(entry *dwarf.Entry, body *cpp.ClassType) error {
	if attr := entry.Attr(dwarf.AttrByteSize); attr != nil {
		sz, err := attr.Word()
		if err != nil {
			return err
		}
		body.Size = int(sz)
	}

	next := entry.Sibling()
	if next > len(c.dwf.Entries) {
		next = len(c.dwf.Entries)
	}

	// count members first so the list is allocated in one piece. classes
	// with hundreds of members are common in the field
	memberCount := 0
	for i := entry.Index + 1; i < next; i = c.dwf.Entries[i].Sibling() {
		if c.dwf.Entries[i].Tag == dwarf.TagMember {
			memberCount++
		}
	}
	body.Members = make([]cpp.Member, 0, memberCount)

	for i := entry.Index + 1; i < next; i = c.dwf.Entries[i].Sibling() {
		e := c.dwf.Entries[i]

		switch e.Tag {
		case dwarf.TagMember:
			m, err := c.processMember(e)
			if err != nil {
				return err
			}
			body.Members = append(body.Members, m)

		case dwarf.TagInheritance:
			inh, err := c.processInheritance(e)
			if err != nil {
				return err
			}
			body.Inheritances = append(body.Inheritances, inh)
		}
	}

	return nil
}

func (c *converter) processMember(entry *dwarf.Entry) (cpp.Member, error) {
	m := cpp.Member{
		BitOffset: -1,
		BitSize:   -1,
	}

	for i := range entry.Attributes {
		attr := &entry.Attributes[i]

		switch attr.Name {
		case dwarf.AttrName:
			name, err := attr.String()
			if err != nil {
				return cpp.Member{}, err
			}
			m.Name = name

		case dwarf.AttrBitOffset:
			v, err := attr.Hword()
			if err != nil {
				return cpp.Member{}, err
			}
			m.BitOffset = int(v)

		case dwarf.AttrBitSize:
			v, err := attr.Word()
			if err != nil {
				return cpp.Member{}, err
			}
			m.BitSize = int(v)

		case dwarf.AttrLocation:
			offset, err := decodeStaticLocation(attr)
			if err != nil {
				return cpp.Member{}, curated.Errorf("member '%s': %v", m.Name, err)
			}
			m.Offset = offset

		default:
			if isTypeAttr(attr.Name) {
				if err := c.processTypeAttr(attr, &m.Type); err != nil {
					return cpp.Member{}, curated.Errorf("member '%s': %v", m.Name, err)
				}
			}
		}
	}

	return m, nil
}

func (c *converter) processInheritance(entry *dwarf.Entry) (cpp.Inheritance, error) {
	var inh cpp.Inheritance

	for i := range entry.Attributes {
		attr := &entry.Attributes[i]

		switch attr.Name {
		case dwarf.AttrUserDefType:
			if err := c.processTypeAttr(attr, &inh.Type); err != nil {
				return cpp.Inheritance{}, curated.Errorf("inheritance: %v", err)
			}

		case dwarf.AttrLocation:
			offset, err := decodeStaticLocation(attr)
			if err != nil {
				return cpp.Inheritance{}, curated.Errorf("inheritance: %v", err)
			}
			inh.Offset = offset
		}
	}

	return inh, nil
}
