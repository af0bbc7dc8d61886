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
	"encoding/binary"

	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/curated"
	"github.com/jetsetilly/dwarf2cpp/dwarf"
)

// isTypeAttr returns true for the four attribute names that describe a type.
func isTypeAttr(name uint16) bool {
	switch name {
	case dwarf.AttrFundType, dwarf.AttrUserDefType, dwarf.AttrModFundType, dwarf.AttrModUDType:
		return true
	}
	return false
}

// findUserType resolves a reference offset to the user type shell allocated
// during the first pass.
func (c *converter) findUserType(ref uint32) (*cpp.UserType, error) {
	entry := c.dwf.EntryFromReference(ref)
	if entry == nil {
		return nil, curated.Errorf(UnresolvedTypeRef, curated.Errorf("no entry at offset %#x", ref))
	}

	ut, ok := c.userTypes[entry]
	if !ok {
		return nil, curated.Errorf(UnresolvedTypeRef, curated.Errorf("entry at offset %#x is not a user type", ref))
	}

	return ut, nil
}

// processTypeAttr populates a cpp.Type from any of the four type attribute
// forms.
func (c *converter) processTypeAttr(attr *dwarf.Attribute, typ *cpp.Type) error {
	switch attr.Name {
	case dwarf.AttrFundType:
		typ.IsFundamental = true

		ft, err := attr.Hword()
		if err != nil {
			return err
		}
		typ.Fund = dwarf.FundType(ft)

	case dwarf.AttrUserDefType:
		typ.IsFundamental = false

		ref, err := attr.Reference()
		if err != nil {
			return err
		}

		typ.UserType, err = c.findUserType(ref)
		if err != nil {
			return err
		}

	case dwarf.AttrModFundType:
		typ.IsFundamental = true

		block, err := attr.Block()
		if err != nil {
			return err
		}
		if len(block) < 2 {
			return curated.Errorf(dwarf.MalformedAttribute, "mod_fund_type block too short for fundamental type")
		}

		typ.Fund = dwarf.FundType(binary.LittleEndian.Uint16(block[len(block)-2:]))
		typ.Modifiers = append(typ.Modifiers, block[:len(block)-2]...)

	case dwarf.AttrModUDType:
		typ.IsFundamental = false

		block, err := attr.Block()
		if err != nil {
			return err
		}
		if len(block) < 4 {
			return curated.Errorf(dwarf.MalformedAttribute, "mod_u_d_type block too short for reference")
		}

		ref := binary.LittleEndian.Uint32(block[len(block)-4:])
		typ.UserType, err = c.findUserType(ref)
		if err != nil {
			return err
		}

		typ.Modifiers = append(typ.Modifiers, block[:len(block)-4]...)

	default:
		return curated.Errorf(dwarf.MalformedAttribute,
			curated.Errorf("attribute %#04x is not a type attribute", attr.Name))
	}

	return nil
}
