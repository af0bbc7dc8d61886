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

// processArrayType decodes an array type: the ordering check and the
// subscript data.
func (c *converter) processArrayType(entry *dwarf.Entry, body *cpp.ArrayType) error {
	for i := range entry.Attributes {
		attr := &entry.Attributes[i]

		switch attr.Name {
		case dwarf.AttrOrdering:
			ord, err := attr.Hword()
			if err != nil {
				return err
			}
			if ord != dwarf.OrdRowMajor {
				return curated.Errorf(UnsupportedFeature,
					curated.Errorf("array ordering %#x", ord))
			}

		case dwarf.AttrSubscrData:
			if err := c.processSubscriptData(attr, body); err != nil {
				return err
			}
		}
	}

	return nil
}

// processSubscriptData decodes the per-dimension records of the subscript
// data block. Each record is prefixed by a format byte. A bounds record
// adds a dimension; the element type record finishes the array.
//
// Only constant bounds with long-typed indices starting at zero are
// supported. Nothing else has been seen in the field.
func (c *converter) processSubscriptData(attr *dwarf.Attribute, body *cpp.ArrayType) error {
	block, err := attr.Block()
	if err != nil {
		return err
	}

	pos := 0
	for pos < len(block) {
		format := block[pos]
		pos++

		switch format {
		case dwarf.FmtET:
			// the remainder of the block is a type attribute describing the
			// element type
			typeAttr, _, err := c.dwf.ReadAttribute(attr.Offset + uint32(pos))
			if err != nil {
				return err
			}
			if err := c.processTypeAttr(&typeAttr, &body.Elem); err != nil {
				return err
			}
			return nil

		case dwarf.FmtFTCC:
			if pos+10 > len(block) {
				return curated.Errorf(dwarf.MalformedAttribute, "subscript bounds record truncated")
			}

			ft := dwarf.FundType(binary.LittleEndian.Uint16(block[pos:]))
			low := binary.LittleEndian.Uint32(block[pos+2:])
			high := binary.LittleEndian.Uint32(block[pos+6:])
			pos += 10

			if ft != dwarf.FTLong {
				return curated.Errorf(UnsupportedFeature,
					curated.Errorf("subscript index type %#x", uint16(ft)))
			}
			if low != 0 {
				return curated.Errorf(UnsupportedFeature,
					curated.Errorf("subscript lower bound %d", low))
			}

			body.Dimensions = append(body.Dimensions, int(high)+1)

		default:
			return curated.Errorf(UnsupportedFeature,
				curated.Errorf("subscript data format %#x", format))
		}
	}

	return nil
}
