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
	"bytes"
	"encoding/binary"

	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/curated"
	"github.com/jetsetilly/dwarf2cpp/dwarf"
)

// processEnumType decodes an enumeration: the underlying fundamental type
// from the byte size and the enumerators from the element list.
func (c *converter) processEnumType(entry *dwarf.Entry, body *cpp.EnumType) error {
	byteSize := 0

	if attr := entry.Attr(dwarf.AttrByteSize); attr != nil {
		sz, err := attr.Word()
		if err != nil {
			return err
		}
		byteSize = int(sz)

		switch byteSize {
		case 1:
			body.Base = dwarf.FTUnsignedChar
		case 2:
			body.Base = dwarf.FTUnsignedShort
		case 4:
			body.Base = dwarf.FTInteger
		case 8:
			body.Base = dwarf.FTLong
		default:
			return curated.Errorf(UnsupportedFeature,
				curated.Errorf("enumeration with byte size %d", byteSize))
		}
	}

	if attr := entry.Attr(dwarf.AttrElementList); attr != nil {
		if byteSize == 0 {
			return curated.Errorf(dwarf.MalformedAttribute, "element list without a byte size")
		}
		if err := c.processElementList(attr, body, byteSize); err != nil {
			return err
		}
	}

	return nil
}

// processElementList decodes the packed enumerator list: an integer of the
// enumeration's byte size followed by a NUL terminated name, repeated to
// the end of the block. One and two byte values are unsigned, four and
// eight byte values signed.
func (c *converter) processElementList(attr *dwarf.Attribute, body *cpp.EnumType, byteSize int) error {
	block, err := attr.Block()
	if err != nil {
		return err
	}

	pos := 0
	for pos < len(block) {
		if pos+byteSize > len(block) {
			return curated.Errorf(dwarf.MalformedAttribute, "element list truncated")
		}

		var value int64
		switch byteSize {
		case 1:
			value = int64(block[pos])
		case 2:
			value = int64(binary.LittleEndian.Uint16(block[pos:]))
		case 4:
			value = int64(int32(binary.LittleEndian.Uint32(block[pos:])))
		case 8:
			value = int64(binary.LittleEndian.Uint64(block[pos:]))
		}
		pos += byteSize

		nul := bytes.IndexByte(block[pos:], 0)
		if nul == -1 {
			return curated.Errorf(dwarf.MalformedAttribute, "unterminated name in element list")
		}

		body.Elements = append(body.Elements, cpp.EnumElement{
			Name:  string(block[pos : pos+nul]),
			Value: value,
		})
		pos += nul + 1
	}

	return nil
}
