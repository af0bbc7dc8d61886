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

package dwarf

import (
	"encoding/binary"

	"github.com/jetsetilly/dwarf2cpp/curated"
)

// MalformedAttribute is the curated error pattern for attributes whose
// operand cannot be decoded or does not agree with the accessor used.
const MalformedAttribute = "malformed attribute: %v"

// Attribute is a single attribute of a DIE: a name and a typed operand. The
// form of the operand is encoded in the low four bits of the name.
type Attribute struct {
	Name uint16

	// section offset at which the operand begins. for block forms this is
	// the offset of the block contents, past the length prefix
	Offset uint32

	// operand bytes. for string forms the terminating NUL is not included
	operand []byte
}

// Form of the attribute's operand.
func (a Attribute) Form() uint8 {
	return uint8(a.Name & 0xf)
}

// String returns the operand of a string-formed attribute.
func (a Attribute) String() (string, error) {
	if a.Form() != FormString {
		return "", curated.Errorf(MalformedAttribute, curated.Errorf("attribute %#04x is not a string", a.Name))
	}
	return string(a.operand), nil
}

// Hword returns the operand of a two byte data attribute.
func (a Attribute) Hword() (uint16, error) {
	if a.Form() != FormData2 {
		return 0, curated.Errorf(MalformedAttribute, curated.Errorf("attribute %#04x is not a half-word", a.Name))
	}
	return binary.LittleEndian.Uint16(a.operand), nil
}

// Word returns the operand of a four byte data attribute.
func (a Attribute) Word() (uint32, error) {
	if a.Form() != FormData4 {
		return 0, curated.Errorf(MalformedAttribute, curated.Errorf("attribute %#04x is not a word", a.Name))
	}
	return binary.LittleEndian.Uint32(a.operand), nil
}

// Address returns the operand of an address-formed attribute.
func (a Attribute) Address() (uint32, error) {
	if a.Form() != FormAddr {
		return 0, curated.Errorf(MalformedAttribute, curated.Errorf("attribute %#04x is not an address", a.Name))
	}
	return binary.LittleEndian.Uint32(a.operand), nil
}

// Reference returns the operand of a reference-formed attribute. The value
// is an offset into the .debug section.
func (a Attribute) Reference() (uint32, error) {
	if a.Form() != FormRef {
		return 0, curated.Errorf(MalformedAttribute, curated.Errorf("attribute %#04x is not a reference", a.Name))
	}
	return binary.LittleEndian.Uint32(a.operand), nil
}

// Block returns the operand bytes of a block-formed attribute.
func (a Attribute) Block() ([]byte, error) {
	if f := a.Form(); f != FormBlock2 && f != FormBlock4 {
		return nil, curated.Errorf(MalformedAttribute, curated.Errorf("attribute %#04x is not a block", a.Name))
	}
	return a.operand, nil
}

// ReadAttribute decodes a single attribute at the specified offset in the
// .debug section. Returns the attribute and the offset of the first byte
// after it.
//
// Attributes are normally decoded as part of their entry but the FMT_ET
// record of subscript data embeds a type attribute in the middle of a block,
// which is decoded through this function.
func (dwf *Dwarf) ReadAttribute(pos uint32) (Attribute, uint32, error) {
	end := uint32(len(dwf.data))

	if pos+2 > end {
		return Attribute{}, 0, curated.Errorf(MalformedAttribute, curated.Errorf("no room for attribute name at offset %#x", pos))
	}

	attr := Attribute{
		Name: binary.LittleEndian.Uint16(dwf.data[pos:]),
	}
	pos += 2

	operand := func(n uint32) error {
		if pos+n > end {
			return curated.Errorf(MalformedAttribute, curated.Errorf("operand overruns section at offset %#x", pos))
		}
		attr.Offset = pos
		attr.operand = dwf.data[pos : pos+n]
		pos += n
		return nil
	}

	var err error

	switch attr.Form() {
	case FormAddr, FormRef:
		err = operand(4)
	case FormData2:
		err = operand(2)
	case FormData4:
		err = operand(4)
	case FormData8:
		err = operand(8)
	case FormBlock2:
		if pos+2 > end {
			return Attribute{}, 0, curated.Errorf(MalformedAttribute, curated.Errorf("no room for block length at offset %#x", pos))
		}
		n := uint32(binary.LittleEndian.Uint16(dwf.data[pos:]))
		pos += 2
		err = operand(n)
	case FormBlock4:
		if pos+4 > end {
			return Attribute{}, 0, curated.Errorf(MalformedAttribute, curated.Errorf("no room for block length at offset %#x", pos))
		}
		n := binary.LittleEndian.Uint32(dwf.data[pos:])
		pos += 4
		err = operand(n)
	case FormString:
		n := uint32(0)
		for pos+n < end && dwf.data[pos+n] != 0 {
			n++
		}
		if pos+n >= end {
			return Attribute{}, 0, curated.Errorf(MalformedAttribute, curated.Errorf("unterminated string at offset %#x", pos))
		}
		attr.Offset = pos
		attr.operand = dwf.data[pos : pos+n]
		pos += n + 1
	default:
		return Attribute{}, 0, curated.Errorf(MalformedAttribute,
			curated.Errorf("unknown form %#x in attribute %#04x at offset %#x", attr.Form(), attr.Name, pos-2))
	}

	if err != nil {
		return Attribute{}, 0, err
	}

	return attr, pos, nil
}
