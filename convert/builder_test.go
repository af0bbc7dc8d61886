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

package convert_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/dwarf2cpp/dwarf"
	"github.com/jetsetilly/dwarf2cpp/elffile"
	"github.com/jetsetilly/dwarf2cpp/test"
)

// tDie is a node of a DIE tree to be assembled into a .debug byte stream.
// references between dies are expressed as pointers and resolved to offsets
// during assembly, so tests never deal in hand-computed offsets.
type tDie struct {
	tag      uint16
	attrs    []tAttr
	children []*tDie

	// assigned during layout
	offset uint32
	end    uint32
}

type tAttr struct {
	name    uint16
	operand []byte

	// a reference to another die, appended to the operand as a four byte
	// offset during assembly
	ref *tDie

	// emit the operand with a block length prefix. the prefix is four bytes
	// for BLOCK4 attributes and two bytes otherwise
	isBlock bool
}

// blockPrefix is the width of the block length prefix for the attribute.
func (a *tAttr) blockPrefix() uint32 {
	if uint8(a.name&0xf) == dwarf.FormBlock4 {
		return 4
	}
	return 2
}

func aString(name uint16, v string) tAttr {
	return tAttr{name: name, operand: append([]byte(v), 0)}
}

func aHword(name uint16, v uint16) tAttr {
	return tAttr{name: name, operand: binary.LittleEndian.AppendUint16([]byte{}, v)}
}

func aWord(name uint16, v uint32) tAttr {
	return tAttr{name: name, operand: binary.LittleEndian.AppendUint32([]byte{}, v)}
}

func aAddr(name uint16, v uint32) tAttr {
	return aWord(name, v)
}

func aRef(name uint16, target *tDie) tAttr {
	return tAttr{name: name, ref: target}
}

func aBlock(name uint16, content []byte) tAttr {
	return tAttr{name: name, operand: content, isBlock: true}
}

// aBlockRef is a block whose content ends with a four byte reference, as in
// the mod_u_d_type attribute.
func aBlockRef(name uint16, prefix []byte, target *tDie) tAttr {
	return tAttr{name: name, operand: prefix, ref: target, isBlock: true}
}

func (a *tAttr) size() uint32 {
	n := uint32(2) + uint32(len(a.operand))
	if a.ref != nil {
		n += 4
	}
	if a.isBlock {
		n += a.blockPrefix()
	}
	return n
}

func (d *tDie) size() uint32 {
	// entry header plus the sibling attribute added by the assembler
	n := uint32(6 + 6)
	for i := range d.attrs {
		n += d.attrs[i].size()
	}
	return n
}

func layout(dies []*tDie, pos uint32) uint32 {
	for _, d := range dies {
		d.offset = pos
		pos += d.size()
		pos = layout(d.children, pos)
		d.end = pos
	}
	return pos
}

func emit(buf []byte, dies []*tDie) []byte {
	for _, d := range dies {
		buf = binary.LittleEndian.AppendUint32(buf, d.size())
		buf = binary.LittleEndian.AppendUint16(buf, d.tag)

		// every die carries a sibling attribute pointing one past its
		// subtree
		buf = binary.LittleEndian.AppendUint16(buf, dwarf.AttrSibling)
		buf = binary.LittleEndian.AppendUint32(buf, d.end)

		for i := range d.attrs {
			a := &d.attrs[i]
			buf = binary.LittleEndian.AppendUint16(buf, a.name)
			if a.isBlock {
				n := len(a.operand)
				if a.ref != nil {
					n += 4
				}
				if a.blockPrefix() == 4 {
					buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
				} else {
					buf = binary.LittleEndian.AppendUint16(buf, uint16(n))
				}
			}
			buf = append(buf, a.operand...)
			if a.ref != nil {
				buf = binary.LittleEndian.AppendUint32(buf, a.ref.offset)
			}
		}

		buf = emit(buf, d.children)
	}
	return buf
}

// assemble the die trees into tokenized DWARF data. the optional line
// argument is the raw contents of a .line section.
func assemble(t *testing.T, line []byte, dies ...*tDie) *dwarf.Dwarf {
	t.Helper()

	layout(dies, 0)

	dwf, err := dwarf.New(&elffile.File{Debug: emit(nil, dies), Line: line})
	test.ExpectSuccess(t, err)

	return dwf
}

// lineChunk builds one .line chunk: a base address and (line, charOffset,
// addressDelta) rows.
func lineChunk(base uint32, rows ...[3]uint32) []byte {
	var b []byte
	b = binary.LittleEndian.AppendUint32(b, uint32(8+10*len(rows)))
	b = binary.LittleEndian.AppendUint32(b, base)
	for _, r := range rows {
		b = binary.LittleEndian.AppendUint32(b, r[0])
		b = binary.LittleEndian.AppendUint16(b, uint16(r[1]))
		b = binary.LittleEndian.AppendUint32(b, r[2])
	}
	return b
}

// location expression fragments.
func locOp(op uint8, v uint32) []byte {
	return binary.LittleEndian.AppendUint32([]byte{op}, v)
}

func locNoArg(op uint8) []byte {
	return []byte{op}
}

func cat(bs ...[]byte) []byte {
	var out []byte
	for _, b := range bs {
		out = append(out, b...)
	}
	return out
}

// common die shapes.
func memberDie(name string, ft dwarf.FundType, offset uint32) *tDie {
	return &tDie{tag: dwarf.TagMember, attrs: []tAttr{
		aString(dwarf.AttrName, name),
		aHword(dwarf.AttrFundType, uint16(ft)),
		aBlock(dwarf.AttrLocation, locOp(dwarf.OpConst, offset)),
	}}
}

func paramDie(name string, ft dwarf.FundType) *tDie {
	return &tDie{tag: dwarf.TagFormalParameter, attrs: []tAttr{
		aString(dwarf.AttrName, name),
		aHword(dwarf.AttrFundType, uint16(ft)),
	}}
}

func compileUnit(filename string, children ...*tDie) *tDie {
	return &tDie{
		tag:      dwarf.TagCompileUnit,
		attrs:    []tAttr{aString(dwarf.AttrName, filename)},
		children: children,
	}
}
