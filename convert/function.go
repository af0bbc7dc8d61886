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
	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/curated"
	"github.com/jetsetilly/dwarf2cpp/dwarf"
)

// processFunctionType decodes a subroutine type: the return type from the
// entry's own attributes and the parameters from its children. Used both
// for subroutine type declarations and for the signature part of concrete
// functions.
func (c *converter) processFunctionType(entry *dwarf.Entry, body *cpp.FunctionType) error {
	next := entry.Sibling()
	if next > len(c.dwf.Entries) {
		next = len(c.dwf.Entries)
	}

	paramCount := 0
	for i := entry.Index + 1; i < next; i = c.dwf.Entries[i].Sibling() {
		if c.dwf.Entries[i].Tag == dwarf.TagFormalParameter {
			paramCount++
		}
	}
	body.Parameters = make([]cpp.Parameter, 0, paramCount)

	for i := range entry.Attributes {
		attr := &entry.Attributes[i]
		if isTypeAttr(attr.Name) {
			if err := c.processTypeAttr(attr, &body.ReturnType); err != nil {
				return curated.Errorf("return type: %v", err)
			}
		}
	}

	for i := entry.Index + 1; i < next; i = c.dwf.Entries[i].Sibling() {
		e := c.dwf.Entries[i]

		if e.Tag == dwarf.TagFormalParameter {
			p, err := c.processParameter(e)
			if err != nil {
				return err
			}
			body.Parameters = append(body.Parameters, p)
		}
	}

	return nil
}

func (c *converter) processParameter(entry *dwarf.Entry) (cpp.Parameter, error) {
	var p cpp.Parameter

	for i := range entry.Attributes {
		attr := &entry.Attributes[i]

		switch attr.Name {
		case dwarf.AttrName:
			name, err := attr.String()
			if err != nil {
				return cpp.Parameter{}, err
			}
			p.Name = name

		default:
			if isTypeAttr(attr.Name) {
				if err := c.processTypeAttr(attr, &p.Type); err != nil {
					return cpp.Parameter{}, curated.Errorf("parameter '%s': %v", p.Name, err)
				}
			}
		}
	}

	return p, nil
}

// processFunction decodes the parts of a concrete function that a plain
// subroutine type does not have: names, the start address and the local
// variables of its lexical blocks.
func (c *converter) processFunction(entry *dwarf.Entry, fn *cpp.Function) error {
	fn.IsGlobal = entry.Tag == dwarf.TagGlobalSubroutine

	for i := range entry.Attributes {
		attr := &entry.Attributes[i]

		switch attr.Name {
		case dwarf.AttrName:
			name, err := attr.String()
			if err != nil {
				return err
			}
			fn.Name = name

		case dwarf.AttrMangledName:
			name, err := attr.String()
			if err != nil {
				return err
			}
			fn.MangledName = name

		case dwarf.AttrLowPC:
			addr, err := attr.Address()
			if err != nil {
				return err
			}
			fn.StartAddress = addr
		}
	}

	next := entry.Sibling()
	if next > len(c.dwf.Entries) {
		next = len(c.dwf.Entries)
	}

	for i := entry.Index + 1; i < next; i = c.dwf.Entries[i].Sibling() {
		e := c.dwf.Entries[i]

		if e.Tag == dwarf.TagLexicalBlock {
			if err := c.processLexicalBlock(e, fn); err != nil {
				return curated.Errorf("function '%s': %v", fn.Name, err)
			}
		}
	}

	return nil
}

// processLexicalBlock collects the variables of a lexical block into the
// function's flat list of locals. Nested blocks are descended into so that
// a local is never lost to scoping the reconstruction cannot express.
func (c *converter) processLexicalBlock(entry *dwarf.Entry, fn *cpp.Function) error {
	next := entry.Sibling()
	if next > len(c.dwf.Entries) {
		next = len(c.dwf.Entries)
	}

	for i := entry.Index + 1; i < next; i = c.dwf.Entries[i].Sibling() {
		e := c.dwf.Entries[i]

		switch e.Tag {
		case dwarf.TagGlobalVariable, dwarf.TagLocalVariable:
			v, err := c.processVariable(e)
			if err != nil {
				return err
			}
			fn.Variables = append(fn.Variables, v)

		case dwarf.TagLexicalBlock:
			if err := c.processLexicalBlock(e, fn); err != nil {
				return err
			}
		}
	}

	return nil
}
