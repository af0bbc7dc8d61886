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

// processVariable decodes a global or local variable entry.
func (c *converter) processVariable(entry *dwarf.Entry) (*cpp.Variable, error) {
	v := &cpp.Variable{
		IsGlobal: entry.Tag == dwarf.TagGlobalVariable,
		Address:  -1,
	}

	for i := range entry.Attributes {
		attr := &entry.Attributes[i]

		switch attr.Name {
		case dwarf.AttrName:
			name, err := attr.String()
			if err != nil {
				return nil, err
			}
			v.Name = name

		case dwarf.AttrLocation:
			ops, err := decodeLocation(attr)
			if err != nil {
				return nil, curated.Errorf("variable '%s': %v", v.Name, err)
			}
			v.Location = ops
			v.Address = staticAddress(ops)

		default:
			if isTypeAttr(attr.Name) {
				if err := c.processTypeAttr(attr, &v.Type); err != nil {
					return nil, curated.Errorf("variable '%s': %v", v.Name, err)
				}
			}
		}
	}

	return v, nil
}
