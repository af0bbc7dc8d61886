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

// decodeLocation decodes a location expression into the full list of
// operations. Every operation is retained, even the ones this program makes
// no further use of.
func decodeLocation(attr *dwarf.Attribute) ([]cpp.LocationOp, error) {
	block, err := attr.Block()
	if err != nil {
		return nil, err
	}

	var ops []cpp.LocationOp

	pos := 0
	for pos < len(block) {
		op := cpp.LocationOp{Opcode: block[pos], Value: -1}
		pos++

		if op.HasOperand() {
			if pos+4 > len(block) {
				return nil, curated.Errorf(dwarf.MalformedAttribute, "location expression truncated")
			}
			op.Value = int64(binary.LittleEndian.Uint32(block[pos:]))
			pos += 4
		}

		ops = append(ops, op)
	}

	return ops, nil
}

// decodeStaticLocation decodes a location expression that is expected to be
// a single static address or constant, as used for member offsets and
// inheritance offsets.
func decodeStaticLocation(attr *dwarf.Attribute) (int, error) {
	block, err := attr.Block()
	if err != nil {
		return -1, err
	}

	if len(block) < 5 {
		return -1, curated.Errorf(dwarf.MalformedAttribute, "location expression too short for a static address")
	}

	op := block[0]
	if op != dwarf.OpAddr && op != dwarf.OpConst {
		return -1, curated.Errorf(dwarf.MalformedAttribute,
			curated.Errorf("location expression does not start with ADDR or CONST (%#x)", op))
	}

	return int(binary.LittleEndian.Uint32(block[1:])), nil
}

// staticAddress extracts the static address of a variable from its decoded
// location expression: the value of the last ADDR or CONST operation, or -1
// when the expression holds neither.
//
// Taking the last rather than the first matches the address the compiler
// leaves in effect at the end of the expression, and the vtable fixup
// depends on it.
func staticAddress(ops []cpp.LocationOp) int64 {
	addr := int64(-1)
	for _, op := range ops {
		if op.Opcode == dwarf.OpAddr || op.Opcode == dwarf.OpConst {
			addr = op.Value
		}
	}
	return addr
}
