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

// size of one row in a .line chunk: a four byte line number, a two byte
// character offset and a four byte address delta.
const lineRowLength = 10

// size of a .line chunk header: a four byte total length (inclusive) and a
// four byte base address.
const lineHeaderLength = 8

// NoCharOffset is the character offset value meaning "no column information".
const NoCharOffset = uint16(0xffff)

// LineEntry is one row of a .line chunk.
type LineEntry struct {
	// source line number. zero marks the end of the function
	LineNumber uint32

	// character position within the line. NoCharOffset if not recorded
	CharOffset uint16

	// address of the machine code for this line, as an offset from the
	// chunk's base address
	AddressOffset uint32
}

func (dwf *Dwarf) readLines(data []byte) error {
	pos := uint32(0)
	end := uint32(len(data))

	for pos+lineHeaderLength <= end {
		length := binary.LittleEndian.Uint32(data[pos:])
		base := binary.LittleEndian.Uint32(data[pos+4:])

		if length < lineHeaderLength || pos+length > end {
			return curated.Errorf(StreamError, curated.Errorf("bad line chunk length %d at offset %#x", length, pos))
		}

		rowPos := pos + lineHeaderLength
		chunkEnd := pos + length
		for rowPos+lineRowLength <= chunkEnd {
			dwf.lines[base] = append(dwf.lines[base], LineEntry{
				LineNumber:    binary.LittleEndian.Uint32(data[rowPos:]),
				CharOffset:    binary.LittleEndian.Uint16(data[rowPos+4:]),
				AddressOffset: binary.LittleEndian.Uint32(data[rowPos+6:]),
			})
			rowPos += lineRowLength
		}

		pos += length
	}

	return nil
}

// HasLineInfo returns true if any line number information was found in the
// ELF file.
func (dwf *Dwarf) HasLineInfo() bool {
	return len(dwf.lines) > 0
}

// LineEntries returns the line rows for the chunk based at the specified
// address, in the order the producer wrote them. Returns nil if there is no
// chunk for the address.
//
// Producers emit one chunk per function, based at the function's start
// address, so the argument is typically the low PC of a function.
func (dwf *Dwarf) LineEntries(addr uint32) []LineEntry {
	return dwf.lines[addr]
}
