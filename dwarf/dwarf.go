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
	"github.com/jetsetilly/dwarf2cpp/elffile"
	"github.com/jetsetilly/dwarf2cpp/logger"
)

// StreamError is the curated error pattern for faults in the DIE stream
// itself.
const StreamError = "dwarf: %v"

// the smallest tagged entry is a four byte length, a two byte tag and a two
// byte attribute name. anything shorter is a null entry
const minEntryLength = 8

// Entry is a single debugging information entry (DIE).
type Entry struct {
	dwf *Dwarf

	// byte offset of the entry in the .debug section. references between
	// entries use this value
	Offset uint32

	// position of the entry in the Entries list
	Index int

	Tag        uint16
	Attributes []Attribute

	// index of the entry one past this entry's subtree. resolved from the
	// AT_sibling attribute after the whole stream has been tokenized
	sibling int
}

// Attr returns the first attribute with the specified name, or nil if the
// entry has no such attribute.
func (e *Entry) Attr(name uint16) *Attribute {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i]
		}
	}
	return nil
}

// Sibling returns the index of the entry one past this entry's subtree. The
// returned index may be one past the end of the Entries list.
func (e *Entry) Sibling() int {
	return e.sibling
}

// Dwarf is the tokenized DWARFv1 information from a single ELF file.
type Dwarf struct {
	// raw contents of the .debug section. attribute operands reference
	// sub-ranges of this slice
	data []byte

	// every tagged entry in the order it appears in the .debug section
	Entries []*Entry

	// map of section offsets to Entries indices
	offsets map[uint32]int

	// line number rows keyed by the base address of their chunk
	lines map[uint32][]LineEntry
}

// New tokenizes the DWARFv1 sections of the supplied ELF file.
func New(ef *elffile.File) (*Dwarf, error) {
	dwf := &Dwarf{
		data:    ef.Debug,
		offsets: make(map[uint32]int),
		lines:   make(map[uint32][]LineEntry),
	}

	if err := dwf.readEntries(); err != nil {
		return nil, err
	}
	if err := dwf.readLines(ef.Line); err != nil {
		return nil, err
	}

	logger.Logf("dwarf", "%d entries, %d line chunks", len(dwf.Entries), len(dwf.lines))

	return dwf, nil
}

func (dwf *Dwarf) readEntries() error {
	pos := uint32(0)
	end := uint32(len(dwf.data))

	for pos+4 <= end {
		length := binary.LittleEndian.Uint32(dwf.data[pos:])

		if length < 4 || pos+length > end {
			return curated.Errorf(StreamError, curated.Errorf("bad entry length %d at offset %#x", length, pos))
		}

		// entries shorter than the minimum are null entries used for padding
		// and sibling chain termination
		if length < minEntryLength {
			pos += length
			continue // for loop
		}

		entry := &Entry{
			dwf:    dwf,
			Offset: pos,
			Index:  len(dwf.Entries),
			Tag:    binary.LittleEndian.Uint16(dwf.data[pos+4:]),
		}

		attrPos := pos + 6
		attrEnd := pos + length
		for attrPos < attrEnd {
			attr, next, err := dwf.ReadAttribute(attrPos)
			if err != nil {
				return curated.Errorf(StreamError,
					curated.Errorf("entry at offset %#x: %v", pos, err))
			}
			if next > attrEnd {
				return curated.Errorf(StreamError,
					curated.Errorf("entry at offset %#x: attribute overruns entry", pos))
			}
			entry.Attributes = append(entry.Attributes, attr)
			attrPos = next
		}

		dwf.offsets[entry.Offset] = entry.Index
		dwf.Entries = append(dwf.Entries, entry)

		pos += length
	}

	dwf.resolveSiblings()

	return nil
}

// convert every entry's AT_sibling offset into an index in the Entries list.
// entries without a sibling attribute, or with a sibling offset that cannot
// be resolved, fall through to the next entry in the stream.
func (dwf *Dwarf) resolveSiblings() {
	for _, e := range dwf.Entries {
		e.sibling = e.Index + 1

		attr := e.Attr(AttrSibling)
		if attr == nil {
			continue // for loop
		}

		ref, err := attr.Reference()
		if err != nil {
			continue // for loop
		}

		if idx, ok := dwf.offsets[ref]; ok {
			// a backward sibling reference would send the walks in the
			// convert package around in circles
			if idx > e.Index {
				e.sibling = idx
			}
		} else if ref >= uint32(len(dwf.data)) {
			// sibling points past the section. this is how the final sibling
			// chain of the final compile unit is terminated
			e.sibling = len(dwf.Entries)
		} else {
			// the offset lands between entries. likely a null entry; scan
			// forward for the first tagged entry at or beyond it
			e.sibling = len(dwf.Entries)
			for _, n := range dwf.Entries[e.Index+1:] {
				if n.Offset >= ref {
					e.sibling = n.Index
					break // inner for loop
				}
			}
		}
	}
}

// EntryFromReference returns the entry at the specified section offset.
func (dwf *Dwarf) EntryFromReference(ref uint32) *Entry {
	if idx, ok := dwf.offsets[ref]; ok {
		return dwf.Entries[idx]
	}
	return nil
}
