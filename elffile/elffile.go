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

// Package elffile opens the ELF container and hands out the raw section data
// the DWARFv1 tokenizer works with. Everything else about the ELF file is
// ignored.
//
// DWARFv1 producers place debugging entries in the ".debug" section and line
// number information in the ".line" section. Neither section is mandatory
// but a file with no ".debug" section has nothing for this program to do and
// is treated as an error.
package elffile

import (
	"debug/elf"

	"github.com/jetsetilly/dwarf2cpp/curated"
	"github.com/jetsetilly/dwarf2cpp/logger"
)

// ContainerError is the curated error pattern for all errors raised by this
// package.
const ContainerError = "elf: %v"

// names of the ELF sections consumed by the dwarf package.
const (
	debugSection = ".debug"
	lineSection  = ".line"
)

// File is an opened ELF file with the DWARFv1 sections extracted.
type File struct {
	elf *elf.File

	// raw contents of the .debug and .line sections. Line is empty when the
	// file carries no .line section
	Debug []byte
	Line  []byte
}

// Open the named ELF file and extract the DWARFv1 sections.
func Open(filename string) (*File, error) {
	ef, err := elf.Open(filename)
	if err != nil {
		return nil, curated.Errorf(ContainerError, err)
	}

	f := &File{elf: ef}

	// DWARFv1 predates 64-bit ELF. the references in the .debug section are
	// 32-bit offsets
	if ef.Class != elf.ELFCLASS32 {
		_ = ef.Close()
		return nil, curated.Errorf(ContainerError, "not a 32-bit ELF file")
	}

	sec := ef.Section(debugSection)
	if sec == nil {
		_ = ef.Close()
		return nil, curated.Errorf(ContainerError, "no .debug section")
	}

	f.Debug, err = sec.Data()
	if err != nil {
		_ = ef.Close()
		return nil, curated.Errorf(ContainerError, err)
	}

	if sec := ef.Section(lineSection); sec != nil {
		f.Line, err = sec.Data()
		if err != nil {
			_ = ef.Close()
			return nil, curated.Errorf(ContainerError, err)
		}
	} else {
		logger.Log("elf", "no .line section. line number information will not be available")
	}

	logger.Logf("elf", "%s: %d bytes of debugging entries, %d bytes of line entries",
		filename, len(f.Debug), len(f.Line))

	return f, nil
}

// Close the underlying ELF file. The section data remains valid.
func (f *File) Close() error {
	return f.elf.Close()
}
