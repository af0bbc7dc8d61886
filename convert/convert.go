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
	"github.com/jetsetilly/dwarf2cpp/logger"
)

// curated error patterns for the convert package.
const (
	// ConversionError is the pattern wrapped around every error leaving
	// this package
	ConversionError = "convert: %v"

	// UnresolvedTypeRef is raised when a type attribute references an
	// offset with no user type shell
	UnresolvedTypeRef = "unresolved type reference: %v"

	// UnsupportedFeature is raised for DWARF constructs this program makes
	// no attempt to decode
	UnsupportedFeature = "unsupported feature: %v"
)

// converter holds the state of a single conversion. A fresh converter is
// created for every call to Convert() so there is no state shared between
// runs.
type converter struct {
	dwf *dwarf.Dwarf

	// one file per distinct compile unit name, in order of first appearance
	files []*cpp.File

	// user type shells for every type-bearing entry, across all compile
	// units. references between compile units are unusual but valid
	userTypes map[*dwarf.Entry]*cpp.UserType

	// user types of the current compile unit, bucketed by name. rebuilt on
	// every compile unit and consumed by the name fixup
	names map[string][]*cpp.UserType
}

// Convert the tokenized DWARFv1 data into one cpp.File per compile unit.
func Convert(dwf *dwarf.Dwarf) ([]*cpp.File, error) {
	c := &converter{
		dwf:       dwf,
		userTypes: make(map[*dwarf.Entry]*cpp.UserType),
	}

	if err := c.processDwarf(); err != nil {
		return nil, curated.Errorf(ConversionError, err)
	}

	for _, f := range c.files {
		c.attachVtables(f)
	}

	return c.files, nil
}

// findFile returns the file for the named compile unit, if one has been
// seen before. Producers emit one compile unit per object file, so a source
// file compiled into several objects appears as several compile units with
// the same name.
func (c *converter) findFile(filename string) *cpp.File {
	for _, f := range c.files {
		if f.Filename == filename {
			return f
		}
	}
	return nil
}

func (c *converter) processDwarf() error {
	i := 0
	for i < len(c.dwf.Entries) {
		entry := c.dwf.Entries[i]

		if entry.Tag == dwarf.TagCompileUnit {
			attr := entry.Attr(dwarf.AttrName)
			if attr == nil {
				return curated.Errorf(dwarf.MalformedAttribute, "compile unit with no name")
			}
			filename, err := attr.String()
			if err != nil {
				return err
			}

			file := c.findFile(filename)
			found := file != nil
			if !found {
				file = &cpp.File{Filename: filename}
			}

			if err := c.processCompileUnit(entry, file); err != nil {
				return curated.Errorf("compile unit '%s': %v", file.Filename, err)
			}

			if !found {
				c.files = append(c.files, file)
			}

			logger.Logf("convert", "compile unit %s: %d user types, %d variables, %d functions",
				file.Filename, len(file.UserTypes), len(file.Variables), len(file.Functions))
		}

		i = entry.Sibling()
	}

	return nil
}

// isUserTypeTag returns true for the six tags that declare a user type.
func isUserTypeTag(tag uint16) bool {
	switch tag {
	case dwarf.TagClassType, dwarf.TagStructureType, dwarf.TagUnionType,
		dwarf.TagEnumerationType, dwarf.TagArrayType, dwarf.TagSubroutineType:
		return true
	}
	return false
}

func (c *converter) processCompileUnit(entry *dwarf.Entry, file *cpp.File) error {
	c.names = make(map[string][]*cpp.UserType)

	next := entry.Sibling()
	if next > len(c.dwf.Entries) {
		next = len(c.dwf.Entries)
	}

	// first pass: allocate a shell for every user type in the compile unit
	// so that forward references resolve during the second pass
	for i := entry.Index + 1; i < next; i = c.dwf.Entries[i].Sibling() {
		e := c.dwf.Entries[i]
		if isUserTypeTag(e.Tag) {
			c.userTypes[e] = &cpp.UserType{}
		}
	}

	// second pass: decode everything
	for i := entry.Index + 1; i < next; i = c.dwf.Entries[i].Sibling() {
		e := c.dwf.Entries[i]

		switch e.Tag {
		case dwarf.TagGlobalVariable, dwarf.TagLocalVariable:
			v, err := c.processVariable(e)
			if err != nil {
				return err
			}
			file.Variables = append(file.Variables, v)

		case dwarf.TagGlobalSubroutine, dwarf.TagSubroutine, dwarf.TagInlinedSubroutine:
			fn := &cpp.Function{Dwarf: c.dwf}
			if err := c.processFunctionType(e, &fn.FunctionType); err != nil {
				return err
			}
			if err := c.processFunction(e, fn); err != nil {
				return err
			}
			file.Functions = append(file.Functions, fn)

		default:
			if !isUserTypeTag(e.Tag) {
				continue // for loop
			}

			ut := c.userTypes[e]
			if err := c.processUserType(e, ut); err != nil {
				return err
			}

			ut.Index = len(file.UserTypes)
			file.UserTypes = append(file.UserTypes, ut)
			c.names[ut.Name] = append(c.names[ut.Name], ut)
		}
	}

	// fixups. methods are attached before names are disambiguated because
	// mangled names refer to the class names the compiler knew, not to any
	// synthetic name invented below
	c.attachMethods(file)
	c.fixUserTypeNames()
	c.sortFunctions(file)

	return nil
}
