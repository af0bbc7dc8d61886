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

package cpp

import (
	"io"
)

// File is the reconstruction of a single compile unit.
type File struct {
	// source filename as recorded in the compile unit entry
	Filename string

	UserTypes []*UserType
	Variables []*Variable
	Functions []*Function
}

// WriteAttr controls the source-style rendering of a File.
type WriteAttr struct {
	// only write the user type sections, skipping variables and functions
	UserTypesOnly bool

	// annotate members with their offsets and classes with their sizes.
	// variables carry their location comment either way
	IncludeComments bool
}

// Write renders the file in source form: type declarations first, then full
// type definitions, then variables and functions.
func (f *File) Write(output io.Writer, attr WriteAttr) error {
	w := &errWriter{output: output}

	// class-like and enum type declarations
	for _, ut := range f.UserTypes {
		switch ut.Kind {
		case KindClass, KindStruct, KindUnion, KindEnum:
			w.line(ut.DeclarationString())
		}
	}
	w.line("")

	// subroutine type declarations
	for _, ut := range f.UserTypes {
		if ut.Kind == KindFunction {
			w.line(ut.DeclarationString())
		}
	}
	w.line("")

	// array type declarations
	for _, ut := range f.UserTypes {
		if ut.Kind == KindArray {
			w.line(ut.DeclarationString())
		}
	}
	w.line("")

	// class-like and enum type definitions
	for _, ut := range f.UserTypes {
		switch ut.Kind {
		case KindClass, KindStruct, KindUnion, KindEnum:
			w.line(ut.DefinitionString(attr.IncludeComments))
			w.line("")
		}
	}

	if !attr.UserTypesOnly {
		for _, v := range f.Variables {
			w.line(v.Declaration() + "; // " + v.LocationString())
		}
		w.line("")

		for _, fn := range f.Functions {
			w.line(fn.DeclarationString())
		}
		w.line("")

		for _, fn := range f.Functions {
			w.line(fn.DefinitionString())
			w.line("")
		}
	}

	return w.err
}

// errWriter accumulates the first write error, saving every line from
// having to check for one.
type errWriter struct {
	output io.Writer
	err    error
}

func (w *errWriter) line(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.output, s+"\n")
}
