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

// Package convert reconstructs the source-level model from tokenized
// DWARFv1 data.
//
// Each compile unit is converted in two passes over its entries. The first
// pass allocates an empty UserType shell for every type-bearing entry,
// keyed by the entry itself. The second pass decodes everything: type
// bodies, variables and functions. Because every shell already exists by
// the time the second pass runs, a type attribute can reference a type that
// is declared later in the stream and still resolve.
//
// After the second pass a fixup stage runs over the compile unit: functions
// are re-attached to the classes they are methods of (recovered from a
// leading 'this' parameter or from the mangled name), user type names are
// made unique and non-empty, and functions are ordered by source line.
// Vtable addresses are bound in a final pass over all files, from the
// compiler-emitted __vt__ variables.
//
// The first decoding error aborts the whole conversion. There is no partial
// compile unit recovery.
package convert
