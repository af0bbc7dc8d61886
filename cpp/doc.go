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

// Package cpp is the source-level model reconstructed from the DWARFv1
// data: one File per compile unit, each owning the user-defined types,
// variables and functions declared in it.
//
// User types form a graph, not a tree. A class member can reference an array
// of pointers to the class itself. For that reason every cross-reference
// between types is a *UserType pointer into the owning File and never a
// copy. The convert package allocates the UserType shells before any type
// body is decoded so that forward references always have something to point
// at.
//
// The model renders itself in a C++-like syntax through the Write() function
// of the File type. The rendering is reconstructive. It aims to be readable
// and faithful to the debugging information, not to be compilable or
// byte-identical to the lost original source.
package cpp
