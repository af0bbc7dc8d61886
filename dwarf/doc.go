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

// Package dwarf tokenizes version 1 DWARF debugging information. The
// debug/dwarf package in the standard library rejects DWARF this old, which
// is why the decoding is done by hand.
//
// The .debug section of the ELF file is a flat stream of debugging
// information entries (DIEs). Each entry is a four byte length (inclusive of
// itself), a two byte tag and a list of attributes filling the remainder.
// Entries shorter than eight bytes are null entries, used by producers to
// terminate sibling chains, and are skipped by the tokenizer.
//
// An attribute is a two byte name. The low four bits of the name select the
// form of the operand that follows. Typed accessors on the Attribute type
// return the operand value and complain if the form does not agree with the
// accessor.
//
// Entries are connected through AT_sibling references. Sibling() returns the
// index of the entry one past the current entry's subtree, allowing bounded
// walks over the children of any entry.
//
// The .line section is a series of chunks, one per function. Each chunk is
// keyed by a base address and lists source line numbers against address
// offsets from that base. LineEntries() returns the rows for a base address,
// in the order the producer wrote them.
//
// All multi-byte values are little-endian, as produced by the MIPS toolchains
// this program was written for.
package dwarf
