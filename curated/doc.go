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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and can be used wherever a
// normal error is expected.
//
// Errors are created with the Errorf() function. Unlike fmt.Errorf() the
// formatting pattern is retained alongside the placeholder values, which
// means an error can later be identified by the pattern that created it:
//
//	err := curated.Errorf(dwarf.StreamError, v)
//
//	if curated.Is(err, dwarf.StreamError) {
//		...
//	}
//
// The Has() function is similar to Is() but checks for the pattern anywhere
// in the error chain. Curated errors implement Unwrap(), so the chain is
// the standard one and plain errors wrapped along the way are stepped over.
// Packages in this project export their error patterns as string constants
// (for example, convert.UnresolvedTypeRef) so that callers and tests can
// match on them without comparing final message strings.
//
// When an error message is realised, adjacent duplicate message parts are
// compressed, however deep the chain. This keeps deeply wrapped errors
// readable when several layers of a decoder describe the fault the same
// way.
package curated
