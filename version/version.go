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

// Package version records the version of the program as a whole.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "dwarf2cpp"

// version number as set by the build process. empty when the project was
// built by hand
var number string

// Version returns the version string and the vcs revision. The revision is
// suffixed with "+dirty" when the source had uncommitted changes.
func Version() (string, string) {
	version := number
	if version == "" {
		version = "unreleased"
	}

	revision := "no revision information"

	info, ok := debug.ReadBuildInfo()
	if ok {
		var vcsRevision string
		var vcsModified bool

		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}

		if vcsRevision != "" {
			revision = vcsRevision
			if vcsModified {
				revision += "+dirty"
			}
		}
	}

	return version, revision
}
