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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/dwarf2cpp/convert"
	"github.com/jetsetilly/dwarf2cpp/cpp"
	"github.com/jetsetilly/dwarf2cpp/dwarf"
	"github.com/jetsetilly/dwarf2cpp/elffile"
	"github.com/jetsetilly/dwarf2cpp/ghidra"
	"github.com/jetsetilly/dwarf2cpp/logger"
	"github.com/jetsetilly/dwarf2cpp/modalflag"
	"github.com/jetsetilly/dwarf2cpp/statsview"
	"github.com/jetsetilly/dwarf2cpp/version"
)

// name of the mapping export written to the root of the output directory.
const ghidraExportFilename = "ghidra-export.txt"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("CONVERT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(1)
	}

	switch md.Mode() {
	case "CONVERT":
		err = convertMode(md)
	case "VERSION":
		vers, rev := version.Version()
		fmt.Printf("%s (%s)\n", vers, rev)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* error in %s mode: %v\n", md, err)
		os.Exit(1)
	}
}

func convertMode(md *modalflag.Modes) error {
	md.NewMode()

	typesOnly := md.AddBool("types", false, "write user types only, skipping variables and functions")
	plain := md.AddBool("plain", false, "suppress offset and size comments")
	echoLog := md.AddBool("log", false, "echo log entries to stdout during conversion")
	memvizFile := md.AddString("memviz", "", "write a graphviz rendering of the reconstructed model to the named file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the stats server (%t)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *echoLog {
		if isTerminal(os.Stdout) {
			logger.SetEcho(logger.NewColorizer(os.Stdout))
		} else {
			logger.SetEcho(os.Stdout)
		}
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("ELF file and output directory required for %s mode", md)
	}

	attr := cpp.WriteAttr{
		UserTypesOnly:   *typesOnly,
		IncludeComments: !*plain,
	}

	return run(md.Output, md.GetArg(0), md.GetArg(1), attr, *memvizFile)
}

func run(output io.Writer, elfFilename string, outDirectory string, attr cpp.WriteAttr, memvizFile string) error {
	fmt.Fprintf(output, "loading ELF file %s\n", elfFilename)

	ef, err := elffile.Open(elfFilename)
	if err != nil {
		return err
	}
	defer ef.Close()

	fmt.Fprintln(output, "loading DWARFv1 information")

	dwf, err := dwarf.New(ef)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, "converting DWARFv1 entries to C++ data")

	files, err := convert.Convert(dwf)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "number of C++ files: %d\n", len(files))

	if memvizFile != "" {
		if err := writeMemviz(files, memvizFile); err != nil {
			return err
		}
	}

	for _, f := range files {
		path := filepath.Join(outDirectory, filepath.FromSlash(relativePath(f.Filename)))

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}

		fmt.Fprintf(output, "writing %s\n", path)

		if err := writeFile(path, func(fd *os.File) error {
			return f.Write(fd, attr)
		}); err != nil {
			return err
		}
	}

	path := filepath.Join(outDirectory, ghidraExportFilename)
	fmt.Fprintf(output, "writing %s\n", path)

	if err := writeFile(path, func(fd *os.File) error {
		return ghidra.Write(fd, dwf, files)
	}); err != nil {
		return err
	}

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(fd); err != nil {
		_ = fd.Close()
		return err
	}

	return fd.Close()
}

// relativePath normalises a compile unit filename into a relative path with
// forward slashes. Producers record Windows-style paths, drive letter and
// all.
func relativePath(filename string) string {
	p := strings.ReplaceAll(filename, "\\", "/")

	if len(p) >= 2 && p[1] == ':' {
		p = p[2:]
	}
	p = strings.TrimPrefix(p, "/")

	return p
}

// writeMemviz dumps the reconstructed model as a graphviz dot file. useful
// when untangling how the user types of a compile unit refer to each other.
func writeMemviz(files []*cpp.File, filename string) error {
	fd, err := os.Create(filename)
	if err != nil {
		return err
	}

	memviz.Map(fd, &files)

	return fd.Close()
}

// isTerminal returns true if the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}
