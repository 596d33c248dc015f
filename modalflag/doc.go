// This file is part of Atom.
//
// Atom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Atom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Atom.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package from the Go standard library,
// adding the idea of program modes. A mode is a command line argument that
// switches the program onto a different track, with flags and arguments of
// its own. The go command is the familiar shape: build, test, doc and so
// on are all modes in this sense.
//
// The differences from the flag package are small but important. Arguments
// are supplied up front with NewArgs() and Parse() is called with none:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	p, err := md.Parse()
//
// Flags are added through the Add functions, which return a pointer in the
// manner of the flag package:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// and after a Parse() the non-flag arguments are available through
// RemainingArgs(). A program that wants none would say:
//
//	if len(md.RemainingArgs()) > 0 {
//		return fmt.Errorf("no arguments required")
//	}
//
// Modes are declared with AddSubModes() before the Parse():
//
//	md.AddSubModes("run", "term", "performance")
//
// Parse() then treats the first argument after the flags as a mode
// selector. Matching is case insensitive and the first declared mode is the
// default, chosen when no argument matches. The selection is returned by
// Mode():
//
//	switch md.Mode() {
//	case "RUN":
//		runMode(md)
//	}
//
// Each mode then opens a new layer with NewMode(), adds its own flags and
// calls Parse() again:
//
//	func runMode(md *modalflag.Modes) error {
//		md.NewMode()
//		runtime := md.AddString("runtime", "10s", "max run time")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//		return doRun(*runtime, md.RemainingArgs())
//	}
//
// Layers nest as deeply as wanted: a mode can declare sub-modes of its own
// with another AddSubModes() and the same pattern repeats. Help messages
// (the -help flag) are generated for every layer, listing the layer's
// flags and sub-modes, and are written to the Output field. For the help
// to be visible Output must be set; os.Stdout is the usual choice.
package modalflag
