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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes breaks a command line into layers of sub-modes and flags. Set the
// Output field before calling Parse() or help messages will have nowhere
// to go.
type Modes struct {
	// where help messages are printed. os.Stdout is the usual choice.
	Output io.Writer

	// the flagset for the current layer. replaced on every call to
	// NewArgs() and NewMode(). its Parse() function is never called
	// directly, only through the Parse() function of this type
	flags *flag.FlagSet

	// the full argument list and the point in it where the current layer
	// begins
	args []string
	next int

	// sub-modes valid for the current layer, stored uppercase
	subModes []string

	// every sub-mode matched so far. accumulated over the whole session,
	// never reset
	path []string

	// verbose help text for the current layer. see AdditionalHelp()
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs begins a fresh session with a new argument list, typically the
// command line. The first layer is opened implicitly.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.NewMode()
}

// NewMode closes the current layer. Arguments from this point on belong to
// a new mode with its own flags and sub-modes.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes for the next call to Parse(). The first sub-mode listed is
// the default: it is selected when no argument names another.
//
// Sub-mode comparison is case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool adds a bool flag to the current layer.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString adds a string flag to the current layer.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AdditionalHelp attaches a verbose explanation to the current layer. It is
// printed after the generated flag and sub-mode help.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// parsing succeeded and processing can continue. when the layer had
	// sub-modes the Mode() function says which one was selected.
	ParseContinue ParseResult = iota

	// help was requested and has been printed to the Output writer.
	ParseHelp

	// parsing failed. the error is in the second return value.
	ParseError
)

// Parse the current layer of arguments.
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		printError(err)
//		return
//	}
//
// A ParseHelp result means the help text has already been written to the
// Output field. There is nothing more for the caller to show the user, so
// it is best handled like an error that has already been reported.
func (md *Modes) Parse() (ParseResult, error) {
	// the flag package wants to print usage information itself. give it a
	// helpWriter so the text can be reshaped before anyone sees it
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.next:])

	if err == flag.ErrHelp {
		hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
		hw.Clear()
		return ParseHelp, nil
	}

	if err != nil {
		// an unrecognised flag. when the layer has sub-modes the flag may
		// belong to the default sub-mode, so select that and let the next
		// layer try the same arguments. without sub-modes the error stands
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		// the first argument after the flags selects the sub-mode. no
		// argument, or an argument matching nothing, selects the default
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.next++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after a call to Parse():
// anything that was neither a flag nor a matched sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// Mode returns the most recently selected sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every sub-mode selected so far, joined in order.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}
