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

// Package resources decides where on disk the program keeps its files:
// preferences, transcripts and anything else that needs to survive between
// sessions.
//
// JoinPath() is the only entry point. Given the elements of a path relative
// to the resource directory it returns the absolute location, creating any
// intermediate directories on the way. The named file itself is never
// created or touched.
//
// Where the resource directory lives depends on the build. Binaries built
// with the "release" tag keep their files under the user's configuration
// directory. On a typical Linux system that means:
//
//	/home/user/.config/atom/
//
// Development builds instead use a directory named ".atom" in the current
// working directory, which keeps everything in easy reach while working on
// the program.
//
// A ".atom" directory found in the current working directory wins over both
// of the above. This is the portable mechanism: carry the program and its
// files together, on a USB stick say, and nothing is written to the host
// system.
package resources
