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

// Package prefs facilitates the setting and storage of preference values.
//
// A preference value is a live value of type Bool, String or Int. The live
// value can be used directly in the program and its value changed with the
// Set() function.
//
// Preference values can be stored to and loaded from disk with the Disk type.
// A Disk instance is created with the NewDisk() function and preference
// values registered with the Add() function. Each value is registered with a
// key. For example, the mouse sample rate preference used by the driver
// package is stored under the key:
//
//	controller.samplerate
//
// The Save() and Load() functions of the Disk type transfer all registered
// values to and from the disk file. Values in the file that have not been
// registered with the Disk instance are left untouched, meaning that several
// Disk instances (from several parts of the program) can use the same file
// safely.
//
// Preference values can also be set from the command line, through the
// command line stack. A value given there takes precedence over the value in
// the disk file for one load only. See PushCommandLineStack().
package prefs
