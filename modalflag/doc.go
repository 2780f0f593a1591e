// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Rather than calling Parse() with the list of arguments, the arguments are
// given to NewArgs() and then Parse() is called with no arguments. Each call
// to Parse() consumes the flags of the current mode and, if sub-modes have
// been added with AddSubModes(), the name of the selected sub-mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MAP", "PEEK", "TRACE")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PEEK":
//		md.NewMode()
//		bios := md.AddString("bios", "", "BIOS file")
//		...
//	}
//
// The first sub-mode in the list is the default mode and is selected if the
// next argument is not the name of a sub-mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the name in upper case.
//
// Non-flag arguments that remain after the call to Parse() are returned by
// RemainingArgs() and GetArg().
package modalflag
