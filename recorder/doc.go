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

// Package recorder records bus accesses to a transcript and plays transcripts
// back through a bus.
//
// A transcript is a text file. Lines beginning with a hash are comments, with
// the exception of the header lines that name the cartridge and the hash of
// the cartridge data:
//
//	# cartridge: game.gba
//	# hash: 6a2c5f...
//
// Every other non-empty line is a single access. Loads have the form
//
//	L32 address [pc]
//
// and stores have the form
//
//	S32 address value [pc]
//
// The width of the access can be 8, 16 or 32. Numbers are hexadecimal,
// optionally prefixed with 0x or $.
//
// A Recorder is an intercept handler and can be registered with the intercept
// table of a bus like any other handler. It never intercepts an access.
package recorder
