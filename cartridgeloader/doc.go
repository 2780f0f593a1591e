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

// Package cartridgeloader is used to load the ROM data that is to be attached
// to the emulated bus.
//
// ROM data can be loaded directly from a ROM file or from inside an archive.
// Supported archive and compression formats are zip, 7z, rar, gzip, xz and
// lz4. A gzip, xz or lz4 stream that contains a tar archive is also
// supported. Formats are detected by the magic bytes at the start of the
// file, falling back to the filename extension.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/game.gba",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// All file access is through an afero.Fs, meaning that ROMs can be loaded from
// an in-memory file system as easily as from the OS file system.
package cartridgeloader
