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

// Package cartridge describes a GBA gamepak. The ROM data is parsed for the
// cartridge header and for the signature strings left by the save library
// that the game was built with. The signature decides the type (and so the
// size) of the backup memory.
//
// The header is not required to be valid. Many homebrew ROMs have a header
// that fails the complement check and the real hardware only checks the
// header in the BIOS boot sequence, which is outside the scope of the bus.
// Problems with the header are recorded in the Cartridge type and are logged
// by the caller.
package cartridge
