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

// Package memorymap describes the address space of the emulated machine. An
// AddressSpace is an ordered list of disjoint Regions. Every address resolves
// to a Region: addresses that are not covered by any region resolve to the
// open bus region.
//
// A Region describes where it is in the address space, its natural bus
// width, its Timing and the Storage that backs it. Storage is shared by
// reference so that mirrors (and the three gamepak wait state windows) are
// simply different Regions pointing to the same Storage.
//
// The constants in gba.go give the origin and memtop of each area of the Game
// Boy Advance address space, in the same way that the origin and memtop
// constants of other memory maps are defined. Building the actual
// AddressSpace for the GBA is done in the memory package.
package memorymap
