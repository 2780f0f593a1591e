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

// Package timing accounts for the cycles consumed by bus accesses.
//
// The Accountant decides whether an access is sequential or non-sequential
// and charges the cost from the region's Timing table to the caller's cycle
// counter. The WaitControl type decodes the GBA's WAITCNT register and
// reprograms the Timing tables of the gamepak regions.
//
// Timing constants are taken from the GBATEK reference document.
package timing
