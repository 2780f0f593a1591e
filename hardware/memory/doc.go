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

// Package memory is the bus of the emulated GBA. It sits between the CPU
// interpreter and the address space and implements the bus.CPUBus and
// bus.DebuggerBus interfaces.
//
//	                        DEBUGGER
//	                            |
//	                      debugger bus
//	                            |
//	    CPU ---- cpu bus ---- MEMORY ---- address space ---- storage
//	                            |
//	                     intercept table
//	                            |
//	                  watch/cheat/script/...
//
// Every access from the CPU follows the same sequence:
//
//	1. the address is forced to the alignment of the access width
//	2. the address is resolved to a region by the address space
//	3. the intercept table is consulted
//	4. if not intercepted, storage is read or written
//	5. the cycle accountant charges the access to the cycle counter
//
// Accesses from the debugger bus skip steps 3 and 5.
//
// Alignment means that an access can never straddle two regions. Regions are
// always four byte aligned. Rotation of misaligned loads, as performed by the
// ARM7TDMI, is the responsibility of the CPU interpreter.
//
// Regions with an 8bit bus (the SRAM) are accessed at the exact byte address
// that was requested. For loads wider than 8bits the byte is repeated across
// the width of the load. For stores wider than 8bits the byte lane of the
// value that corresponds to the address is stored.
//
// Unmapped addresses read the open bus. The value of the open bus is decided
// by the preferences of the environment: either the most recently
// prefetched opcode or a fixed value.
//
// The CPU path does not allocate. Logging of open bus accesses and of writes
// to read-only regions do allocate but those are not expected during normal
// operation.
package memory
