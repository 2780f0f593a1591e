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

package bus

import "github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The cycles argument is the cycle counter owned by the caller. The cost
// of the access is added to the counter.
//
// Loads of less than 32bits return the value in the low bits of the result.
// Addresses are forced to the natural alignment of the access width.
type CPUBus interface {
	Load8(cpu CPU, address uint32, cycles *int) uint32
	Load16(cpu CPU, address uint32, cycles *int) uint32
	Load32(cpu CPU, address uint32, cycles *int) uint32
	Store8(cpu CPU, address uint32, value uint8, cycles *int)
	Store16(cpu CPU, address uint32, value uint16, cycles *int)
	Store32(cpu CPU, address uint32, value uint32, cycles *int)

	// Access performs the access described by the Request. The value of a
	// Load operation is returned. For a Store operation the return value is
	// the value stored, or the value supplied by the intercept handler if the
	// store was suppressed
	Access(req Request, cycles *int) uint32
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	Peek(address uint32, width memorymap.Width) (uint32, error)
	Poke(address uint32, width memorymap.Width, value uint32) error
}
