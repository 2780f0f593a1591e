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

// Package bus defines the memory bus concept. The CPUBus is the interface
// used by a CPU interpreter to access memory. Every access through the CPUBus
// is decoded, offered to any intercept handlers, and charged to the cycle
// counter supplied by the caller.
//
// The DebuggerBus is for the exclusive use of debuggers and other tools that
// need to inspect memory. Accesses through the DebuggerBus have no side
// effects: they are not intercepted and they cost nothing.
//
// A Request describes a single access. It is passed by value and is never
// retained by the bus.
package bus
