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

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// Operation is the direction of a bus access.
type Operation int

// List of valid Operation values.
const (
	Load Operation = iota
	Store
)

func (op Operation) String() string {
	switch op {
	case Load:
		return "load"
	case Store:
		return "store"
	}
	return "unknown"
}

// Kind of bus access. The ARM7TDMI signals whether an access is sequential or
// not. For CPU interpreters that don't track this, the Auto kind lets the
// cycle accountant decide.
type Kind int

// List of valid Kind values.
const (
	Auto Kind = iota
	NonSequential
	Sequential
)

func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case NonSequential:
		return "N"
	case Sequential:
		return "S"
	}
	return "unknown"
}

// CPU is the view of the CPU state available to the bus and to intercept
// handlers. It is implemented by the CPU interpreter.
type CPU interface {
	// the address of the instruction currently executing
	PC() uint32

	// the most recently prefetched opcode. used to decide the value of an
	// open bus read
	Prefetched() uint32
}

// Snapshot is a simple implementation of the CPU interface. Pass a pointer to a
// Snapshot to avoid an allocation when it is converted to the CPU interface.
type Snapshot struct {
	ProgramCounter uint32
	Prefetch       uint32
}

// PC implements the CPU interface.
func (s Snapshot) PC() uint32 {
	return s.ProgramCounter
}

// Prefetched implements the CPU interface.
func (s Snapshot) Prefetched() uint32 {
	return s.Prefetch
}

// Request describes a single access to the bus.
type Request struct {
	Address uint32
	Width   memorymap.Width
	Kind    Kind
	Op      Operation

	// the value to be stored for Store operations. ignored for Load
	// operations
	Value uint32

	// CPU state at the time of the access. can be nil
	CPU CPU
}

func (r Request) String() string {
	if r.Op == Store {
		return fmt.Sprintf("%s %s %08x = %#x", r.Op, r.Width, r.Address, r.Value)
	}
	return fmt.Sprintf("%s %s %08x", r.Op, r.Width, r.Address)
}

// PC returns the program counter of the CPU making the request. Returns zero
// if the CPU is nil.
func (r Request) PC() uint32 {
	if r.CPU == nil {
		return 0
	}
	return r.CPU.PC()
}
