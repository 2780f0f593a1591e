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

// Package biosprotect implements the read protection of the GBA BIOS. The
// BIOS can only be read while the program counter is inside the BIOS. Reads
// from outside the BIOS see the most recent BIOS word read from inside it.
//
// Before any such read has taken place the value is LatchReset, which is the
// value left behind by the BIOS after the system has started.
package biosprotect

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// LatchReset is the value of the latch when the protection is created.
const LatchReset = uint32(0xe129f000)

// Range is the address range that the protection should be registered with.
var Range = intercept.Range{Origin: memorymap.OriginBIOS, Memtop: memorymap.MemtopBIOS}

// Protect is an intercept handler. It implements intercept.ReadHandler.
type Protect struct {
	mem   bus.DebuggerBus
	latch uint32
}

// New is the preferred method of initialisation for the Protect type. The
// DebuggerBus is used to read the BIOS when the CPU is inside the BIOS.
func New(mem bus.DebuggerBus) *Protect {
	return &Protect{
		mem:   mem,
		latch: LatchReset,
	}
}

func (p *Protect) String() string {
	return fmt.Sprintf("bios protection (latch=%08x)", p.latch)
}

// Latch returns the current value of the latch.
func (p *Protect) Latch() uint32 {
	return p.latch
}

// Reset the latch to LatchReset.
func (p *Protect) Reset() {
	p.latch = LatchReset
}

func inBIOS(address uint32) bool {
	return address <= memorymap.MemtopBIOS
}

// InterceptRead implements the intercept.ReadHandler interface.
func (p *Protect) InterceptRead(req bus.Request, _ *int) (intercept.Result, error) {
	// without CPU state there is no way of knowing whether the access is from
	// inside the BIOS
	if req.CPU == nil {
		return intercept.Pass, nil
	}

	if inBIOS(req.CPU.PC()) {
		v, err := p.mem.Peek(memorymap.Width32.Align(req.Address), memorymap.Width32)
		if err != nil {
			return intercept.Pass, err
		}
		p.latch = v
		return intercept.Pass, nil
	}

	// select the byte lanes of the latch that correspond to the access
	shift := (req.Address & 3 &^ (req.Width.Bytes() - 1)) * 8
	return intercept.Override((p.latch >> shift) & req.Width.Mask()), nil
}
