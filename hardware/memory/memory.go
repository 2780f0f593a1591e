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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/hardware/memory/timing"
)

// Bus is the memory bus of the emulated machine. A Bus is not safe for
// concurrent use. Multiple instances of Bus share nothing except, possibly,
// the preferences of their environments.
type Bus struct {
	env *environment.Environment

	Space      *memorymap.AddressSpace
	Intercepts *intercept.Table

	acc timing.Accountant

	// the I/O region is needed to track writes to the WAITCNT register. can
	// be nil if the address space has no I/O region
	io *memorymap.Region

	wait timing.WaitControl

	openBusLog  accessLog
	readOnlyLog accessLog
}

var _ bus.CPUBus = (*Bus)(nil)
var _ bus.DebuggerBus = (*Bus)(nil)

// NewBus is the preferred method of initialisation for the Bus type. The
// regions are validated and arranged into an address space.
func NewBus(env *environment.Environment, regions ...*memorymap.Region) (*Bus, error) {
	as, err := memorymap.NewAddressSpace(regions...)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	b := &Bus{
		env:        env,
		Space:      as,
		Intercepts: intercept.NewTable(env),
	}

	if io := as.FindArea(memorymap.IO); len(io) > 0 {
		b.io = io[0]
	}

	return b, nil
}

func (b *Bus) String() string {
	return b.Space.Summary()
}

// Stats returns the cycle accounting statistics.
func (b *Bus) Stats() timing.Stats {
	return b.acc.Stats()
}

// ResetStats sets the cycle accounting statistics to zero.
func (b *Bus) ResetStats() {
	b.acc.ResetStats()
}

// BreakSequence causes the next access of the Auto kind to be non-sequential.
// A CPU interpreter should call this after a branch.
func (b *Bus) BreakSequence() {
	b.acc.Break()
}

// LastKind returns whether the most recently charged access was sequential or
// non-sequential.
func (b *Bus) LastKind() bus.Kind {
	return b.acc.LastKind()
}

// WaitControl returns the current decoded value of the WAITCNT register.
func (b *Bus) WaitControl() timing.WaitControl {
	return b.wait
}

// SetWaitControl changes the value of the WAITCNT register and reprograms the
// timing of the gamepak regions.
func (b *Bus) SetWaitControl(v uint16) {
	b.wait = timing.DecodeWaitControl(v)
	b.wait.Apply(b.Space)
	if b.io != nil {
		if off, ok := b.waitControlOffset(); ok {
			b.io.Storage.Write(off, memorymap.Width16, uint32(b.wait.Value))
		}
	}
}

// the offset of the WAITCNT register in the I/O region's storage
func (b *Bus) waitControlOffset() (uint32, bool) {
	if !b.io.Contains(timing.AddressWaitControl) {
		return 0, false
	}
	return b.io.Offset(timing.AddressWaitControl), true
}
