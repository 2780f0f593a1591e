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

package biosprotect_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept/biosprotect"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/test"
)

type bios struct {
	s *memorymap.Storage
}

func (b bios) Peek(address uint32, w memorymap.Width) (uint32, error) {
	return b.s.Read(address, w), nil
}

func (b bios) Poke(address uint32, w memorymap.Width, v uint32) error {
	b.s.Write(address, w, v)
	return nil
}

func TestProtection(t *testing.T) {
	mem := bios{s: memorymap.NewStorage("BIOS", memorymap.SizeBIOS)}
	mem.Poke(0x100, memorymap.Width32, 0x11223344)
	p := biosprotect.New(mem)

	var cycles int
	outside := &bus.Snapshot{ProgramCounter: 0x08000000}
	inside := &bus.Snapshot{ProgramCounter: 0x00000080}

	// reads from outside before any read from inside
	r, err := p.InterceptRead(bus.Request{Address: 0x100, Width: memorymap.Width32, CPU: outside}, &cycles)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, intercept.Override(biosprotect.LatchReset))

	// read from inside passes and updates the latch
	r, _ = p.InterceptRead(bus.Request{Address: 0x102, Width: memorymap.Width16, CPU: inside}, &cycles)
	test.ExpectEquality(t, r, intercept.Pass)
	test.ExpectEquality(t, p.Latch(), uint32(0x11223344))

	// byte lanes of the latch
	r, _ = p.InterceptRead(bus.Request{Address: 0x0, Width: memorymap.Width32, CPU: outside}, &cycles)
	test.ExpectEquality(t, r.Value, uint32(0x11223344))
	r, _ = p.InterceptRead(bus.Request{Address: 0x2, Width: memorymap.Width16, CPU: outside}, &cycles)
	test.ExpectEquality(t, r.Value, uint32(0x1122))
	r, _ = p.InterceptRead(bus.Request{Address: 0x1, Width: memorymap.Width8, CPU: outside}, &cycles)
	test.ExpectEquality(t, r.Value, uint32(0x33))

	// no CPU state
	r, _ = p.InterceptRead(bus.Request{Address: 0x0, Width: memorymap.Width32}, &cycles)
	test.ExpectEquality(t, r, intercept.Pass)

	p.Reset()
	test.ExpectEquality(t, p.Latch(), biosprotect.LatchReset)
	test.ExpectEquality(t, cycles, 0)
}
