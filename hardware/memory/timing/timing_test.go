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

package timing_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/hardware/memory/timing"
	"github.com/jetsetilly/gopheradvance/test"
)

func rom(t *testing.T) (*memorymap.AddressSpace, *memorymap.Region) {
	t.Helper()
	s := memorymap.NewStorage("ROM", 0x40000)
	r := &memorymap.Region{
		Label:      "WS0",
		Area:       memorymap.GamepakWS0,
		Origin:     memorymap.OriginWS0,
		Size:       memorymap.MemtopWS0 - memorymap.OriginWS0 + 1,
		Width:      memorymap.Width16,
		Timing:     memorymap.NewTiming(memorymap.Width16, 5, 3),
		Mutability: memorymap.ReadOnly,
		Storage:    s,
		Block:      memorymap.GamepakBlock,
	}
	as, err := memorymap.NewAddressSpace(r)
	test.DemandSuccess(t, err)
	return as, r
}

func load(address uint32, w memorymap.Width) bus.Request {
	return bus.Request{Address: address, Width: w, Op: bus.Load}
}

func TestSequentialDetection(t *testing.T) {
	_, r := rom(t)
	var acc timing.Accountant
	var cycles int

	// first access is always non-sequential
	test.ExpectEquality(t, acc.Charge(r, load(0x08000100, memorymap.Width16), &cycles), 5)
	test.ExpectEquality(t, acc.LastKind(), bus.NonSequential)

	// next halfword is sequential
	test.ExpectEquality(t, acc.Charge(r, load(0x08000102, memorymap.Width16), &cycles), 3)
	test.ExpectEquality(t, acc.LastKind(), bus.Sequential)

	// next word is sequential
	test.ExpectEquality(t, acc.Charge(r, load(0x08000104, memorymap.Width32), &cycles), 6)
	test.ExpectEquality(t, acc.Charge(r, load(0x08000108, memorymap.Width32), &cycles), 6)

	// a jump backwards is non-sequential
	test.ExpectEquality(t, acc.Charge(r, load(0x08000100, memorymap.Width32), &cycles), 8)

	// a break in the sequence
	acc.Break()
	test.ExpectEquality(t, acc.Charge(r, load(0x08000104, memorymap.Width32), &cycles), 8)

	test.ExpectEquality(t, cycles, 5+3+6+6+8+8)

	st := acc.Stats()
	test.ExpectEquality(t, st.Accesses, 6)
	test.ExpectEquality(t, st.Sequential, 3)
	test.ExpectEquality(t, st.NonSequential, 3)
	test.ExpectEquality(t, st.Cycles, cycles)

	acc.ResetStats()
	test.ExpectEquality(t, acc.Stats(), timing.Stats{})
}

func TestExplicitKind(t *testing.T) {
	_, r := rom(t)
	var acc timing.Accountant
	var cycles int

	req := load(0x08000200, memorymap.Width16)
	req.Kind = bus.Sequential
	test.ExpectEquality(t, acc.Charge(r, req, &cycles), 3)

	req = load(0x08000202, memorymap.Width16)
	req.Kind = bus.NonSequential
	test.ExpectEquality(t, acc.Charge(r, req, &cycles), 5)
}

func TestBlockBoundary(t *testing.T) {
	_, r := rom(t)
	var acc timing.Accountant
	var cycles int

	acc.Charge(r, load(0x0801fffe, memorymap.Width16), &cycles)

	// the access follows on but it is the start of a new 128KiB block
	test.ExpectEquality(t, acc.Charge(r, load(0x08020000, memorymap.Width16), &cycles), 5)

	// explicitly sequential accesses are also affected
	req := load(0x08040000, memorymap.Width16)
	req.Kind = bus.Sequential
	test.ExpectEquality(t, acc.Charge(r, req, &cycles), 5)
}

func TestMonotonicAndRepeatable(t *testing.T) {
	_, r := rom(t)

	pattern := []bus.Request{
		load(0x08000000, memorymap.Width32),
		load(0x08000004, memorymap.Width32),
		load(0x08000006, memorymap.Width16),
		load(0x08000100, memorymap.Width8),
	}

	var deltas []int
	for run := 0; run < 3; run++ {
		var acc timing.Accountant
		cycles := 1000
		for i, req := range pattern {
			before := cycles
			d := acc.Charge(r, req, &cycles)
			test.ExpectSuccess(t, d >= 0, run, i)
			test.ExpectSuccess(t, cycles >= before, run, i)
			test.ExpectEquality(t, cycles-before, d, run, i)

			if run == 0 {
				deltas = append(deltas, d)
			} else {
				test.ExpectEquality(t, d, deltas[i], run, i)
			}
		}
	}
}

func TestInvalidWidth(t *testing.T) {
	_, r := rom(t)
	var acc timing.Accountant
	var cycles int
	test.DemandPanic(t, func() {
		acc.Charge(r, load(0x08000000, memorymap.Width(7)), &cycles)
	})
}

func TestWaitControl(t *testing.T) {
	w := timing.DecodeWaitControl(0)
	test.ExpectEquality(t, w.SRAM, 4)
	test.ExpectEquality(t, w.ROM[0], timing.Waits{N: 4, S: 2})
	test.ExpectEquality(t, w.ROM[1], timing.Waits{N: 4, S: 4})
	test.ExpectEquality(t, w.ROM[2], timing.Waits{N: 4, S: 8})
	test.ExpectFailure(t, w.Prefetch)

	// the value most commercial games write
	w = timing.DecodeWaitControl(0x4317)
	test.ExpectEquality(t, w.SRAM, 8)
	test.ExpectEquality(t, w.ROM[0], timing.Waits{N: 3, S: 1})
	test.ExpectEquality(t, w.ROM[1], timing.Waits{N: 4, S: 4})
	test.ExpectEquality(t, w.ROM[2], timing.Waits{N: 8, S: 8})
	test.ExpectSuccess(t, w.Prefetch)
	test.ExpectEquality(t, w.String(), "WAITCNT=4317 SRAM=8 WS0=3,1 WS1=4,4 WS2=8,8 prefetch")

	// read only bits are masked
	w = timing.DecodeWaitControl(0xffff)
	test.ExpectEquality(t, w.Value, timing.WaitControlMask)
}

func TestWaitControlApply(t *testing.T) {
	as, r := rom(t)
	var acc timing.Accountant
	var cycles int

	timing.DecodeWaitControl(0x4317).Apply(as)
	test.ExpectEquality(t, acc.Charge(r, load(0x08000000, memorymap.Width16), &cycles), 4)
	test.ExpectEquality(t, acc.Charge(r, load(0x08000002, memorymap.Width16), &cycles), 2)
	test.ExpectEquality(t, acc.Charge(r, load(0x08000004, memorymap.Width32), &cycles), 4)
	acc.Break()
	test.ExpectEquality(t, acc.Charge(r, load(0x08000000, memorymap.Width32), &cycles), 6)
}
