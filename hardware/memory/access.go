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
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// Load8 implements the bus.CPUBus interface.
func (b *Bus) Load8(cpu bus.CPU, address uint32, cycles *int) uint32 {
	return b.Access(bus.Request{Address: address, Width: memorymap.Width8, Op: bus.Load, CPU: cpu}, cycles)
}

// Load16 implements the bus.CPUBus interface.
func (b *Bus) Load16(cpu bus.CPU, address uint32, cycles *int) uint32 {
	return b.Access(bus.Request{Address: address, Width: memorymap.Width16, Op: bus.Load, CPU: cpu}, cycles)
}

// Load32 implements the bus.CPUBus interface.
func (b *Bus) Load32(cpu bus.CPU, address uint32, cycles *int) uint32 {
	return b.Access(bus.Request{Address: address, Width: memorymap.Width32, Op: bus.Load, CPU: cpu}, cycles)
}

// Store8 implements the bus.CPUBus interface.
func (b *Bus) Store8(cpu bus.CPU, address uint32, value uint8, cycles *int) {
	b.Access(bus.Request{Address: address, Width: memorymap.Width8, Op: bus.Store, Value: uint32(value), CPU: cpu}, cycles)
}

// Store16 implements the bus.CPUBus interface.
func (b *Bus) Store16(cpu bus.CPU, address uint32, value uint16, cycles *int) {
	b.Access(bus.Request{Address: address, Width: memorymap.Width16, Op: bus.Store, Value: uint32(value), CPU: cpu}, cycles)
}

// Store32 implements the bus.CPUBus interface.
func (b *Bus) Store32(cpu bus.CPU, address uint32, value uint32, cycles *int) {
	b.Access(bus.Request{Address: address, Width: memorymap.Width32, Op: bus.Store, Value: value, CPU: cpu}, cycles)
}

// Access implements the bus.CPUBus interface. Panics if the width of the
// request is not valid.
func (b *Bus) Access(req bus.Request, cycles *int) uint32 {
	mask := req.Width.Mask()

	// the address as requested is needed for 8bit regions and for the byte
	// lanes of the open bus
	requested := req.Address
	req.Address = req.Width.Align(req.Address)
	req.Value &= mask

	region, offset := b.Space.Resolve(req.Address)

	res := b.Intercepts.Dispatch(req, cycles)
	switch res.Kind {
	case intercept.Suppressed:
		b.acc.Break()
		return res.Value & mask
	case intercept.Value:
		if req.Op == bus.Load {
			b.acc.Charge(region, req, cycles)
			return res.Value & mask
		}
		req.Value = res.Value & mask
	}

	var v uint32
	if req.Op == bus.Load {
		v = b.load(region, offset, requested, req)
	} else {
		b.store(region, offset, requested, req)
		v = req.Value
	}

	b.acc.Charge(region, req, cycles)

	return v
}

func (b *Bus) load(region *memorymap.Region, offset uint32, requested uint32, req bus.Request) uint32 {
	if region.IsOpenBus() {
		return b.openBus(requested, req)
	}

	if region.Width == memorymap.Width8 && req.Width != memorymap.Width8 {
		v := region.Storage.Read(region.Offset(requested), memorymap.Width8)
		return (v * 0x01010101) & req.Width.Mask()
	}

	return region.Storage.Read(offset, req.Width)
}

func (b *Bus) store(region *memorymap.Region, offset uint32, requested uint32, req bus.Request) {
	if region.IsOpenBus() {
		if b.env.Prefs.OpenBusLog.Bool() && b.openBusLog.note() {
			b.env.Log.Debugf(b.env, "memory", "open bus: %s", req)
		}
		return
	}

	if region.Mutability == memorymap.ReadOnly {
		if b.readOnlyLog.note() {
			b.env.Log.Debugf(b.env, "memory", "write to read-only %s: %s", region.Label, req)
		}
		return
	}

	if region.Width == memorymap.Width8 && req.Width != memorymap.Width8 {
		lane := (requested & (req.Width.Bytes() - 1)) * 8
		region.Storage.Write(region.Offset(requested), memorymap.Width8, req.Value>>lane)
		return
	}

	region.Storage.Write(offset, req.Width, req.Value)

	if region == b.io {
		b.checkWaitControl(offset, req.Width)
	}
}

// reprogram timings if the store touched the WAITCNT register
func (b *Bus) checkWaitControl(offset uint32, width memorymap.Width) {
	wc, ok := b.waitControlOffset()
	if !ok {
		return
	}
	if offset > wc+1 || offset+width.Bytes()-1 < wc {
		return
	}
	b.SetWaitControl(uint16(b.io.Storage.Read(wc, memorymap.Width16)))
}

// the value of an open bus load
func (b *Bus) openBus(requested uint32, req bus.Request) uint32 {
	var v uint32

	p := b.env.Prefs
	if req.CPU != nil && !p.UseFixedOpenBus() {
		v = req.CPU.Prefetched()
	} else {
		v = uint32(p.OpenBusValue.Int())
	}

	if p.OpenBusLog.Bool() && b.openBusLog.note() {
		b.env.Log.Debugf(b.env, "memory", "open bus: %s", req)
	}

	// select the byte lanes that correspond to the access
	shift := (requested & 3 &^ (req.Width.Bytes() - 1)) * 8
	return (v >> shift) & req.Width.Mask()
}
