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
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// sentinal errors returned by Peek() and Poke()
var (
	PeekError = errors.New("cannot peek address")
	PokeError = errors.New("cannot poke address")
)

// Peek implements the bus.DebuggerBus interface. The address is aligned to
// the width. Peeking costs no cycles and is not intercepted. Peeking the open
// bus is an error.
func (b *Bus) Peek(address uint32, width memorymap.Width) (uint32, error) {
	if !width.Valid() {
		return 0, fmt.Errorf("%w: %08x: invalid width (%d)", PeekError, address, int(width))
	}
	address = width.Align(address)
	region, offset := b.Space.Resolve(address)
	if region.IsOpenBus() {
		return 0, fmt.Errorf("%w: %08x: open bus", PeekError, address)
	}
	return region.Storage.Read(offset, width), nil
}

// Poke implements the bus.DebuggerBus interface. The address is aligned to
// the width. Poking is allowed for read-only regions. It costs no cycles and
// is not intercepted. Poking a hardware register changes the value in storage
// but does not otherwise affect the hardware.
func (b *Bus) Poke(address uint32, width memorymap.Width, value uint32) error {
	if !width.Valid() {
		return fmt.Errorf("%w: %08x: invalid width (%d)", PokeError, address, int(width))
	}
	address = width.Align(address)
	region, offset := b.Space.Resolve(address)
	if region.IsOpenBus() {
		return fmt.Errorf("%w: %08x: open bus", PokeError, address)
	}
	region.Storage.Write(offset, width, value)
	return nil
}

// AddressInfo contains everything you could possibly usefully know about an
// address.
type AddressInfo struct {
	Address uint32

	Region string
	Area   memorymap.Area

	// offset into the region's storage
	Offset uint32

	// true if the address is a mirror of an address earlier in the region
	Mirror bool

	Timing     memorymap.Timing
	Mutability memorymap.Mutability

	// the data at the address. if peeked is false then data is not valid
	Peeked bool
	Data   uint32
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%08x (%s)", ai.Address, ai.Region))
	if ai.Area != memorymap.Undefined {
		s.WriteString(fmt.Sprintf(" offset %#x %s", ai.Offset, ai.Mutability))
		if ai.Mirror {
			s.WriteString(" [mirror]")
		}
	}
	if ai.Peeked {
		s.WriteString(fmt.Sprintf(" -> %08x", ai.Data))
	}
	return s.String()
}

// AddressInfo returns information about the address. The data is peeked as a
// 32bit value from the aligned address.
func (b *Bus) AddressInfo(address uint32) AddressInfo {
	region, offset := b.Space.Resolve(address)

	ai := AddressInfo{
		Address:    address,
		Region:     region.Label,
		Area:       region.Area,
		Timing:     region.Timing,
		Mutability: region.Mutability,
	}

	if region.IsOpenBus() {
		return ai
	}

	ai.Offset = offset
	ai.Mirror = offset != address-region.Origin

	if v, err := b.Peek(address, memorymap.Width32); err == nil {
		ai.Peeked = true
		ai.Data = v
	}

	return ai
}
