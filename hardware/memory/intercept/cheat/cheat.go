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

// Package cheat implements an intercept handler that applies cheat codes. A
// cheat code fixes the value of one, two or four bytes of memory. Loads that
// touch a cheated byte see the cheat value. Stores that touch a cheated byte
// are allowed but the cheated byte keeps the cheat value.
//
// Cheat codes have the form:
//
//	AAAAAAAA:VV
//	AAAAAAAA:VVVV
//	AAAAAAAA:VVVVVVVV
//
// where A is the hexadecimal address and V is the hexadecimal value. The
// number of value digits decides the width of the cheat. The address must be
// aligned to the width.
package cheat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// Code is a single parsed cheat code.
type Code struct {
	Address uint32
	Width   memorymap.Width
	Value   uint32
}

func (c Code) String() string {
	return fmt.Sprintf("%08X:%0*X", c.Address, int(c.Width.Bytes()*2), c.Value)
}

// Range returns the address range covered by the code.
func (c Code) Range() intercept.Range {
	return intercept.Range{Origin: c.Address, Memtop: c.Address + c.Width.Bytes() - 1}
}

// Parse a cheat code.
func Parse(s string) (Code, error) {
	var c Code

	a, v, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(a) != 8 {
		return c, fmt.Errorf("cheat: %q: expected AAAAAAAA:VV", s)
	}

	switch len(v) {
	case 2:
		c.Width = memorymap.Width8
	case 4:
		c.Width = memorymap.Width16
	case 8:
		c.Width = memorymap.Width32
	default:
		return c, fmt.Errorf("cheat: %q: value must be 2, 4 or 8 digits", s)
	}

	n, err := strconv.ParseUint(a, 16, 32)
	if err != nil {
		return c, fmt.Errorf("cheat: %q: %w", s, err)
	}
	c.Address = uint32(n)

	if c.Width.Align(c.Address) != c.Address {
		return c, fmt.Errorf("cheat: %q: address is not aligned", s)
	}

	n, err = strconv.ParseUint(v, 16, 32)
	if err != nil {
		return c, fmt.Errorf("cheat: %q: %w", s, err)
	}
	c.Value = uint32(n)

	return c, nil
}

// Cheats is an intercept handler that applies a list of cheat codes. It
// implements both intercept.ReadHandler and intercept.WriteHandler.
//
// Cheats should be registered with the range returned by Range().
type Cheats struct {
	mem   bus.DebuggerBus
	codes []Code
}

// New is the preferred method of initialisation for the Cheats type. The
// DebuggerBus is used to read the memory underneath a cheat when an access
// only partially overlaps the cheat.
func New(mem bus.DebuggerBus, codes ...Code) *Cheats {
	return &Cheats{
		mem:   mem,
		codes: codes,
	}
}

func (ch *Cheats) String() string {
	s := make([]string, len(ch.codes))
	for i := range ch.codes {
		s[i] = ch.codes[i].String()
	}
	return fmt.Sprintf("cheats %s", strings.Join(s, " "))
}

// Range returns the smallest range that covers all cheat codes.
func (ch *Cheats) Range() intercept.Range {
	if len(ch.codes) == 0 {
		return intercept.Range{}
	}
	rng := ch.codes[0].Range()
	for _, c := range ch.codes[1:] {
		r := c.Range()
		rng.Origin = min(rng.Origin, r.Origin)
		rng.Memtop = max(rng.Memtop, r.Memtop)
	}
	return rng
}

// Codes returns the list of cheat codes.
func (ch *Cheats) Codes() []Code {
	return ch.codes
}

// merge cheated bytes into the value of an access. returns false if no byte of
// the access is cheated
func (ch *Cheats) merge(address uint32, width memorymap.Width, value uint32) (uint32, bool) {
	n := width.Bytes()
	var merged bool

	for _, c := range ch.codes {
		if !c.Range().Overlaps(address, n) {
			continue
		}
		for i := uint32(0); i < c.Width.Bytes(); i++ {
			a := c.Address + i
			if a < address || a >= address+n {
				continue
			}
			shift := (a - address) * 8
			b := (c.Value >> (i * 8)) & 0xff
			value = (value &^ (0xff << shift)) | (b << shift)
			merged = true
		}
	}

	return value, merged
}

// InterceptRead implements the intercept.ReadHandler interface.
func (ch *Cheats) InterceptRead(req bus.Request, _ *int) (intercept.Result, error) {
	// underlying value only matters if the cheat does not cover the entire
	// access but it is simpler to always read it
	v, err := ch.mem.Peek(req.Address, req.Width)
	if err != nil {
		v = 0
	}
	if v, ok := ch.merge(req.Address, req.Width, v); ok {
		return intercept.Override(v), nil
	}
	return intercept.Pass, nil
}

// InterceptWrite implements the intercept.WriteHandler interface.
func (ch *Cheats) InterceptWrite(req bus.Request, _ *int) (intercept.Result, error) {
	if v, ok := ch.merge(req.Address, req.Width, req.Value); ok {
		return intercept.Override(v), nil
	}
	return intercept.Pass, nil
}
