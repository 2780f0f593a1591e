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

package intercept

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
)

// ReadHandler is implemented by handlers that intercept load operations. The
// handler can add cycles to the counter if it wants to.
type ReadHandler interface {
	InterceptRead(req bus.Request, cycles *int) (Result, error)
}

// WriteHandler is implemented by handlers that intercept store operations. The
// handler can add cycles to the counter if it wants to.
type WriteHandler interface {
	InterceptWrite(req bus.Request, cycles *int) (Result, error)
}

// Range of addresses. Both Origin and Memtop are inclusive.
type Range struct {
	Origin uint32
	Memtop uint32
}

// Address returns a Range that covers a single address.
func Address(address uint32) Range {
	return Range{Origin: address, Memtop: address}
}

func (r Range) String() string {
	if r.Origin == r.Memtop {
		return fmt.Sprintf("%08x", r.Origin)
	}
	return fmt.Sprintf("%08x -> %08x", r.Origin, r.Memtop)
}

// Overlaps returns true if any of the bytes in the access overlap the range.
func (r Range) Overlaps(address uint32, bytes uint32) bool {
	return address <= r.Memtop && address+bytes-1 >= r.Origin
}
