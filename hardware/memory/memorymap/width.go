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

package memorymap

import "fmt"

// Width of a bus access in bits.
type Width int

// List of valid Width values.
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// Valid returns true if the Width value is one of Width8, Width16 or Width32.
func (w Width) Valid() bool {
	return w == Width8 || w == Width16 || w == Width32
}

// Bytes returns the number of bytes in an access of the width. Panics if the
// width is not valid.
func (w Width) Bytes() uint32 {
	switch w {
	case Width8:
		return 1
	case Width16:
		return 2
	case Width32:
		return 4
	}
	panic(fmt.Sprintf("memorymap: invalid access width (%d)", int(w)))
}

// Mask returns the bits of a value that fit into an access of the width.
// Panics if the width is not valid.
func (w Width) Mask() uint32 {
	switch w {
	case Width8:
		return 0xff
	case Width16:
		return 0xffff
	case Width32:
		return 0xffffffff
	}
	panic(fmt.Sprintf("memorymap: invalid access width (%d)", int(w)))
}

// Align forces the address to the natural alignment of the width.
func (w Width) Align(address uint32) uint32 {
	return address &^ (w.Bytes() - 1)
}

// index into timing tables
func (w Width) index() int {
	switch w {
	case Width8:
		return 0
	case Width16:
		return 1
	case Width32:
		return 2
	}
	panic(fmt.Sprintf("memorymap: invalid access width (%d)", int(w)))
}

func (w Width) String() string {
	return fmt.Sprintf("%dbit", int(w))
}
