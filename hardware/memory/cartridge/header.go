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

package cartridge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHeader is returned when the cartridge header is missing or invalid.
var ErrHeader = errors.New("invalid cartridge header")

// offsets into the cartridge header
const (
	headerEntry      = 0x00
	headerTitle      = 0xa0
	headerGameCode   = 0xac
	headerMaker      = 0xb0
	headerFixed      = 0xb2
	headerUnit       = 0xb3
	headerVersion    = 0xbc
	headerComplement = 0xbd
	headerSize       = 0xc0
)

// the value that must be at the headerFixed offset
const fixedValue = 0x96

// Header is the information in the first 192 bytes of a GBA ROM.
type Header struct {
	// the address of the first instruction executed by the BIOS after the
	// boot sequence. zero if the first word of the ROM is not a branch
	// instruction
	Entry uint32

	Title    string
	GameCode string
	Maker    string
	Unit     uint8
	Version  uint8

	Complement   uint8
	ComplementOK bool
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%s] maker %s v%d", h.Title, h.GameCode, h.Maker, h.Version))
	if !h.ComplementOK {
		s.WriteString(" (bad complement)")
	}
	return s.String()
}

// Complement calculates the header complement check value for the data.
// The data must be at least as long as the header.
func Complement(data []byte) uint8 {
	var chk uint8
	for _, b := range data[headerTitle:headerComplement] {
		chk -= b
	}
	return chk - 0x19
}

// header strings are padded with zero bytes
func headerString(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// ParseHeader parses the header of the ROM data. An error wrapping ErrHeader
// is returned if the data is too short or if the fixed value is incorrect. A
// failed complement check is not an error but is indicated by the
// ComplementOK field.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < headerSize {
		return h, fmt.Errorf("%w: ROM is too short (%d bytes)", ErrHeader, len(data))
	}

	// entry point is an ARM branch instruction (B <offset>). the offset is
	// relative to the address of the instruction plus eight
	op := uint32(data[headerEntry]) | uint32(data[headerEntry+1])<<8 |
		uint32(data[headerEntry+2])<<16 | uint32(data[headerEntry+3])<<24
	if op&0x0f000000 == 0x0a000000 {
		offset := int32(op<<8) >> 6
		h.Entry = uint32(int32(0x08000008) + offset)
	}

	h.Title = headerString(data[headerTitle:headerGameCode])
	h.GameCode = headerString(data[headerGameCode:headerMaker])
	h.Maker = headerString(data[headerMaker:headerFixed])
	h.Unit = data[headerUnit]
	h.Version = data[headerVersion]
	h.Complement = data[headerComplement]
	h.ComplementOK = h.Complement == Complement(data)

	if data[headerFixed] != fixedValue {
		return h, fmt.Errorf("%w: fixed value is %#02x", ErrHeader, data[headerFixed])
	}

	return h, nil
}
