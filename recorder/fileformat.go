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

package recorder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// ErrSyntax is returned when a transcript cannot be parsed.
var ErrSyntax = errors.New("transcript syntax error")

// header lines
const (
	headerCartridge = "# cartridge: "
	headerHash      = "# hash: "
)

// Entry is a single access in a transcript.
type Entry struct {
	Op      bus.Operation
	Width   memorymap.Width
	Address uint32
	Value   uint32

	// whether the access has a program counter. if it does not then the
	// access is made with no CPU state
	HasPC bool
	PC    uint32

	// the line in the transcript the entry appears on. zero if the entry was
	// not parsed from a transcript
	Line int
}

// String returns the entry in the transcript format.
func (e Entry) String() string {
	s := strings.Builder{}
	if e.Op == bus.Store {
		s.WriteString(fmt.Sprintf("S%d %08x %x", int(e.Width), e.Address, e.Value))
	} else {
		s.WriteString(fmt.Sprintf("L%d %08x", int(e.Width), e.Address))
	}
	if e.HasPC {
		s.WriteString(fmt.Sprintf(" %08x", e.PC))
	}
	return s.String()
}

// Request returns the bus request for the entry. The snapshot is used for the
// CPU state of the request if the entry has a program counter.
func (e Entry) Request(snapshot *bus.Snapshot) bus.Request {
	req := bus.Request{
		Address: e.Address,
		Width:   e.Width,
		Op:      e.Op,
		Value:   e.Value,
	}
	if e.HasPC {
		snapshot.ProgramCounter = e.PC
		req.CPU = snapshot
	}
	return req
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ParseEntry parses a single line of a transcript that is not a comment.
func ParseEntry(line string) (Entry, error) {
	var e Entry

	f := strings.Fields(line)
	if len(f) < 2 {
		return e, fmt.Errorf("%w: too few fields", ErrSyntax)
	}

	op := strings.ToUpper(f[0])
	switch op[0] {
	case 'L':
		e.Op = bus.Load
	case 'S':
		e.Op = bus.Store
	default:
		return e, fmt.Errorf("%w: unknown operation (%s)", ErrSyntax, f[0])
	}

	switch op[1:] {
	case "8":
		e.Width = memorymap.Width8
	case "16":
		e.Width = memorymap.Width16
	case "32":
		e.Width = memorymap.Width32
	default:
		return e, fmt.Errorf("%w: unknown width (%s)", ErrSyntax, f[0])
	}

	var err error

	e.Address, err = parseHex(f[1])
	if err != nil {
		return e, fmt.Errorf("%w: address: %s", ErrSyntax, f[1])
	}

	f = f[2:]

	if e.Op == bus.Store {
		if len(f) == 0 {
			return e, fmt.Errorf("%w: store without a value", ErrSyntax)
		}
		e.Value, err = parseHex(f[0])
		if err != nil {
			return e, fmt.Errorf("%w: value: %s", ErrSyntax, f[0])
		}
		f = f[1:]
	}

	switch len(f) {
	case 0:
	case 1:
		e.PC, err = parseHex(f[0])
		if err != nil {
			return e, fmt.Errorf("%w: pc: %s", ErrSyntax, f[0])
		}
		e.HasPC = true
	default:
		return e, fmt.Errorf("%w: too many fields", ErrSyntax)
	}

	return e, nil
}
