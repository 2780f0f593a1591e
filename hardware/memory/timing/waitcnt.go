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

package timing

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// AddressWaitControl is the address of the WAITCNT register.
const AddressWaitControl = uint32(0x04000204)

// WaitControlMask are the writable bits of the WAITCNT register. Bit 13 is
// unused and bit 15 is the read-only gamepak type flag.
const WaitControlMask = uint16(0x5fff)

// wait states selected by WAITCNT. the first access table is shared by the
// SRAM and by all three gamepak windows. the second access table is specific
// to each window
var (
	firstAccess  = [4]int{4, 3, 2, 8}
	secondAccess = [3][2]int{{2, 1}, {4, 1}, {8, 1}}
)

// Waits is the number of wait states for the first (non-sequential) and
// second (sequential) access to a gamepak window.
type Waits struct {
	N int
	S int
}

// WaitControl is the decoded value of the WAITCNT register.
type WaitControl struct {
	Value uint16

	// wait states for SRAM
	SRAM int

	// wait states for each gamepak window
	ROM [3]Waits

	// the prefetch buffer is enabled. the prefetch buffer itself is not
	// emulated
	Prefetch bool
}

// DecodeWaitControl decodes the value of the WAITCNT register.
func DecodeWaitControl(v uint16) WaitControl {
	v &= WaitControlMask
	w := WaitControl{
		Value:    v,
		SRAM:     firstAccess[v&0x03],
		Prefetch: v&0x4000 == 0x4000,
	}
	for i := range w.ROM {
		f := (v >> (2 + i*3)) & 0x03
		s := (v >> (4 + i*3)) & 0x01
		w.ROM[i] = Waits{
			N: firstAccess[f],
			S: secondAccess[i][s],
		}
	}
	return w
}

func (w WaitControl) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("WAITCNT=%04x SRAM=%d", w.Value, w.SRAM))
	for i, r := range w.ROM {
		s.WriteString(fmt.Sprintf(" WS%d=%d,%d", i, r.N, r.S))
	}
	if w.Prefetch {
		s.WriteString(" prefetch")
	}
	return s.String()
}

// Apply the wait states to the regions of the address space. Gamepak regions
// have a 16bit bus so 32bit accesses cost an additional sequential access.
// SRAM has an 8bit bus but 16bit and 32bit accesses read only a single byte
// so all widths cost the same.
//
// Each access costs one cycle in addition to the number of wait states.
func (w WaitControl) Apply(as *memorymap.AddressSpace) {
	for i, a := range []memorymap.Area{memorymap.GamepakWS0, memorymap.GamepakWS1, memorymap.GamepakWS2} {
		t := memorymap.NewTiming(memorymap.Width16, 1+w.ROM[i].N, 1+w.ROM[i].S)
		for _, r := range as.FindArea(a) {
			r.Timing = t
		}
	}
	t := memorymap.UniformTiming(1 + w.SRAM)
	for _, r := range as.FindArea(memorymap.SRAM) {
		r.Timing = t
	}
}
