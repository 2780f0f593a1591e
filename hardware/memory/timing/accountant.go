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

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// Stats records the number of accesses and cycles charged by an Accountant.
type Stats struct {
	Accesses      int
	Sequential    int
	NonSequential int
	Cycles        int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d accesses (%d N, %d S) %d cycles", s.Accesses, s.NonSequential, s.Sequential, s.Cycles)
}

// Accountant charges bus accesses to a cycle counter. The zero value is ready
// to use. An Accountant is not safe for concurrent use.
type Accountant struct {
	// the region of the previous access and the address that would make the
	// next access sequential
	prev *memorymap.Region
	next uint32

	// whether the most recent access was charged as sequential
	lastSeq bool

	stats Stats
}

// Charge the cost of the access to the cycle counter. The cost is also
// returned. The address in the request must already be aligned.
//
// If the request is of the Auto kind, the access is sequential if it is to the
// same region as the previous access and the address follows on directly from
// the previous access. Explicit Sequential and NonSequential kinds are
// honoured, except that the first access to a new gamepak block is always
// non-sequential.
//
// Panics if the width of the request is not valid.
func (a *Accountant) Charge(region *memorymap.Region, req bus.Request, cycles *int) int {
	var seq bool
	switch req.Kind {
	case bus.Sequential:
		seq = true
	case bus.NonSequential:
		seq = false
	default:
		seq = region == a.prev && req.Address == a.next
	}

	if seq && region.BlockStart(req.Address) {
		seq = false
	}

	cost := region.Timing.Cost(req.Width, seq)

	a.prev = region
	a.next = req.Address + req.Width.Bytes()
	a.lastSeq = seq

	a.stats.Accesses++
	if seq {
		a.stats.Sequential++
	} else {
		a.stats.NonSequential++
	}
	a.stats.Cycles += cost

	*cycles += cost

	return cost
}

// Break the sequence of accesses. The next access of the Auto kind will be
// non-sequential.
func (a *Accountant) Break() {
	a.prev = nil
}

// LastKind returns the kind of the most recently charged access. The value
// is always NonSequential or Sequential.
func (a *Accountant) LastKind() bus.Kind {
	if a.lastSeq {
		return bus.Sequential
	}
	return bus.NonSequential
}

// Stats returns the accumulated statistics.
func (a *Accountant) Stats() Stats {
	return a.stats
}

// ResetStats sets all statistics to zero.
func (a *Accountant) ResetStats() {
	a.stats = Stats{}
}
