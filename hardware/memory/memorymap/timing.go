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

// Timing is the cost in cycles of an access to a region, for each access
// width and for non-sequential and sequential accesses.
type Timing struct {
	NonSeq [3]int
	Seq    [3]int
}

// NewTiming creates a Timing table for a region with the natural width given.
// The n and s arguments are the costs of a single non-sequential and a single
// sequential access of the natural width (or narrower).
//
// Accesses wider than the natural width are split into k accesses of the
// natural width. The first of those accesses is non-sequential (or
// sequential) as requested and the remaining k-1 are always sequential.
func NewTiming(natural Width, n int, s int) Timing {
	var t Timing
	for _, w := range []Width{Width8, Width16, Width32} {
		k := 1
		if w > natural {
			k = int(w / natural)
		}
		t.NonSeq[w.index()] = n + s*(k-1)
		t.Seq[w.index()] = s * k
	}
	return t
}

// UniformTiming creates a Timing table where every access, of whatever width,
// costs the same number of cycles.
func UniformTiming(cost int) Timing {
	return Timing{
		NonSeq: [3]int{cost, cost, cost},
		Seq:    [3]int{cost, cost, cost},
	}
}

// Cost returns the cost of an access of the given width. Panics if the width
// is not valid.
func (t Timing) Cost(w Width, sequential bool) int {
	if sequential {
		return t.Seq[w.index()]
	}
	return t.NonSeq[w.index()]
}

func (t Timing) validate() error {
	for i := range t.NonSeq {
		if t.NonSeq[i] < 0 || t.Seq[i] < 0 {
			return fmt.Errorf("negative cost in timing table")
		}
	}
	return nil
}

func (t Timing) String() string {
	return fmt.Sprintf("%d/%d/%d (N) %d/%d/%d (S)",
		t.NonSeq[0], t.NonSeq[1], t.NonSeq[2],
		t.Seq[0], t.Seq[1], t.Seq[2])
}
