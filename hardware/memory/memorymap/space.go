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

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrOverlap is returned by NewAddressSpace() when two regions overlap.
var ErrOverlap = errors.New("regions overlap")

// OpenBusTiming is the cost of an access to the open bus.
var OpenBusTiming = UniformTiming(1)

// AddressSpace is the ordered list of regions that make up the address space
// of the machine.
//
// AddressSpace is not safe for concurrent use. The most recent region found by
// Resolve() is cached.
type AddressSpace struct {
	regions []*Region
	openBus *Region

	last *Region
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type. Regions are validated and sorted by origin. An error is
// returned if any region is invalid or if any two regions overlap.
//
// Regions are owned by the address space from this point on. The Timing field
// of a region may be changed (see timing.WaitControl) but changing any other
// field is not allowed.
func NewAddressSpace(regions ...*Region) (*AddressSpace, error) {
	as := &AddressSpace{
		regions: make([]*Region, 0, len(regions)),
		openBus: &Region{
			Label:      "Open Bus",
			Area:       Undefined,
			Width:      Width32,
			Timing:     OpenBusTiming,
			Mutability: ReadOnly,
		},
	}

	for _, r := range regions {
		if r == nil {
			return nil, fmt.Errorf("memorymap: %w: nil region", ErrRegion)
		}
		if err := r.normalise(); err != nil {
			return nil, fmt.Errorf("memorymap: %w", err)
		}
		as.regions = append(as.regions, r)
	}

	sort.SliceStable(as.regions, func(i, j int) bool {
		return as.regions[i].Origin < as.regions[j].Origin
	})

	for i := 1; i < len(as.regions); i++ {
		a := as.regions[i-1]
		b := as.regions[i]
		if b.Origin <= a.Memtop() {
			return nil, fmt.Errorf("memorymap: %w: %s and %s", ErrOverlap, a.Label, b.Label)
		}
	}

	as.last = as.openBus

	return as, nil
}

// Resolve the address to a region and an offset into that region's storage.
// Addresses that are not in any region resolve to the open bus region, in
// which case the offset is the address itself.
func (as *AddressSpace) Resolve(address uint32) (*Region, uint32) {
	if r := as.last; r != as.openBus && r.Contains(address) {
		return r, r.Offset(address)
	}

	// binary search for the last region with an origin less than or equal to
	// the address
	lo, hi := 0, len(as.regions)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if as.regions[m].Origin <= address {
			lo = m + 1
		} else {
			hi = m
		}
	}

	if lo > 0 {
		if r := as.regions[lo-1]; r.Contains(address) {
			as.last = r
			return r, r.Offset(address)
		}
	}

	return as.openBus, address
}

// OpenBus returns the open bus region.
func (as *AddressSpace) OpenBus() *Region {
	return as.openBus
}

// Regions returns the regions in the address space in address order. The
// returned slice must not be modified.
func (as *AddressSpace) Regions() []*Region {
	return as.regions
}

// FindArea returns all regions in the specified area, in address order.
func (as *AddressSpace) FindArea(area Area) []*Region {
	var f []*Region
	for _, r := range as.regions {
		if r.Area == area {
			f = append(f, r)
		}
	}
	return f
}

// FindLabel returns the region with the specified label. Returns nil if there
// is no region with that label.
func (as *AddressSpace) FindLabel(label string) *Region {
	for _, r := range as.regions {
		if r.Label == label {
			return r
		}
	}
	return nil
}

// Summary returns a single multiline string detailing all the regions in the
// address space, including the gaps that resolve to the open bus. Useful for
// reference.
func (as *AddressSpace) Summary() string {
	s := strings.Builder{}

	gap := func(from uint64, to uint64) {
		if from < to {
			s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", from, to-1, as.openBus.Label))
		}
	}

	next := uint64(0)
	for _, r := range as.regions {
		gap(next, uint64(r.Origin))
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", r.Origin, r.Memtop(), r.Label))
		next = uint64(r.Origin) + uint64(r.Size)
	}
	gap(next, 1<<32)

	return s.String()
}
