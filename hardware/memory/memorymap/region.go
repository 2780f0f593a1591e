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
)

// Mutability of a region.
type Mutability int

// List of valid Mutability values.
const (
	ReadWrite Mutability = iota
	ReadOnly
)

func (m Mutability) String() string {
	if m == ReadOnly {
		return "RO"
	}
	return "RW"
}

// Fold describes part of a mirror window that is folded down onto the storage
// below it. Offsets at or above From have Shift subtracted from them.
type Fold struct {
	From  uint32
	Shift uint32
}

// Region is a contiguous part of the address space.
type Region struct {
	Label string
	Area  Area

	Origin uint32
	Size   uint32

	// the natural width of the region's bus. 8bit regions are read at the
	// exact byte address and the value is replicated to fill wider accesses
	Width Width

	Timing     Timing
	Mutability Mutability

	// storage backing the region. can be shared with other regions
	Storage *Storage

	// mask applied to the offset from the region origin to find the offset
	// into storage. a value of zero means the storage size less one, in
	// which case the storage size must be a power of two
	Mirror uint32

	Fold Fold

	// if non-zero, the first access to every block of this size is
	// non-sequential regardless of the access kind
	Block uint32
}

// ErrRegion is returned when a region is not valid.
var ErrRegion = errors.New("invalid region")

func (r *Region) String() string {
	return fmt.Sprintf("%08x -> %08x %s %s", r.Origin, r.Memtop(), r.Label, r.Mutability)
}

// Memtop returns the last address in the region.
func (r *Region) Memtop() uint32 {
	return r.Origin + r.Size - 1
}

// Contains returns true if the address is in the region.
func (r *Region) Contains(address uint32) bool {
	return address >= r.Origin && address-r.Origin < r.Size
}

// IsOpenBus returns true if the region is the open bus region.
func (r *Region) IsOpenBus() bool {
	return r.Area == Undefined
}

// Offset converts an address in the region to an offset into the region's
// storage. The address must be in the region.
func (r *Region) Offset(address uint32) uint32 {
	o := (address - r.Origin) & r.Mirror
	if r.Fold.Shift != 0 && o >= r.Fold.From {
		o -= r.Fold.Shift
	}
	return o
}

// BlockStart returns true if the address is the first address of a block.
func (r *Region) BlockStart(address uint32) bool {
	return r.Block != 0 && (address-r.Origin)%r.Block == 0
}

func isPowerOfTwo(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

// validate region and fill in any default values. returns a wrapped ErrRegion
// if the region is not valid
func (r *Region) normalise() error {
	if r.Size == 0 {
		return fmt.Errorf("%w: %s: zero size", ErrRegion, r.Label)
	}
	if r.Origin&3 != 0 || r.Size&3 != 0 {
		return fmt.Errorf("%w: %s: origin and size must be four byte aligned", ErrRegion, r.Label)
	}
	if uint64(r.Origin)+uint64(r.Size) > 1<<32 {
		return fmt.Errorf("%w: %s: region extends beyond the address space", ErrRegion, r.Label)
	}
	if !r.Width.Valid() {
		return fmt.Errorf("%w: %s: invalid width (%d)", ErrRegion, r.Label, int(r.Width))
	}
	if err := r.Timing.validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRegion, r.Label, err)
	}
	if r.Storage == nil || len(r.Storage.Data) == 0 {
		return fmt.Errorf("%w: %s: no storage", ErrRegion, r.Label)
	}
	if len(r.Storage.Data)&3 != 0 {
		return fmt.Errorf("%w: %s: storage size must be a multiple of four", ErrRegion, r.Label)
	}

	if r.Mirror == 0 {
		if !isPowerOfTwo(r.Storage.Size()) {
			return fmt.Errorf("%w: %s: storage of %d bytes cannot be mirrored", ErrRegion, r.Label, r.Storage.Size())
		}
		r.Mirror = r.Storage.Size() - 1
	}
	if r.Mirror&3 != 3 {
		return fmt.Errorf("%w: %s: mirror mask must preserve word alignment", ErrRegion, r.Label)
	}

	// the largest offset the region can produce must be inside the storage
	top := r.Mirror
	if r.Size-1 < top {
		top = r.Size - 1
	}
	if r.Fold.Shift != 0 && top >= r.Fold.From {
		if r.Fold.Shift > r.Fold.From {
			return fmt.Errorf("%w: %s: fold is larger than the fold point", ErrRegion, r.Label)
		}
		top = max(r.Fold.From-1, top-r.Fold.Shift)
	}
	if top >= r.Storage.Size() {
		return fmt.Errorf("%w: %s: region is larger than its storage", ErrRegion, r.Label)
	}

	return nil
}
