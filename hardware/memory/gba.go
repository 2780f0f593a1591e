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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept/biosprotect"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// PriorityBIOSProtection is the priority of the BIOS protection handler.
// Handlers with a higher priority see BIOS reads before the protection does.
const PriorityBIOSProtection = 1000

// PriorityWatch is the priority that watches should be registered with if
// they are to see BIOS reads that are answered by the BIOS protection.
const PriorityWatch = PriorityBIOSProtection + 1

// labels of the GBA regions
const (
	LabelBIOS    = "BIOS"
	LabelEWRAM   = "EWRAM"
	LabelIWRAM   = "IWRAM"
	LabelIO      = "I/O"
	LabelPalette = "Palette"
	LabelVRAM    = "VRAM"
	LabelOAM     = "OAM"
	LabelWS0     = "ROM WS0"
	LabelWS1     = "ROM WS1"
	LabelWS2     = "ROM WS2"
	LabelSRAM    = "SRAM"
)

// span of an area from its origin to its memtop
func span(origin uint32, memtop uint32) uint32 {
	return memtop - origin + 1
}

// NewGBA creates a Bus with the address space of the Game Boy Advance.
//
// The BIOS argument can be nil, in which case the BIOS is all zeros. The
// cartridge can also be nil, in which case the gamepak area is empty.
//
// The initial value of WAITCNT is taken from the preferences of the
// environment. If BIOS protection is enabled in the preferences the
// protection handler is registered.
func NewGBA(env *environment.Environment, bios []byte, cart *cartridge.Cartridge) (*Bus, error) {
	if len(bios) > memorymap.SizeBIOS {
		return nil, fmt.Errorf("memory: BIOS is too large (%d bytes)", len(bios))
	}

	biosStorage := memorymap.NewStorage(LabelBIOS, memorymap.SizeBIOS)
	copy(biosStorage.Data, bios)

	var rom *memorymap.Storage
	saveSize := memorymap.SizeSRAM
	if cart != nil {
		rom = memorymap.NewStorageFromData("ROM", cart.Data, 0)
		saveSize = cart.SaveSize()
	} else {
		rom = memorymap.NewStorage("ROM", 4)
	}

	// gamepak timings are set by SetWaitControl() below
	gamepak := func(label string, area memorymap.Area, origin uint32, memtop uint32) *memorymap.Region {
		return &memorymap.Region{
			Label:      label,
			Area:       area,
			Origin:     origin,
			Size:       span(origin, memtop),
			Width:      memorymap.Width16,
			Mutability: memorymap.ReadOnly,
			Storage:    rom,
			Block:      memorymap.GamepakBlock,
		}
	}

	regions := []*memorymap.Region{
		{
			Label:      LabelBIOS,
			Area:       memorymap.BIOS,
			Origin:     memorymap.OriginBIOS,
			Size:       span(memorymap.OriginBIOS, memorymap.MemtopBIOS),
			Width:      memorymap.Width32,
			Timing:     memorymap.UniformTiming(1),
			Mutability: memorymap.ReadOnly,
			Storage:    biosStorage,
		},
		{
			Label:   LabelEWRAM,
			Area:    memorymap.EWRAM,
			Origin:  memorymap.OriginEWRAM,
			Size:    span(memorymap.OriginEWRAM, memorymap.MemtopEWRAM),
			Width:   memorymap.Width16,
			Timing:  memorymap.NewTiming(memorymap.Width16, 3, 3),
			Storage: memorymap.NewStorage(LabelEWRAM, memorymap.SizeEWRAM),
		},
		{
			Label:   LabelIWRAM,
			Area:    memorymap.IWRAM,
			Origin:  memorymap.OriginIWRAM,
			Size:    span(memorymap.OriginIWRAM, memorymap.MemtopIWRAM),
			Width:   memorymap.Width32,
			Timing:  memorymap.UniformTiming(1),
			Storage: memorymap.NewStorage(LabelIWRAM, memorymap.SizeIWRAM),
		},
		{
			Label:   LabelIO,
			Area:    memorymap.IO,
			Origin:  memorymap.OriginIO,
			Size:    span(memorymap.OriginIO, memorymap.MemtopIO),
			Width:   memorymap.Width32,
			Timing:  memorymap.UniformTiming(1),
			Storage: memorymap.NewStorage(LabelIO, memorymap.SizeIO),
		},
		{
			Label:   LabelPalette,
			Area:    memorymap.Palette,
			Origin:  memorymap.OriginPalette,
			Size:    span(memorymap.OriginPalette, memorymap.MemtopPalette),
			Width:   memorymap.Width16,
			Timing:  memorymap.NewTiming(memorymap.Width16, 1, 1),
			Storage: memorymap.NewStorage(LabelPalette, memorymap.SizePalette),
		},
		{
			Label:   LabelVRAM,
			Area:    memorymap.VRAM,
			Origin:  memorymap.OriginVRAM,
			Size:    span(memorymap.OriginVRAM, memorymap.MemtopVRAM),
			Width:   memorymap.Width16,
			Timing:  memorymap.NewTiming(memorymap.Width16, 1, 1),
			Storage: memorymap.NewStorage(LabelVRAM, memorymap.SizeVRAM),
			Mirror:  memorymap.MirrorVRAM,
			Fold: memorymap.Fold{
				From:  memorymap.FoldFromVRAM,
				Shift: memorymap.FoldShiftVRAM,
			},
		},
		{
			Label:   LabelOAM,
			Area:    memorymap.OAM,
			Origin:  memorymap.OriginOAM,
			Size:    span(memorymap.OriginOAM, memorymap.MemtopOAM),
			Width:   memorymap.Width32,
			Timing:  memorymap.UniformTiming(1),
			Storage: memorymap.NewStorage(LabelOAM, memorymap.SizeOAM),
		},
		gamepak(LabelWS0, memorymap.GamepakWS0, memorymap.OriginWS0, memorymap.MemtopWS0),
		gamepak(LabelWS1, memorymap.GamepakWS1, memorymap.OriginWS1, memorymap.MemtopWS1),
		gamepak(LabelWS2, memorymap.GamepakWS2, memorymap.OriginWS2, memorymap.MemtopWS2),
		{
			Label:   LabelSRAM,
			Area:    memorymap.SRAM,
			Origin:  memorymap.OriginSRAM,
			Size:    span(memorymap.OriginSRAM, memorymap.MemtopSRAM),
			Width:   memorymap.Width8,
			Storage: memorymap.NewStorage(LabelSRAM, saveSize),
		},
	}

	b, err := NewBus(env, regions...)
	if err != nil {
		return nil, err
	}

	b.SetWaitControl(uint16(env.Prefs.WaitControl.Int()))

	if env.Prefs.BIOSProtection.Bool() {
		b.Intercepts.Register(biosprotect.Range, PriorityBIOSProtection, biosprotect.New(b))
	}

	if cart != nil && cart.HeaderErr != nil {
		env.Log.Warn(env, "memory", cart.HeaderErr)
	}

	return b, nil
}
