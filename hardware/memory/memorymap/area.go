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

// Area represents the different areas of memory.
type Area int

// List of valid Area values. Undefined is the area of the open bus region.
const (
	Undefined Area = iota
	BIOS
	EWRAM
	IWRAM
	IO
	Palette
	VRAM
	OAM
	GamepakWS0
	GamepakWS1
	GamepakWS2
	SRAM
	Custom
)

func (a Area) String() string {
	switch a {
	case Undefined:
		return "Open Bus"
	case BIOS:
		return "BIOS"
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "I/O"
	case Palette:
		return "Palette"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case GamepakWS0:
		return "Gamepak WS0"
	case GamepakWS1:
		return "Gamepak WS1"
	case GamepakWS2:
		return "Gamepak WS2"
	case SRAM:
		return "SRAM"
	case Custom:
		return "Custom"
	}
	return "unknown"
}

// IsGamepakROM returns true if the area is one of the three wait state
// windows of the gamepak ROM.
func (a Area) IsGamepakROM() bool {
	return a == GamepakWS0 || a == GamepakWS1 || a == GamepakWS2
}

// The origin and memtop for each area of the GBA address space. Areas are
// mirrored throughout the whole of their memtop range. The size of the backing
// storage for each area is given separately.
const (
	OriginBIOS    = uint32(0x00000000)
	MemtopBIOS    = uint32(0x00003fff)
	OriginEWRAM   = uint32(0x02000000)
	MemtopEWRAM   = uint32(0x02ffffff)
	OriginIWRAM   = uint32(0x03000000)
	MemtopIWRAM   = uint32(0x03ffffff)
	OriginIO      = uint32(0x04000000)
	MemtopIO      = uint32(0x040003ff)
	OriginPalette = uint32(0x05000000)
	MemtopPalette = uint32(0x05ffffff)
	OriginVRAM    = uint32(0x06000000)
	MemtopVRAM    = uint32(0x06ffffff)
	OriginOAM     = uint32(0x07000000)
	MemtopOAM     = uint32(0x07ffffff)
	OriginWS0     = uint32(0x08000000)
	MemtopWS0     = uint32(0x09ffffff)
	OriginWS1     = uint32(0x0a000000)
	MemtopWS1     = uint32(0x0bffffff)
	OriginWS2     = uint32(0x0c000000)
	MemtopWS2     = uint32(0x0dffffff)
	OriginSRAM    = uint32(0x0e000000)
	MemtopSRAM    = uint32(0x0fffffff)
)

// Sizes of the backing storage for each area.
const (
	SizeBIOS    = 0x4000
	SizeEWRAM   = 0x40000
	SizeIWRAM   = 0x8000
	SizeIO      = 0x400
	SizePalette = 0x400
	SizeVRAM    = 0x18000
	SizeOAM     = 0x400
	SizeSRAM    = 0x10000

	// the largest possible gamepak ROM
	MaxSizeROM = 0x2000000
)

// VRAM is 96KiB mirrored every 128KiB. The upper 32KiB of each 128KiB
// window is a mirror of the 32KiB directly below it.
const (
	MirrorVRAM    = uint32(0x1ffff)
	FoldFromVRAM  = uint32(0x18000)
	FoldShiftVRAM = uint32(0x8000)
)

// GamepakBlock is the size of the gamepak ROM block. The first access to a new
// block is always non-sequential.
const GamepakBlock = uint32(0x20000)

// PageShift gives the size of a page of the address space. Pages are used for
// fast rejection of addresses by the intercept table.
const (
	PageShift = 24
	NumPages  = 1 << (32 - PageShift)
)
