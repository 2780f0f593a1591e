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
	"crypto/sha1"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// ErrNoData is returned by NewCartridge() when there is no ROM data.
var ErrNoData = errors.New("no ROM data")

// ErrTooLarge is returned by NewCartridge() when the ROM data is larger than
// the gamepak address space.
var ErrTooLarge = errors.New("ROM data is too large")

// Cartridge is a GBA gamepak.
type Cartridge struct {
	Filename string

	// the ROM data
	Data []byte

	Header Header

	// the error returned by ParseHeader(). the header is still filled in as
	// much as possible
	HeaderErr error

	Backup Backup

	SHA1  string
	CRC32 uint32
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data is not copied.
func NewCartridge(filename string, data []byte) (*Cartridge, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cartridge: %w", ErrNoData)
	}
	if len(data) > memorymap.MaxSizeROM {
		return nil, fmt.Errorf("cartridge: %w (%d bytes)", ErrTooLarge, len(data))
	}

	cart := &Cartridge{
		Filename: filename,
		Data:     data,
		Backup:   DetectBackup(data),
		SHA1:     fmt.Sprintf("%x", sha1.Sum(data)),
		CRC32:    crc32.ChecksumIEEE(data),
	}
	cart.Header, cart.HeaderErr = ParseHeader(data)

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s: %s (backup: %s)", cart.Filename, cart.Header, cart.Backup)
}

// SaveSize returns the size of the storage for the SRAM area. The SRAM area
// is always mapped. If the backup type is unknown (or is EEPROM, which is
// not in the SRAM area) then the default size is used.
func (cart *Cartridge) SaveSize() int {
	switch cart.Backup {
	case BackupSRAM, BackupFlash, BackupFlash1M:
		return max(cart.Backup.Size(), memorymap.SizeSRAM)
	}
	return memorymap.SizeSRAM
}
