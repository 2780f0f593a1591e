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

import "bytes"

// Backup is the type of save memory in the gamepak.
type Backup int

// List of valid Backup values.
const (
	BackupNone Backup = iota
	BackupEEPROM
	BackupSRAM
	BackupFlash
	BackupFlash1M
)

func (b Backup) String() string {
	switch b {
	case BackupNone:
		return "none"
	case BackupEEPROM:
		return "EEPROM"
	case BackupSRAM:
		return "SRAM"
	case BackupFlash:
		return "Flash 64K"
	case BackupFlash1M:
		return "Flash 128K"
	}
	return "unknown"
}

// Size returns the size of the backup memory in bytes.
func (b Backup) Size() int {
	switch b {
	case BackupEEPROM:
		return 0x2000
	case BackupSRAM:
		return 0x8000
	case BackupFlash:
		return 0x10000
	case BackupFlash1M:
		return 0x20000
	}
	return 0
}

// signatures left in the ROM by the save libraries. the longer signatures
// must be checked before the shorter signatures that they contain
var signatures = []struct {
	sig    []byte
	backup Backup
}{
	{sig: []byte("EEPROM_V"), backup: BackupEEPROM},
	{sig: []byte("SRAM_F_V"), backup: BackupSRAM},
	{sig: []byte("SRAM_V"), backup: BackupSRAM},
	{sig: []byte("FLASH1M_V"), backup: BackupFlash1M},
	{sig: []byte("FLASH512_V"), backup: BackupFlash},
	{sig: []byte("FLASH_V"), backup: BackupFlash},
}

// DetectBackup searches the ROM data for a save library signature.
func DetectBackup(data []byte) Backup {
	for _, s := range signatures {
		if bytes.Contains(data, s.sig) {
			return s.backup
		}
	}
	return BackupNone
}
