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

package cartridge_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/test"
)

// rom creates ROM data with a valid header
func rom(size int) []byte {
	data := make([]byte, size)

	// B 0x080000c0
	copy(data[0x00:], []byte{0x2e, 0x00, 0x00, 0xea})

	copy(data[0xa0:], "GOPHERTEST")
	copy(data[0xac:], "AGPE")
	copy(data[0xb0:], "01")
	data[0xb2] = 0x96
	data[0xbc] = 2
	data[0xbd] = cartridge.Complement(data)

	return data
}

func TestHeader(t *testing.T) {
	h, err := cartridge.ParseHeader(rom(0x200))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Entry, uint32(0x080000c0))
	test.ExpectEquality(t, h.Title, "GOPHERTEST")
	test.ExpectEquality(t, h.GameCode, "AGPE")
	test.ExpectEquality(t, h.Maker, "01")
	test.ExpectEquality(t, h.Version, uint8(2))
	test.ExpectSuccess(t, h.ComplementOK)
	test.ExpectEquality(t, h.String(), "GOPHERTEST [AGPE] maker 01 v2")
}

func TestBadHeader(t *testing.T) {
	_, err := cartridge.ParseHeader(make([]byte, 0x10))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrHeader))

	data := rom(0x200)
	data[0xb2] = 0
	_, err = cartridge.ParseHeader(data)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrHeader))

	data = rom(0x200)
	data[0xa0] = 'X'
	h, err := cartridge.ParseHeader(data)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, h.ComplementOK)
	test.ExpectEquality(t, h.String(), "XOPHERTEST [AGPE] maker 01 v2 (bad complement)")

	// no branch instruction
	data[0x03] = 0
	h, _ = cartridge.ParseHeader(data)
	test.ExpectEquality(t, h.Entry, uint32(0))
}

func TestBackup(t *testing.T) {
	for _, tc := range []struct {
		sig    string
		backup cartridge.Backup
	}{
		{sig: "", backup: cartridge.BackupNone},
		{sig: "EEPROM_V124", backup: cartridge.BackupEEPROM},
		{sig: "SRAM_V113", backup: cartridge.BackupSRAM},
		{sig: "SRAM_F_V100", backup: cartridge.BackupSRAM},
		{sig: "FLASH_V126", backup: cartridge.BackupFlash},
		{sig: "FLASH512_V131", backup: cartridge.BackupFlash},
		{sig: "FLASH1M_V103", backup: cartridge.BackupFlash1M},
	} {
		data := rom(0x400)
		copy(data[0x300:], tc.sig)
		test.ExpectEquality(t, cartridge.DetectBackup(data), tc.backup, tc.sig)
	}
}

func TestCartridge(t *testing.T) {
	_, err := cartridge.NewCartridge("empty.gba", nil)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrNoData))

	_, err = cartridge.NewCartridge("huge.gba", make([]byte, 0x2000001))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrTooLarge))

	data := rom(0x400)
	copy(data[0x300:], "FLASH1M_V103")
	cart, err := cartridge.NewCartridge("test.gba", data)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.HeaderErr)
	test.ExpectEquality(t, cart.Backup, cartridge.BackupFlash1M)
	test.ExpectEquality(t, cart.SaveSize(), 0x20000)
	test.ExpectEquality(t, len(cart.SHA1), 40)
	test.ExpectInequality(t, cart.CRC32, uint32(0))
	test.ExpectEquality(t, cart.String(), "test.gba: GOPHERTEST [AGPE] maker 01 v2 (backup: Flash 128K)")

	cart, err = cartridge.NewCartridge("bad.gba", make([]byte, 0x10))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, errors.Is(cart.HeaderErr, cartridge.ErrHeader))
	test.ExpectEquality(t, cart.SaveSize(), 0x10000)
}
