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

package recorder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/recorder"
	"github.com/jetsetilly/gopheradvance/test"
	"github.com/spf13/afero"
)

func TestParseEntry(t *testing.T) {
	for _, tc := range []struct {
		line  string
		entry recorder.Entry
	}{
		{line: "L32 08000000", entry: recorder.Entry{Op: bus.Load, Width: memorymap.Width32, Address: 0x08000000}},
		{line: "l8 $0e000001 0x080001f0", entry: recorder.Entry{Op: bus.Load, Width: memorymap.Width8, Address: 0x0e000001, HasPC: true, PC: 0x080001f0}},
		{line: "S16 0x04000204 4317", entry: recorder.Entry{Op: bus.Store, Width: memorymap.Width16, Address: 0x04000204, Value: 0x4317}},
		{line: "S32 03000000 ff 08000100", entry: recorder.Entry{Op: bus.Store, Width: memorymap.Width32, Address: 0x03000000, Value: 0xff, HasPC: true, PC: 0x08000100}},
	} {
		e, err := recorder.ParseEntry(tc.line)
		test.DemandSuccess(t, err, tc.line)
		test.ExpectEquality(t, e, tc.entry, tc.line)
	}

	for _, line := range []string{
		"L32",
		"X32 08000000",
		"L12 08000000",
		"L 08000000",
		"L32 nowhere",
		"S32 03000000",
		"S32 03000000 zz",
		"L32 08000000 08000000 08000000",
	} {
		_, err := recorder.ParseEntry(line)
		test.ExpectSuccess(t, errors.Is(err, recorder.ErrSyntax), line)
	}

	// string is in the transcript format
	e, err := recorder.ParseEntry("S32 03000000 ff 08000100")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.String(), "S32 03000000 ff 08000100")
}

const transcript = `
# a comment
# cartridge: test.gba

S32 03000000 12345678
L32 03000000
L16 03000002 08000010

# open bus
L32 10000000
`

func TestPlayback(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	b, err := memory.NewGBA(env, nil, nil)
	test.DemandSuccess(t, err)

	plb, err := recorder.ReadPlayback(strings.NewReader(transcript))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.CartName, "test.gba")
	test.ExpectEquality(t, plb.CartHash, "")
	test.DemandEquality(t, len(plb.Entries), 4)
	test.ExpectEquality(t, plb.Entries[1].Line, 6)

	// no hash in the transcript so any cartridge is fine
	test.ExpectSuccess(t, plb.Validate(nil))

	var results []recorder.Result
	total := plb.Play(b, func(r recorder.Result) {
		results = append(results, r)
	})

	test.DemandEquality(t, len(results), 4)
	test.ExpectEquality(t, results[1].Value, uint32(0x12345678))
	test.ExpectEquality(t, results[2].Value, uint32(0x1234))
	test.ExpectEquality(t, results[1].String(), "L32 03000000                   1 -> 12345678")
	test.ExpectEquality(t, total, 4)
}

func TestPlaybackErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := recorder.NewPlayback(fs, "missing.txt")
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, afero.WriteFile(fs, "bad.txt", []byte("L32 08000000\nL64 08000000\n"), 0o644))
	_, err = recorder.NewPlayback(fs, "bad.txt")
	test.ExpectSuccess(t, errors.Is(err, recorder.ErrSyntax))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 2"))
}

func TestRecorder(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)

	cart, err := cartridge.NewCartridge("test.gba", make([]byte, 0x200))
	test.DemandSuccess(t, err)

	b, err := memory.NewGBA(env, nil, cart)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	rec, err := recorder.NewRecorder(w, cart)
	test.DemandSuccess(t, err)
	b.Intercepts.Register(intercept.Range{Origin: 0x02000000, Memtop: 0x03ffffff}, 0, rec)

	cpu := &bus.Snapshot{ProgramCounter: 0x08000000}
	var cycles int
	b.Store16(cpu, 0x02000002, 0xabcd, &cycles)
	b.Load32(nil, 0x03000001, &cycles)
	b.Load32(nil, 0x08000000, &cycles)
	test.ExpectEquality(t, rec.Len(), 2)

	// the recording can be played back with the same cartridge
	plb, err := recorder.ReadPlayback(strings.NewReader(w.String()))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(plb.Entries), 2)
	test.ExpectEquality(t, plb.Entries[0].String(), "S16 02000002 abcd 08000000")
	test.ExpectEquality(t, plb.Entries[1].String(), "L32 03000000")
	test.ExpectSuccess(t, plb.Validate(cart))

	other, err := cartridge.NewCartridge("other.gba", make([]byte, 0x400))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, errors.Is(plb.Validate(other), recorder.ErrCartridge))
}
