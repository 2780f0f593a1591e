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

package watch_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept/watch"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestParse(t *testing.T) {
	w, err := watch.Parse("0x03000010")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.Range, intercept.Address(0x03000010))
	test.ExpectEquality(t, w.Event, watch.Any)
	test.ExpectFailure(t, w.MatchValue)

	w, err = watch.Parse("write $02000000-$0200ffff 0xff")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.Range, intercept.Range{Origin: 0x02000000, Memtop: 0x0200ffff})
	test.ExpectEquality(t, w.Event, watch.Write)
	test.ExpectSuccess(t, w.MatchValue)
	test.ExpectEquality(t, w.Value, uint32(0xff))
	test.ExpectEquality(t, w.String(), "02000000 -> 0200ffff write-only (value=0xff)")

	for _, s := range []string{"", "READ", "foo", "0x100-0x50", "0x100 1 2", "0x100 bar"} {
		_, err = watch.Parse(s)
		test.ExpectFailure(t, err, s)
	}
}

func TestWatch(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)

	wtr, err := watch.Parse("0x03000010 0x42")
	test.DemandSuccess(t, err)
	w := watch.New(env, wtr)

	tbl := intercept.NewTable(env)
	tbl.Register(w.Range(), 0, w)

	cpu := &bus.Snapshot{ProgramCounter: 0x08000200}
	req := bus.Request{Address: 0x03000010, Width: memorymap.Width32, Op: bus.Store, Value: 0x41, CPU: cpu}

	var cycles int
	test.ExpectEquality(t, tbl.Dispatch(req, &cycles), intercept.Pass)
	test.ExpectEquality(t, len(w.Hits()), 0)

	req.Value = 0x42
	test.ExpectEquality(t, tbl.Dispatch(req, &cycles), intercept.Pass)
	test.DemandEquality(t, len(w.Hits()), 1)
	test.ExpectEquality(t, w.Hits()[0].PC, uint32(0x08000200))
	test.ExpectEquality(t, w.Hits()[0].String(), "store 32bit 03000010 = 0x42 (PC: 08000200)")
	test.ExpectEquality(t, env.Log.Len(), 1)

	// loads are not matched when a value is being watched
	req.Op = bus.Load
	tbl.Dispatch(req, &cycles)
	test.ExpectEquality(t, len(w.Hits()), 1)

	w.Clear()
	test.ExpectEquality(t, len(w.Hits()), 0)
	test.ExpectEquality(t, cycles, 0)
}

func TestReadWatch(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)

	w := watch.New(env, watch.Watcher{Range: intercept.Address(0x03000012), Event: watch.Read})

	var cycles int
	req := bus.Request{Address: 0x03000010, Width: memorymap.Width32, Op: bus.Load}
	w.InterceptRead(req, &cycles)
	req.Op = bus.Store
	w.InterceptWrite(req, &cycles)
	test.DemandEquality(t, len(w.Hits()), 1)
	test.ExpectEquality(t, w.Hits()[0].Request.Op, bus.Load)
}
