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

package intercept

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// Handle identifies a registered handler. The zero value is never returned
// by Register().
type Handle int

// Info describes a registered handler.
type Info struct {
	Handle   Handle
	Label    string
	Range    Range
	Priority int
	Read     bool
	Write    bool
}

func (i Info) String() string {
	var c string
	switch {
	case i.Read && i.Write:
		c = "RW"
	case i.Read:
		c = "R"
	default:
		c = "W"
	}
	return fmt.Sprintf("#%d %s [%s] priority %d (%s)", i.Handle, i.Range, c, i.Priority, i.Label)
}

type entry struct {
	Info
	read  ReadHandler
	write WriteHandler
}

// Table of intercept handlers. A Table is not safe for concurrent use. Each
// bus instance has its own Table.
type Table struct {
	env *environment.Environment

	// sorted by descending priority and then by registration order. the
	// slice is never modified in place: Register() and Unregister() replace
	// it, so a dispatch in progress is not disturbed by a handler that
	// registers or unregisters handlers
	entries []*entry

	// number of handlers with a range that touches each page of the address
	// space. dispatch to a page with a count of zero returns immediately
	pages [memorymap.NumPages]int

	next Handle
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable(env *environment.Environment) *Table {
	return &Table{env: env}
}

func label(h any) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}

// Register a handler for the address range with the given priority. The
// handler must implement ReadHandler, WriteHandler or both. Panics if the
// handler implements neither or if the range is inverted.
//
// Registering a handler again after unregistering it, with the same range
// and priority, places it after any handler already registered at that
// priority.
func (t *Table) Register(rng Range, priority int, handler any) Handle {
	if rng.Memtop < rng.Origin {
		panic(fmt.Sprintf("intercept: inverted range (%s)", rng))
	}

	e := &entry{}
	e.read, e.Read = handler.(ReadHandler)
	e.write, e.Write = handler.(WriteHandler)
	if !e.Read && !e.Write {
		panic(fmt.Sprintf("intercept: %T is neither a ReadHandler nor a WriteHandler", handler))
	}

	t.next++
	e.Handle = t.next
	e.Label = label(handler)
	e.Range = rng
	e.Priority = priority

	// insert after every entry with a greater or equal priority
	i := 0
	for i < len(t.entries) && t.entries[i].Priority >= priority {
		i++
	}
	if i == len(t.entries) {
		// appending does not touch the elements of an existing slice
		t.entries = append(t.entries, e)
	} else {
		entries := make([]*entry, 0, len(t.entries)+1)
		entries = append(entries, t.entries[:i]...)
		entries = append(entries, e)
		t.entries = append(entries, t.entries[i:]...)
	}

	for p := rng.Origin >> memorymap.PageShift; p <= rng.Memtop>>memorymap.PageShift; p++ {
		t.pages[p]++
	}

	return e.Handle
}

// Unregister the handler. Returns false if the handle is not registered.
func (t *Table) Unregister(h Handle) bool {
	for i, e := range t.entries {
		if e.Handle == h {
			entries := make([]*entry, 0, len(t.entries)-1)
			entries = append(entries, t.entries[:i]...)
			t.entries = append(entries, t.entries[i+1:]...)
			for p := e.Range.Origin >> memorymap.PageShift; p <= e.Range.Memtop>>memorymap.PageShift; p++ {
				t.pages[p]--
			}
			return true
		}
	}
	return false
}

// Clear removes all handlers.
func (t *Table) Clear() {
	t.entries = nil
	t.pages = [memorymap.NumPages]int{}
}

// Len returns the number of registered handlers.
func (t *Table) Len() int {
	return len(t.entries)
}

// List returns information about each handler in dispatch order.
func (t *Table) List() []Info {
	l := make([]Info, 0, len(t.entries))
	for _, e := range t.entries {
		l = append(l, e.Info)
	}
	return l
}

// Active returns true if any handler has a range that touches the page
// containing the address.
func (t *Table) Active(address uint32) bool {
	return t.pages[address>>memorymap.PageShift] > 0
}

// Dispatch the request to the handlers whose range overlaps the access. The
// result of the first handler to intercept the access is returned. If no
// handler intercepts the access then a result of NotIntercepted is returned.
func (t *Table) Dispatch(req bus.Request, cycles *int) Result {
	if t.pages[req.Address>>memorymap.PageShift] == 0 {
		return Pass
	}

	n := req.Width.Bytes()

	for _, e := range t.entries {
		if !e.Range.Overlaps(req.Address, n) {
			continue
		}

		var r Result
		var err error

		switch req.Op {
		case bus.Load:
			if e.read == nil {
				continue
			}
			r, err = callRead(e.read, req, cycles)
		case bus.Store:
			if e.write == nil {
				continue
			}
			r, err = callWrite(e.write, req, cycles)
		}

		if err != nil {
			t.env.Log.Warnf(t.env, "intercept", "%s: %s: %v", e.Label, req, err)
			continue
		}

		if r.Intercepted() {
			return r
		}
	}

	return Pass
}

func callRead(h ReadHandler, req bus.Request, cycles *int) (r Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = Pass
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return h.InterceptRead(req, cycles)
}

func callWrite(h WriteHandler, req bus.Request, cycles *int) (r Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = Pass
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return h.InterceptWrite(req, cycles)
}
