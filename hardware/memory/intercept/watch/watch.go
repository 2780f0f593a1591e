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

// Package watch implements an intercept handler that observes accesses to an
// address range. A watch never changes the outcome of an access. Every
// matching access is logged and recorded as a Hit.
//
// A watch only sees an access if no higher priority handler intercepted it
// first. For example, BIOS reads made from outside the BIOS are answered by
// the BIOS protection handler and a watch will not see them unless it is
// registered with a higher priority (memory.PriorityWatch).
package watch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
)

// Event is the type of access that a watch will match.
type Event int

// List of valid Event values.
const (
	Any Event = iota
	Read
	Write
)

func (ev Event) String() string {
	switch ev {
	case Read:
		return "read-only"
	case Write:
		return "write-only"
	}
	return "any"
}

// Watcher describes the accesses that a watch is interested in.
type Watcher struct {
	Range intercept.Range
	Event Event

	// whether to watch for a specific value. the value of a load is not
	// known when the access is intercepted so value matching only applies
	// to stores
	MatchValue bool
	Value      uint32
}

func (wtr Watcher) String() string {
	s := fmt.Sprintf("%s %s", wtr.Range, wtr.Event)
	if wtr.MatchValue {
		s = fmt.Sprintf("%s (value=%#x)", s, wtr.Value)
	}
	return s
}

// Parse a watch description. The format is:
//
//	[READ|WRITE] address[-memtop] [value]
//
// Numbers are hexadecimal if they are prefixed with 0x or $.
func Parse(s string) (Watcher, error) {
	var wtr Watcher

	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return wtr, fmt.Errorf("watch: address required")
	}

	switch strings.ToUpper(tokens[0]) {
	case "READ":
		wtr.Event = Read
		tokens = tokens[1:]
	case "WRITE":
		wtr.Event = Write
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return wtr, fmt.Errorf("watch: address required")
	}
	if len(tokens) > 2 {
		return wtr, fmt.Errorf("watch: too many arguments")
	}

	origin, memtop, ranged := strings.Cut(tokens[0], "-")
	a, err := parseNumber(origin)
	if err != nil {
		return wtr, fmt.Errorf("watch: %w", err)
	}
	wtr.Range = intercept.Address(a)
	if ranged {
		m, err := parseNumber(memtop)
		if err != nil {
			return wtr, fmt.Errorf("watch: %w", err)
		}
		if m < a {
			return wtr, fmt.Errorf("watch: inverted range")
		}
		wtr.Range.Memtop = m
	}

	if len(tokens) == 2 {
		v, err := parseNumber(tokens[1])
		if err != nil {
			return wtr, fmt.Errorf("watch: %w", err)
		}
		wtr.MatchValue = true
		wtr.Value = v
	}

	return wtr, nil
}

func parseNumber(s string) (uint32, error) {
	s = strings.Replace(s, "$", "0x", 1)
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// Hit is a single access that matched a watch.
type Hit struct {
	Request bus.Request
	PC      uint32
}

func (h Hit) String() string {
	return fmt.Sprintf("%s (PC: %08x)", h.Request, h.PC)
}

// maximum number of hits recorded by a watch
const maxHits = 1000

// Watch is an intercept handler. It implements both intercept.ReadHandler
// and intercept.WriteHandler.
type Watch struct {
	env *environment.Environment
	wtr Watcher

	hits []Hit
}

// New is the preferred method of initialisation for the Watch type.
func New(env *environment.Environment, wtr Watcher) *Watch {
	return &Watch{
		env: env,
		wtr: wtr,
	}
}

func (w *Watch) String() string {
	return fmt.Sprintf("watch %s", w.wtr)
}

// Range returns the address range that the watch should be registered with.
func (w *Watch) Range() intercept.Range {
	return w.wtr.Range
}

func (w *Watch) hit(req bus.Request) {
	pc := req.PC()

	// requests are never retained with the CPU state
	req.CPU = nil
	h := Hit{Request: req, PC: pc}

	if len(w.hits) >= maxHits {
		w.hits = w.hits[1:]
	}
	w.hits = append(w.hits, h)

	w.env.Log.Logf(w.env, "watch", "%s", h)
}

// InterceptRead implements the intercept.ReadHandler interface.
func (w *Watch) InterceptRead(req bus.Request, _ *int) (intercept.Result, error) {
	if w.wtr.Event == Write || w.wtr.MatchValue {
		return intercept.Pass, nil
	}
	w.hit(req)
	return intercept.Pass, nil
}

// InterceptWrite implements the intercept.WriteHandler interface.
func (w *Watch) InterceptWrite(req bus.Request, _ *int) (intercept.Result, error) {
	if w.wtr.Event == Read {
		return intercept.Pass, nil
	}
	if w.wtr.MatchValue && req.Value != w.wtr.Value {
		return intercept.Pass, nil
	}
	w.hit(req)
	return intercept.Pass, nil
}

// Hits returns a copy of the recorded hits, oldest first.
func (w *Watch) Hits() []Hit {
	return append([]Hit(nil), w.hits...)
}

// Clear the recorded hits.
func (w *Watch) Clear() {
	w.hits = w.hits[:0]
}
