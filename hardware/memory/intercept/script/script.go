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

// Package script implements intercept handlers written in Lua. A script can
// define either or both of the following functions:
//
//	function on_read(address, width)
//	function on_write(address, width, value)
//
// The functions return nothing (or nil) to let the access continue, a number
// to override the value of the access, or a number and true to suppress the
// access. A suppressed access does not touch memory and costs nothing unless
// the script charges cycles itself with add_cycles().
//
// Scripts have access to the following functions:
//
//	add_cycles(n)       add n cycles to the cycle counter of the access
//	log(message)        add an entry to the emulation's log
//	pc()                the program counter of the CPU making the access
//
// A script can limit the addresses it is interested in by defining a table
// called intercept:
//
//	intercept = { origin = 0x04000000, memtop = 0x040003ff, priority = 5 }
//
// Without the table a script is registered for the whole address space with
// a priority of zero.
package script

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
)

// names of the lua functions and tables
const (
	fnRead    = "on_read"
	fnWrite   = "on_write"
	tblConfig = "intercept"
)

// ErrScript is returned when a script cannot be loaded or when it returns an
// unexpected value.
var ErrScript = errors.New("script")

// Script is an intercept handler. It implements both intercept.ReadHandler
// and intercept.WriteHandler.
type Script struct {
	env  *environment.Environment
	name string

	L *lua.LState

	read  lua.LValue
	write lua.LValue

	rng      intercept.Range
	priority int

	// the cycle counter and request of the current access. only valid
	// during a call to the script
	cycles *int
	req    bus.Request
}

// NewFromFile loads the script from the file system.
func NewFromFile(env *environment.Environment, fs afero.Fs, path string) (*Script, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	return New(env, filepath.Base(path), string(b))
}

// New is the preferred method of initialisation for the Script type.
func New(env *environment.Environment, name string, source string) (*Script, error) {
	s := &Script{
		env:  env,
		name: name,
		L:    lua.NewState(),
		rng:  intercept.Range{Origin: 0, Memtop: 0xffffffff},
	}

	s.L.SetGlobal("add_cycles", s.L.NewFunction(s.addCycles))
	s.L.SetGlobal("log", s.L.NewFunction(s.log))
	s.L.SetGlobal("pc", s.L.NewFunction(s.pc))

	if err := s.L.DoString(source); err != nil {
		s.L.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, name, err)
	}

	if fn, ok := s.L.GetGlobal(fnRead).(*lua.LFunction); ok {
		s.read = fn
	}
	if fn, ok := s.L.GetGlobal(fnWrite).(*lua.LFunction); ok {
		s.write = fn
	}
	if s.read == nil && s.write == nil {
		s.L.Close()
		return nil, fmt.Errorf("%w: %s: neither %s nor %s is defined", ErrScript, name, fnRead, fnWrite)
	}

	if err := s.configure(); err != nil {
		s.L.Close()
		return nil, err
	}

	return s, nil
}

// read the optional intercept table
func (s *Script) configure() error {
	tbl, ok := s.L.GetGlobal(tblConfig).(*lua.LTable)
	if !ok {
		return nil
	}

	field := func(key string, v *uint32) error {
		switch n := tbl.RawGetString(key).(type) {
		case lua.LNumber:
			if n < 0 || n > 0xffffffff {
				return fmt.Errorf("%w: %s: %s.%s out of range", ErrScript, s.name, tblConfig, key)
			}
			*v = uint32(n)
		case *lua.LNilType:
		default:
			return fmt.Errorf("%w: %s: %s.%s must be a number", ErrScript, s.name, tblConfig, key)
		}
		return nil
	}

	if err := field("origin", &s.rng.Origin); err != nil {
		return err
	}
	if err := field("memtop", &s.rng.Memtop); err != nil {
		return err
	}
	if s.rng.Memtop < s.rng.Origin {
		return fmt.Errorf("%w: %s: inverted range", ErrScript, s.name)
	}

	if n, ok := tbl.RawGetString("priority").(lua.LNumber); ok {
		s.priority = int(n)
	}

	return nil
}

func (s *Script) String() string {
	return fmt.Sprintf("script %s", s.name)
}

// Range returns the address range that the script should be registered with.
func (s *Script) Range() intercept.Range {
	return s.rng
}

// Priority returns the priority that the script should be registered with.
func (s *Script) Priority() int {
	return s.priority
}

// Close the Lua state. The script must not be used after it is closed.
func (s *Script) Close() {
	s.L.Close()
}

func (s *Script) addCycles(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 {
		L.ArgError(1, "cycles cannot be negative")
		return 0
	}
	if s.cycles != nil {
		*s.cycles += n
	}
	return 0
}

func (s *Script) log(L *lua.LState) int {
	s.env.Log.Log(s.env, s.name, L.CheckString(1))
	return 0
}

func (s *Script) pc(L *lua.LState) int {
	L.Push(lua.LNumber(s.req.PC()))
	return 1
}

func (s *Script) call(fn lua.LValue, req bus.Request, cycles *int, args ...lua.LValue) (intercept.Result, error) {
	s.cycles = cycles
	s.req = req
	defer func() {
		s.cycles = nil
		s.req = bus.Request{}
	}()

	err := s.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    2,
		Protect: true,
	}, args...)
	if err != nil {
		return intercept.Pass, err
	}

	v := s.L.Get(-2)
	suppress := lua.LVAsBool(s.L.Get(-1))
	s.L.Pop(2)

	switch v := v.(type) {
	case *lua.LNilType:
		return intercept.Pass, nil
	case lua.LNumber:
		if suppress {
			return intercept.Suppress(uint32(int64(v))), nil
		}
		return intercept.Override(uint32(int64(v))), nil
	}

	return intercept.Pass, fmt.Errorf("%w: unexpected return value (%s)", ErrScript, v.Type())
}

// InterceptRead implements the intercept.ReadHandler interface.
func (s *Script) InterceptRead(req bus.Request, cycles *int) (intercept.Result, error) {
	if s.read == nil {
		return intercept.Pass, nil
	}
	return s.call(s.read, req, cycles, lua.LNumber(req.Address), lua.LNumber(req.Width))
}

// InterceptWrite implements the intercept.WriteHandler interface.
func (s *Script) InterceptWrite(req bus.Request, cycles *int) (intercept.Result, error) {
	if s.write == nil {
		return intercept.Pass, nil
	}
	return s.call(s.write, req, cycles, lua.LNumber(req.Address), lua.LNumber(req.Width), lua.LNumber(req.Value))
}
