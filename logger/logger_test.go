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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Debug(logger.Allow, "bus", "open bus read")
	log.Debug(logger.Allow, "bus", "open bus read")
	log.Debug(logger.Allow, "bus", "open bus read")
	test.ExpectEquality(t, log.Len(), 1)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "bus: open bus read (repeat x3)\n")

	// same text at a different severity is a new entry
	log.Warn(logger.Allow, "bus", "open bus read")
	test.ExpectEquality(t, log.Len(), 2)
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	log.Logf(logger.Allow, "tag", "%d", 1)
	log.Logf(logger.Allow, "tag", "%d", 2)
	log.Logf(logger.Allow, "tag", "%d", 3)
	test.ExpectEquality(t, log.Len(), 2)

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\n")
}

func TestSeverity(t *testing.T) {
	log := logger.NewLogger(100)
	log.Debug(logger.Allow, "tag", "low")
	log.Log(logger.Allow, "tag", "normal")
	log.Warn(logger.Allow, "tag", "high")

	w := &strings.Builder{}
	log.WriteSeverity(w, logger.Normal)
	test.ExpectEquality(t, w.String(), "tag: normal\ntag: high\n")

	w.Reset()
	log.WriteSeverity(w, logger.High)
	test.ExpectEquality(t, w.String(), "tag: high\n")

	var sevs []logger.Severity
	log.BorrowLog(func(e []logger.Entry) {
		for i := range e {
			sevs = append(sevs, e[i].Severity)
		}
	})
	test.DemandEquality(t, len(sevs), 3)
	test.ExpectEquality(t, sevs[0], logger.Low)
	test.ExpectEquality(t, sevs[2], logger.High)
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var allow bool
	perm := logger.PermissionFunc(func() bool { return allow })

	log.Log(perm, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	allow = true
	log.Log(perm, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

// the Log() function explicitly handles error and Stringer types. other types
// are formatted with the %v verb
func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}
	log.SetEcho(w)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectSuccess(t, w.Compare("tag: echoed\n"))

	// colorizer tints high severity entries
	w.Clear()
	log.SetEcho(logger.NewColorizer(w))
	log.Warn(logger.Allow, "tag", "warning")
	test.ExpectSuccess(t, w.Contains("tag: warning\n"))
	test.ExpectSuccess(t, w.Contains("\033[31m"))

	w.Clear()
	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "")
}
