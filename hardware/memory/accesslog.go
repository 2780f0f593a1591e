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

package memory

// accessLog limits logging of accesses that can happen on every instruction.
// only the first access after a flush is logged in full. later accesses are
// counted and the count is logged by Bus.FlushLog()
type accessLog struct {
	logged   bool
	unlogged int
}

// note an access. returns true if the access should be logged in full
func (al *accessLog) note() bool {
	if al.logged {
		al.unlogged++
		return false
	}
	al.logged = true
	return true
}

// returns the number of accesses that were not logged and resets the log
func (al *accessLog) flush() int {
	n := al.unlogged
	al.logged = false
	al.unlogged = 0
	return n
}

// FlushLog adds an entry to the log for each type of access that has occurred
// more often than it has been logged. The next access of each type will be
// logged in full.
func (b *Bus) FlushLog() {
	if n := b.openBusLog.flush(); n > 0 {
		b.env.Log.Debugf(b.env, "memory", "open bus: %d further accesses", n)
	}
	if n := b.readOnlyLog.flush(); n > 0 {
		b.env.Log.Debugf(b.env, "memory", "write to read-only region: %d further accesses", n)
	}
}
