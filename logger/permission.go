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

package logger

// Permission decides whether a log request is honoured. Each emulation
// environment is a Permission.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts an ordinary function to the Permission interface.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

// Allow is a Permission that always allows logging.
var Allow Permission = PermissionFunc(func() bool { return true })
