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

// Package intercept is the table of handlers that can observe or override
// accesses to the bus. Handlers are registered against an address Range with
// a priority. When an access is made, handlers whose range overlaps the
// access are consulted in order of descending priority. Handlers with the
// same priority are consulted in the order in which they were registered.
//
// A handler is capability typed: it implements ReadHandler, WriteHandler or
// both. The first handler to return a Result other than NotIntercepted
// decides the outcome of the access.
//
// A handler that returns an error, or that panics, is treated as if it had
// returned NotIntercepted. The failure is logged and the access continues.
//
// Pre-made handlers are in the sub-packages: watch, cheat, biosprotect and
// script.
package intercept
