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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions are the same except that they stop the test
// with t.Fatalf().
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. Currently supported types are bool and error. It is worth
// describing how the nil value is handled because it is not obvious: nil is
// considered a success because that is how errors work in Go.
//
// The CompareWriter type implements the io.Writer interface and
// should be used to capture output, for example the output of a logger.
package test
