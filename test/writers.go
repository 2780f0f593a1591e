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

package test

import (
	"strings"
)

// CompareWriter captures output so that it can be checked against expected
// strings. It implements io.Writer.
type CompareWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare returns true if the captured output is exactly the string.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.buffer.String() == s
}

// Contains returns true if the captured output contains the substring.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.buffer.String(), s)
}

// Count returns the number of lines of output that contain the substring.
func (tw *CompareWriter) Count(s string) int {
	var n int
	for _, l := range tw.Lines() {
		if strings.Contains(l, s) {
			n++
		}
	}
	return n
}

// Lines returns the captured output split into lines. A trailing newline
// does not produce an empty final line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
