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

import (
	"io"
)

// ANSI pens used by the Colorizer
const (
	penNormal = "\033[0m"
	penDim    = "\033[2m"
	penRed    = "\033[31m"
)

// Colorizer applies basic coloring rules to logging output. When used as the
// echo writer of a Logger, entries are tinted according to their severity.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. Output is written without any
// coloring.
func (c Colorizer) Write(p []byte) (n int, err error) {
	return c.out.Write(p)
}

func (c Colorizer) writeSeverity(sev Severity, s string) {
	switch sev {
	case Low:
		io.WriteString(c.out, penDim)
	case High:
		io.WriteString(c.out, penRed)
	default:
		io.WriteString(c.out, s)
		return
	}
	io.WriteString(c.out, s)
	io.WriteString(c.out, penNormal)
}
