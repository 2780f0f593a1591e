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

// Package logger is the logging system for GopherAdvance. A Logger is a
// fixed length list of entries, each entry having a tag, a detail string and
// a Severity. Every log request carries a Permission which decides whether
// the entry is made at all.
//
// Each emulation environment owns its own Logger. The package level functions
// write to a single central Logger which is used when there is no environment
// to hand (eg. during program start up).
package logger

import (
	"io"
)

// maximum number of entries in the central logger.
const maxCentral = 256

var central *Logger

func init() {
	central = NewLogger(maxCentral)
}

// Central returns the central logger.
func Central() *Logger {
	return central
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, pattern string, args ...any) {
	central.Logf(perm, tag, pattern, args...)
}

// Warnf adds a formatted High severity entry to the central logger.
func Warnf(perm Permission, tag string, pattern string, args ...any) {
	central.Warnf(perm, tag, pattern, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints log entries of the central logger to io.Writer.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
