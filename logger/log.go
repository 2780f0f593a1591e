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
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Severity of a log entry. Most entries are Normal. Low severity entries are
// for events that happen often and are not a concern in themselves (open bus
// reads for example). High severity entries indicate that something has gone
// wrong but that execution has continued.
type Severity int

// List of valid Severity values.
const (
	Low Severity = iota
	Normal
	High
)

func (s Severity) String() string {
	switch s {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case High:
		return "high"
	}
	return "unknown"
}

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Severity  Severity
	Tag       string
	Detail    string
	Repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a fixed length list of log entries. Consecutive entries with the
// same tag, detail and severity are folded into one entry with a repeat count.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// entries are echoed to this writer as they are logged
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// the detail argument to Log() can be of any type. types that have a
// meaningful string representation are handled explicitly, everything else is
// formatted with the %v verb
func detailString(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", detail)
}

func (l *Logger) log(perm Permission, sev Severity, tag string, detail string) {
	if !perm.AllowLogging() {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Tag == tag && e.Detail == detail && e.Severity == sev {
		e.Repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{
			Timestamp: time.Now(),
			Severity:  sev,
			Tag:       tag,
			Detail:    detail,
		})
		e = &l.entries[len(l.entries)-1]
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		if c, ok := l.echo.(Colorizer); ok {
			c.writeSeverity(e.Severity, e.String())
		} else {
			io.WriteString(l.echo, e.String())
		}
	}
}

// Log adds an entry of Normal severity.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	l.log(perm, Normal, tag, detailString(detail))
}

// Logf adds a formatted entry of Normal severity.
func (l *Logger) Logf(perm Permission, tag string, pattern string, args ...any) {
	l.log(perm, Normal, tag, fmt.Sprintf(pattern, args...))
}

// Debug adds an entry of Low severity.
func (l *Logger) Debug(perm Permission, tag string, detail any) {
	l.log(perm, Low, tag, detailString(detail))
}

// Debugf adds a formatted entry of Low severity.
func (l *Logger) Debugf(perm Permission, tag string, pattern string, args ...any) {
	l.log(perm, Low, tag, fmt.Sprintf(pattern, args...))
}

// Warn adds an entry of High severity.
func (l *Logger) Warn(perm Permission, tag string, detail any) {
	l.log(perm, High, tag, detailString(detail))
}

// Warnf adds a formatted entry of High severity.
func (l *Logger) Warnf(perm Permission, tag string, pattern string, args ...any) {
	l.log(perm, High, tag, fmt.Sprintf(pattern, args...))
}

// Clear all entries.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Len returns the number of entries in the log. Repeated entries count as one.
func (l *Logger) Len() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return len(l.entries)
}

// Write contents of log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.WriteSeverity(output, Low)
}

// WriteSeverity writes only those entries of the specified severity or
// higher.
func (l *Logger) WriteSeverity(output io.Writer, sev Severity) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for i := range l.entries {
		if l.entries[i].Severity >= sev {
			io.WriteString(output, l.entries[i].String())
		}
	}
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints entries to io.Writer as they are logged. A nil value turns
// echoing off.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries. The entries must not be retained after the function
// has returned.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
