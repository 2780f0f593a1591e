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

package intercept

import "fmt"

// ResultKind indicates how a handler has dealt with an access.
type ResultKind int

// List of valid ResultKind values.
const (
	// the handler has not intercepted the access. the next handler will be
	// consulted
	NotIntercepted ResultKind = iota

	// the handler has supplied the value of the access. for loads this is
	// the value returned to the CPU. for stores this is the value written to
	// storage. the access is charged normally
	Value

	// the handler has completed the access. storage is not touched and no
	// cycles are charged. the value is returned to the CPU for loads
	Suppressed
)

func (k ResultKind) String() string {
	switch k {
	case NotIntercepted:
		return "not intercepted"
	case Value:
		return "value"
	case Suppressed:
		return "suppressed"
	}
	return "unknown"
}

// Result is returned by intercept handlers.
type Result struct {
	Kind  ResultKind
	Value uint32
}

// Pass is the result returned by a handler that does not intercept the
// access.
var Pass = Result{Kind: NotIntercepted}

// Override returns a Result of the Value kind.
func Override(v uint32) Result {
	return Result{Kind: Value, Value: v}
}

// Suppress returns a Result of the Suppressed kind.
func Suppress(v uint32) Result {
	return Result{Kind: Suppressed, Value: v}
}

// Intercepted returns true if the result is not NotIntercepted.
func (r Result) Intercepted() bool {
	return r.Kind != NotIntercepted
}

func (r Result) String() string {
	if r.Kind == NotIntercepted {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s %#x", r.Kind, r.Value)
}
