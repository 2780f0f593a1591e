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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Overrides are preference values specified on the command line. The
// format of the command line string is:
//
//	key::value; key::value
//
// Whitespace around keys and values is ignored. Malformed pairs are skipped.
type Overrides map[string]string

// ParseOverrides divides the command line string into key/value pairs.
func ParseOverrides(s string) Overrides {
	o := make(Overrides)
	for _, p := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		o[k] = strings.TrimSpace(v)
	}
	return o
}

func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, o[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// Override applies command line values to the registered preferences. Values
// set this way are not saved unless Save() is called explicitly. Entries that
// were not used are returned so that the caller can decide whether to warn
// about them.
func (dsk *Disk) Override(o Overrides) (Overrides, error) {
	unused := make(Overrides)
	for k, v := range o {
		p, ok := dsk.entries[k]
		if !ok {
			unused[k] = v
			continue
		}
		if err := p.Set(v); err != nil {
			return unused, fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return unused, nil
}
