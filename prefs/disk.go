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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file.
const fileSeparator = " :: "

// Disk represents preference values as stored on disk. The file system is
// abstracted by afero so that tests (and anything else that wants to) can
// use an in-memory file system.
type Disk struct {
	fs   afero.Fs
	path string

	// the entries registered with Add()
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(fs afero.Fs, path string) (*Disk, error) {
	if fs == nil {
		return nil, fmt.Errorf("prefs: no file system")
	}
	return &Disk{
		fs:      fs,
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, fileSeparator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is the string that is written to the file. Keys must not contain the
// file separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(fileSeparator)) || strings.ContainsAny(key, "\n ") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	switch p.(type) {
	case *Bool, *Int, *String:
	default:
		return fmt.Errorf("prefs: unsupported type %T for key %q", p, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all registered preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// read the preferences file and return the key/value pairs it contains. A
// missing file is not an error, it just results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	b, err := afero.ReadFile(dsk.fs, dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(b))

	// check validity of file by checking the first line
	if !scanner.Scan() {
		return data, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), fileSeparator)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return data, nil
}

// Load preference values from disk. Keys in the file that have not been
// registered with Add() are ignored.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}
	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the existing file that
// have not been registered with this Disk instance are preserved, which means
// that more than one Disk instance can share the same file.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}
	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, fileSeparator, data[k]))
	}

	err = afero.WriteFile(dsk.fs, dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}
