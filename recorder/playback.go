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

package recorder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/spf13/afero"
)

// ErrCartridge is returned by Validate() if the cartridge is not the one the
// transcript was recorded with.
var ErrCartridge = errors.New("transcript was recorded with a different cartridge")

// Playback is a parsed transcript.
type Playback struct {
	// from the header of the transcript. either field can be empty
	CartName string
	CartHash string

	Entries []Entry
}

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(fs afero.Fs, transcript string) (*Playback, error) {
	f, err := fs.Open(transcript)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}
	defer f.Close()
	return ReadPlayback(f)
}

// ReadPlayback reads a transcript from an io.Reader.
func ReadPlayback(r io.Reader) (*Playback, error) {
	plb := &Playback{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())

		switch {
		case s == "":
			continue
		case strings.HasPrefix(s, headerCartridge):
			plb.CartName = strings.TrimSpace(strings.TrimPrefix(s, headerCartridge))
			continue
		case strings.HasPrefix(s, headerHash):
			plb.CartHash = strings.TrimSpace(strings.TrimPrefix(s, headerHash))
			continue
		case strings.HasPrefix(s, "#"):
			continue
		}

		e, err := ParseEntry(s)
		if err != nil {
			return nil, fmt.Errorf("playback: line %d: %w", line, err)
		}
		e.Line = line
		plb.Entries = append(plb.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	return plb, nil
}

// Validate checks that the cartridge is the one that the transcript was
// recorded with. A transcript with no hash in the header can be played back
// with any cartridge.
func (plb *Playback) Validate(cart *cartridge.Cartridge) error {
	if plb.CartHash == "" {
		return nil
	}
	if cart == nil || cart.SHA1 != plb.CartHash {
		return fmt.Errorf("playback: %w (%s)", ErrCartridge, plb.CartName)
	}
	return nil
}

// Result of a single access during playback.
type Result struct {
	Entry  Entry
	Value  uint32
	Cycles int
}

func (r Result) String() string {
	if r.Entry.Op == bus.Store {
		return fmt.Sprintf("%-30s %d", r.Entry, r.Cycles)
	}
	return fmt.Sprintf("%-30s %d -> %0*x", r.Entry, r.Cycles, int(r.Entry.Width.Bytes()*2), r.Value)
}

// Play the transcript through the bus. The function is called after every
// access. The function can be nil. Returns the total number of cycles.
func (plb *Playback) Play(b bus.CPUBus, fn func(Result)) int {
	var snapshot bus.Snapshot
	var total int

	for _, e := range plb.Entries {
		before := total
		v := b.Access(e.Request(&snapshot), &total)
		if fn != nil {
			fn(Result{Entry: e, Value: v, Cycles: total - before})
		}
	}

	return total
}
