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
	"fmt"
	"io"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
)

// Recorder writes every access it sees to a transcript. It implements both
// intercept.ReadHandler and intercept.WriteHandler.
type Recorder struct {
	output io.Writer
	count  int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The header is written immediately. The cartridge can be nil.
func NewRecorder(output io.Writer, cart *cartridge.Cartridge) (*Recorder, error) {
	rec := &Recorder{
		output: output,
	}

	if cart != nil {
		_, err := fmt.Fprintf(output, "%s%s\n%s%s\n", headerCartridge, cart.Filename, headerHash, cart.SHA1)
		if err != nil {
			return nil, fmt.Errorf("recorder: %w", err)
		}
	}

	return rec, nil
}

func (rec *Recorder) String() string {
	return "recorder"
}

// Len returns the number of accesses recorded.
func (rec *Recorder) Len() int {
	return rec.count
}

func (rec *Recorder) record(req bus.Request) error {
	e := Entry{
		Op:      req.Op,
		Width:   req.Width,
		Address: req.Address,
		Value:   req.Value,
	}
	if req.CPU != nil {
		e.HasPC = true
		e.PC = req.CPU.PC()
	}

	if _, err := fmt.Fprintln(rec.output, e); err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	rec.count++

	return nil
}

// InterceptRead implements the intercept.ReadHandler interface.
func (rec *Recorder) InterceptRead(req bus.Request, _ *int) (intercept.Result, error) {
	return intercept.Pass, rec.record(req)
}

// InterceptWrite implements the intercept.WriteHandler interface.
func (rec *Recorder) InterceptWrite(req bus.Request, _ *int) (intercept.Result, error) {
	return intercept.Pass, rec.record(req)
}
