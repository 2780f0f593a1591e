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

// Package preferences holds the preference values of the emulated hardware.
// Preferences are shared between all emulation instances that are given the
// same Preferences value through their environment.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/resources"
	"github.com/spf13/afero"
)

// List of valid values for the OpenBusPolicy preference.
const (
	// open bus reads return the most recently prefetched instruction
	OpenBusPrefetch = "PREFETCH"

	// open bus reads return the value of the OpenBusValue preference
	OpenBusFixed = "FIXED"
)

// Preferences defines and collates all the preference values used by the bus.
type Preferences struct {
	dsk *prefs.Disk

	// how the value of an open bus read is decided. one of OpenBusPrefetch or
	// OpenBusFixed
	OpenBusPolicy prefs.String

	// value used for open bus reads when the policy is OpenBusFixed. also
	// used when the policy is OpenBusPrefetch but no CPU state is available
	OpenBusValue prefs.Int

	// log every open bus access (at low severity)
	OpenBusLog prefs.Bool

	// reads of the BIOS from outside the BIOS return the last value fetched
	// from within the BIOS
	BIOSProtection prefs.Bool

	// initial value of the WAITCNT register
	WaitControl prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file found through
// the resources package on the supplied file system.
func NewPreferences(fs afero.Fs) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.OpenBusPolicy.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(fmt.Sprintf("%v", v)) {
		case OpenBusPrefetch, OpenBusFixed:
			return nil
		}
		return fmt.Errorf("preferences: unrecognised open bus policy (%v)", v)
	})

	p.WaitControl.SetHookPre(func(v prefs.Value) error {
		if w := v.(int); w < 0 || w > 0xffff {
			return fmt.Errorf("preferences: WAITCNT value out of range (%#x)", w)
		}
		return nil
	})

	pth, err := resources.JoinPath(fs, resources.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(fs, pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("bus.openbus.policy", &p.OpenBusPolicy)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("bus.openbus.value", &p.OpenBusValue)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("bus.openbus.log", &p.OpenBusLog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("bus.bios.protection", &p.BIOSProtection)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("bus.waitcnt", &p.WaitControl)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.OpenBusPolicy.Set(OpenBusPrefetch)
	p.OpenBusValue.Set(0)
	p.OpenBusLog.Set(true)
	p.BIOSProtection.Set(true)
	p.WaitControl.Set(0)
}

// UseFixedOpenBus returns true if open bus reads should use OpenBusValue in
// all circumstances.
func (p *Preferences) UseFixedOpenBus() bool {
	return strings.EqualFold(p.OpenBusPolicy.String(), OpenBusFixed)
}

// Override applies command line preference values. Unused values are
// returned.
func (p *Preferences) Override(o prefs.Overrides) (prefs.Overrides, error) {
	return p.dsk.Override(o)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
