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

// Package environment provides the context for a single emulation of the
// bus. Each instance of the bus has its own environment and the environment
// is passed to every component that needs to log or consult preferences.
package environment

import (
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/spf13/afero"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// maximum number of entries in an environment's log
const maxLogEntries = 1024

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations
type Environment struct {
	Label Label

	// the emulation preferences. these can be shared between environments
	Prefs *preferences.Preferences

	// the environment's own log. instances do not share a log
	Log *logger.Logger
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can by nil and a new Preferences instance will be created
// on an in-memory file system. Providing a non-nil value allows the
// preferences of more than one emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		Log:   logger.NewLogger(maxLogEntries),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences(afero.NewMemMapFs())
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Log.Clear()
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return true
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
