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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestEnvironment(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainEmulation())

	other, err := environment.NewEnvironment("bench", env.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.IsMainEmulation())
	test.ExpectSuccess(t, other.IsEmulation("bench"))

	// preferences are shared, logs are not
	test.ExpectSuccess(t, env.Prefs == other.Prefs)
	env.Log.Log(env, "test", "entry")
	test.ExpectEquality(t, env.Log.Len(), 1)
	test.ExpectEquality(t, other.Log.Len(), 0)

	// environment is a logging permission
	var _ logger.Permission = env

	test.DemandSuccess(t, env.Prefs.BIOSProtection.Set(false))
	env.Normalise()
	test.ExpectEquality(t, env.Prefs.BIOSProtection.Get().(bool), true)
	test.ExpectEquality(t, env.Log.Len(), 0)
}
