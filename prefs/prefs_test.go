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

package prefs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/test"
	"github.com/spf13/afero"
)

const prefsFile = "/prefs/test.prefs"

func cmpFile(t *testing.T, fs afero.Fs, expected string) {
	t.Helper()
	b, err := afero.ReadFile(fs, prefsFile)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), expected)
}

func TestBool(t *testing.T) {
	fs := afero.NewMemMapFs()
	dsk, err := prefs.NewDisk(fs, prefsFile)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.DemandSuccess(t, dsk.Add("test", &v))
	test.DemandSuccess(t, dsk.Add("testB", &w))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, dsk.Save())

	cmpFile(t, fs, fmt.Sprintf("%s\ntest :: true\ntestB :: false\n", prefs.WarningBoilerPlate))

	test.ExpectFailure(t, v.Set(1.5))
}

func TestInt(t *testing.T) {
	fs := afero.NewMemMapFs()
	dsk, err := prefs.NewDisk(fs, prefsFile)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.DemandSuccess(t, dsk.Add("number", &v))
	test.DemandSuccess(t, dsk.Add("hex", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("0x4317"))
	test.ExpectEquality(t, w.Get().(int), 0x4317)
	test.ExpectSuccess(t, dsk.Save())

	cmpFile(t, fs, fmt.Sprintf("%s\nhex :: 17175\nnumber :: 10\n", prefs.WarningBoilerPlate))

	// string values that cannot be parsed do not change the value
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("  hello world  "))
	test.ExpectEquality(t, v.String(), "hello world")

	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")
	test.ExpectSuccess(t, v.Set("goodbye"))
	test.ExpectEquality(t, v.String(), "goodb")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, post, 3)

	// the pre hook prevents the update
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 3)
	test.ExpectEquality(t, post, 3)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	test.DemandSuccess(t, afero.WriteFile(fs, prefsFile,
		[]byte(fmt.Sprintf("%s\nfoo :: true\nbar :: 0x10\nunknown :: xyz\n", prefs.WarningBoilerPlate)), 0o600))

	dsk, err := prefs.NewDisk(fs, prefsFile)
	test.DemandSuccess(t, err)

	var foo prefs.Bool
	var bar prefs.Int
	test.DemandSuccess(t, dsk.Add("foo", &foo))
	test.DemandSuccess(t, dsk.Add("bar", &bar))
	test.DemandSuccess(t, dsk.Load())

	test.ExpectEquality(t, foo.Get().(bool), true)
	test.ExpectEquality(t, bar.Get().(int), 16)

	// unknown keys survive a save
	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fs, fmt.Sprintf("%s\nbar :: 16\nfoo :: true\nunknown :: xyz\n", prefs.WarningBoilerPlate))
}

func TestLoadMissingOrInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	dsk, err := prefs.NewDisk(fs, prefsFile)
	test.DemandSuccess(t, err)

	var foo prefs.Bool
	test.DemandSuccess(t, dsk.Add("foo", &foo))

	// missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.DemandSuccess(t, afero.WriteFile(fs, prefsFile, []byte("foo :: true\n"), 0o600))
	test.ExpectFailure(t, dsk.Load())
}

func TestIllegalKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(afero.NewMemMapFs(), prefsFile)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("a::b", &v))
	test.ExpectFailure(t, dsk.Add("a b", &v))
	test.ExpectSuccess(t, dsk.Add("a.b", &v))

	_, err = prefs.NewDisk(nil, prefsFile)
	test.ExpectFailure(t, err)
}

func TestOverrides(t *testing.T) {
	o := prefs.ParseOverrides("foo::true; bar :: 0x20;; malformed; baz::hello")
	test.ExpectEquality(t, len(o), 3)
	test.ExpectEquality(t, o.String(), "bar::0x20; baz::hello; foo::true")

	dsk, err := prefs.NewDisk(afero.NewMemMapFs(), prefsFile)
	test.DemandSuccess(t, err)

	var foo prefs.Bool
	var bar prefs.Int
	test.DemandSuccess(t, dsk.Add("foo", &foo))
	test.DemandSuccess(t, dsk.Add("bar", &bar))

	unused, err := dsk.Override(o)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, unused.String(), "baz::hello")
	test.ExpectEquality(t, foo.Get().(bool), true)
	test.ExpectEquality(t, bar.Get().(int), 0x20)

	_, err = dsk.Override(prefs.ParseOverrides("bar::nonsense"))
	test.ExpectFailure(t, err)
}

func TestUnboxed(t *testing.T) {
	var b prefs.Bool
	var i prefs.Int
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set(-5))
	test.ExpectEquality(t, b.Bool(), true)
	test.ExpectEquality(t, i.Int(), -5)
}
