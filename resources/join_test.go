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

package resources_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopheradvance/resources"
	"github.com/jetsetilly/gopheradvance/test"
	"github.com/spf13/afero"
)

func TestPortablePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	test.DemandSuccess(t, fs.Mkdir("GopherAdvance", 0o700))

	p, err := resources.JoinPath(fs, "foo", "bar")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join("GopherAdvance", "foo", "bar"))

	// directories leading to the resource have been created
	fi, err := fs.Stat(filepath.Join("GopherAdvance", "foo"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	// the resource itself has not
	_, err = fs.Stat(p)
	test.ExpectFailure(t, err == nil)

	// base path is not prepended twice
	q, err := resources.JoinPath(fs, p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
