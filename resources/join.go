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

package resources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// the name of the portable directory. if it exists in the current working
// directory then resources are found there
const portablePath = "GopherAdvance"

// the name of the directory in the user's configuration directory
const configPath = "gopheradvance"

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

func checkPortable(fs afero.Fs) bool {
	fi, err := fs.Stat(portablePath)
	return err == nil && fi.IsDir()
}

func basePath(fs afero.Fs) (string, error) {
	if checkPortable(fs) {
		return portablePath, nil
	}
	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cnf, configPath), nil
}

// JoinPath prepends the supplied path with the base resource path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(fs afero.Fs, path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := basePath(fs)
	if err != nil {
		return "", err
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := fs.Stat(p); err == nil {
		return p, nil
	}

	if err := fs.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}

	return p, nil
}
