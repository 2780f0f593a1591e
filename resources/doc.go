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

// Package resources contains functions to prepare paths for GopherAdvance
// resources. The preferences file is the most common resource.
//
// Resources are either in the portable path (a directory named
// "GopherAdvance" in the current working directory) or in the user's
// configuration directory, as returned by os.UserConfigDir().
//
// All file system access goes through an afero.Fs so that the same paths can
// be prepared in memory during testing.
package resources
