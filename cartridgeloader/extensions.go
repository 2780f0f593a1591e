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

package cartridgeloader

// FileExtensions is the list of file extensions that are recognised as ROM
// files, either on their own or inside an archive.
var FileExtensions = [...]string{".GBA", ".AGB", ".BIN", ".MB", ".SRL"}

// ArchiveExtensions is the list of file extensions that are recognised as
// archives. Archives are normally detected by their content so the extension
// is only used when the content is not recognised.
var ArchiveExtensions = [...]string{".ZIP", ".7Z", ".RAR", ".GZ", ".TGZ", ".XZ", ".TXZ", ".LZ4"}
