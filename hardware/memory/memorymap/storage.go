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

package memorymap

import "fmt"

// Storage is the data that backs one or more Regions. Data is little-endian.
type Storage struct {
	Label string
	Data  []byte
}

// NewStorage is the preferred method of initialisation for the Storage type.
// The size must be a non-zero multiple of four.
func NewStorage(label string, size int) *Storage {
	return &Storage{
		Label: label,
		Data:  make([]byte, size),
	}
}

// NewStorageFromData creates a Storage instance containing a copy of the
// data. The storage is padded to the next power of two so that it can be
// mirrored throughout a region. The padding value is used to fill the
// storage beyond the end of the data.
func NewStorageFromData(label string, data []byte, padding byte) *Storage {
	sz := 4
	for sz < len(data) {
		sz <<= 1
	}
	s := NewStorage(label, sz)
	copy(s.Data, data)
	for i := len(data); i < sz; i++ {
		s.Data[i] = padding
	}
	return s
}

func (s *Storage) String() string {
	return fmt.Sprintf("%s (%d bytes)", s.Label, len(s.Data))
}

// Size of the storage in bytes.
func (s *Storage) Size() uint32 {
	return uint32(len(s.Data))
}

// Read value of the given width from the offset. The offset must be aligned
// to the width and must be within the storage.
func (s *Storage) Read(offset uint32, w Width) uint32 {
	d := s.Data[offset:]
	switch w {
	case Width8:
		return uint32(d[0])
	case Width16:
		_ = d[1]
		return uint32(d[0]) | uint32(d[1])<<8
	case Width32:
		_ = d[3]
		return uint32(d[0]) | uint32(d[1])<<8 | uint32(d[2])<<16 | uint32(d[3])<<24
	}
	panic(fmt.Sprintf("memorymap: invalid access width (%d)", int(w)))
}

// Write value of the given width to the offset. The offset must be aligned to
// the width and must be within the storage.
func (s *Storage) Write(offset uint32, w Width, value uint32) {
	d := s.Data[offset:]
	switch w {
	case Width8:
		d[0] = uint8(value)
	case Width16:
		_ = d[1]
		d[0] = uint8(value)
		d[1] = uint8(value >> 8)
	case Width32:
		_ = d[3]
		d[0] = uint8(value)
		d[1] = uint8(value >> 8)
		d[2] = uint8(value >> 16)
		d[3] = uint8(value >> 24)
	default:
		panic(fmt.Sprintf("memorymap: invalid access width (%d)", int(w)))
	}
}
