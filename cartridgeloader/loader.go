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

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/spf13/afero"
)

// sentinel errors returned by Load()
var (
	// no ROM file was found inside an archive
	ErrNoROMFile = errors.New("no ROM file found in archive")

	// the file is not a ROM file or an archive that is recognised
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// the ROM data is larger than the gamepak address space
	ErrFileTooLarge = errors.New("file exceeds maximum ROM size")

	// the loaded data does not match the expected hash
	ErrUnexpectedHash = errors.New("unexpected hash value")
)

// MaxSize is the maximum size of ROM data that can be loaded.
const MaxSize = memorymap.MaxSizeROM

// Loader is used to specify the ROM data to use when creating a bus.
type Loader struct {
	// filename of the ROM or archive to load
	Filename string

	// name of the ROM file. if the ROM was loaded from an archive then this
	// is the name of the file inside the archive. otherwise it is the base
	// name of Filename. set by Load()
	Name string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename. If the ROM
// has been loaded the name of the ROM file is used.
func (cl Loader) ShortName() string {
	n := cl.Name
	if n == "" {
		n = path.Base(cl.Filename)
	}
	return strings.TrimSuffix(n, path.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data from the file system.
func (cl *Loader) Load(fs afero.Fs) error {
	if len(cl.Data) > 0 {
		return nil
	}

	f, err := fs.Open(cl.Filename)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	header := make([]byte, 16)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	header = header[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	var data []byte
	var name string

	switch detectFormat(header, cl.Filename) {
	case formatRaw:
		data, err = limitedRead(f)
		name = path.Base(cl.Filename)
	case formatZIP:
		data, name, err = extractFromZIP(f, fi.Size())
	case format7z:
		data, name, err = extractFrom7z(f, fi.Size())
	case formatRAR:
		data, name, err = extractFromRAR(f)
	case formatGzip:
		data, name, err = extractFromGzip(f, cl.Filename)
	case formatXZ:
		data, name, err = extractFromXZ(f, cl.Filename)
	case formatLZ4:
		data, name, err = extractFromLZ4(f, cl.Filename)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, cl.Filename)
	}
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("cartridgeloader: %s: empty file", cl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return fmt.Errorf("cartridgeloader: %w", ErrUnexpectedHash)
	}

	cl.Hash = hash
	cl.Name = name
	cl.Data = data

	return nil
}

type formatType int

const (
	formatUnknown formatType = iota
	formatRaw
	formatZIP
	format7z
	formatRAR
	formatGzip
	formatXZ
	formatLZ4
)

// magic bytes for format detection
var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21, 0x1a, 0x07}
	magicGzip     = []byte{0x1f, 0x8b}
	magicXZ       = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	magicLZ4      = []byte{0x04, 0x22, 0x4d, 0x18}
)

func detectFormat(header []byte, filename string) formatType {
	switch {
	case bytes.HasPrefix(header, magicZIP), bytes.HasPrefix(header, magicZIPEmpty):
		return formatZIP
	case bytes.HasPrefix(header, magic7z):
		return format7z
	case bytes.HasPrefix(header, magicRAR):
		return formatRAR
	case bytes.HasPrefix(header, magicXZ):
		return formatXZ
	case bytes.HasPrefix(header, magicLZ4):
		return formatLZ4
	case bytes.HasPrefix(header, magicGzip):
		return formatGzip
	}

	ext := strings.ToUpper(path.Ext(filename))

	switch ext {
	case ".ZIP":
		return formatZIP
	case ".7Z":
		return format7z
	case ".RAR":
		return formatRAR
	case ".GZ", ".TGZ":
		return formatGzip
	case ".XZ", ".TXZ":
		return formatXZ
	case ".LZ4":
		return formatLZ4
	}

	if isROMFile(filename) {
		return formatRaw
	}

	return formatUnknown
}

// isROMFile checks if the filename has one of the recognised ROM extensions
func isROMFile(name string) bool {
	ext := strings.ToUpper(path.Ext(name))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// limitedRead reads from r up to MaxSize bytes. An error is returned if there
// is more data than that
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// the offset and value of the magic string in a tar header
const (
	tarMagicOffset = 257
	tarMagic       = "ustar"
)

// read ROM data from a decompressed stream. if the stream is a tar archive
// then the first ROM file in the archive is returned. otherwise the stream
// is the ROM and the name is the filename with the compression extension
// removed
func readStream(r io.Reader, filename string, ext ...string) ([]byte, string, error) {
	br := bufio.NewReaderSize(r, 1024)

	peek, _ := br.Peek(tarMagicOffset + len(tarMagic))
	if len(peek) == tarMagicOffset+len(tarMagic) && string(peek[tarMagicOffset:]) == tarMagic {
		return extractFromTar(br)
	}

	data, err := limitedRead(br)
	if err != nil {
		return nil, "", err
	}

	name := path.Base(filename)
	for _, e := range ext {
		if strings.EqualFold(path.Ext(name), e) {
			name = strings.TrimSuffix(name, path.Ext(name))
			break
		}
	}

	return data, name, nil
}
