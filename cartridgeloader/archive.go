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
	"archive/tar"
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/nwaples/rardecode/v2"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// the first ROM file in a zip archive
func extractFromZIP(r io.ReaderAt, size int64) ([]byte, string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, "", fmt.Errorf("zip: %w", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("zip: %s: %w", f.Name, err)
		}
		defer rc.Close()

		data, err := limitedRead(rc)
		if err != nil {
			return nil, "", fmt.Errorf("zip: %s: %w", f.Name, err)
		}
		return data, path.Base(f.Name), nil
	}

	return nil, "", ErrNoROMFile
}

// the first ROM file in a 7z archive
func extractFrom7z(r io.ReaderAt, size int64) ([]byte, string, error) {
	zr, err := sevenzip.NewReader(r, size)
	if err != nil {
		return nil, "", fmt.Errorf("7z: %w", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("7z: %s: %w", f.Name, err)
		}
		defer rc.Close()

		data, err := limitedRead(rc)
		if err != nil {
			return nil, "", fmt.Errorf("7z: %s: %w", f.Name, err)
		}
		return data, path.Base(f.Name), nil
	}

	return nil, "", ErrNoROMFile
}

// the first ROM file in a rar archive. multi-volume archives are not
// supported
func extractFromRAR(r io.Reader) ([]byte, string, error) {
	rr, err := rardecode.NewReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("rar: %w", err)
	}

	for {
		hdr, err := rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("rar: %w", err)
		}

		if hdr.IsDir || !isROMFile(hdr.Name) {
			continue
		}

		data, err := limitedRead(rr)
		if err != nil {
			return nil, "", fmt.Errorf("rar: %s: %w", hdr.Name, err)
		}
		return data, path.Base(hdr.Name), nil
	}

	return nil, "", ErrNoROMFile
}

// the first ROM file in a tar archive
func extractFromTar(r io.Reader) ([]byte, string, error) {
	tr := tar.NewReader(r)

	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("tar: %w", err)
		}

		if hdr.Typeflag != tar.TypeReg || !isROMFile(hdr.Name) {
			continue
		}

		data, err := limitedRead(tr)
		if err != nil {
			return nil, "", fmt.Errorf("tar: %s: %w", hdr.Name, err)
		}
		return data, path.Base(hdr.Name), nil
	}

	return nil, "", ErrNoROMFile
}

func extractFromGzip(r io.Reader, filename string) ([]byte, string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("gzip: %w", err)
	}
	defer gr.Close()
	return readStream(gr, filename, ".gz", ".tgz")
}

func extractFromXZ(r io.Reader, filename string) ([]byte, string, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("xz: %w", err)
	}
	return readStream(xr, filename, ".xz", ".txz")
}

func extractFromLZ4(r io.Reader, filename string) ([]byte, string, error) {
	return readStream(lz4.NewReader(r), filename, ".lz4")
}
