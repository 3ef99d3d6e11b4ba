package ioimport

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Base names of geonames dump files.
const (
	fileAllCountries   = "allCountries"
	fileAlternateNames = "alternateNames"
	fileAdmin1         = "admin1CodesASCII"
	fileAdmin2         = "admin2Codes"
	fileFeatures       = "featureCodes_en"
	fileCountries      = "countryInfo"
	fileCities         = "cities1000"
)

// source is an opened dump file. Size is the uncompressed size in
// bytes.
type source struct {
	io.Reader
	Name string
	Size int64

	closers []io.Closer
}

// Close releases the file and the archive it came from.
func (s *source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	return errors.Join(errs...)
}

// openSource opens dir/base.txt, or the base.txt entry of dir/base.zip
// when the text file does not exist.
func openSource(dir, base string) (*source, error) {
	txt := filepath.Join(dir, base+".txt")
	f, err := os.Open(txt)
	if err == nil {
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, OpenSourceError(txt, err)
		}
		return &source{
			Reader:  f,
			Name:    base + ".txt",
			Size:    info.Size(),
			closers: []io.Closer{f},
		}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, OpenSourceError(txt, err)
	}

	zipPath := filepath.Join(dir, base+".zip")
	zr, err := zip.OpenReader(zipPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, SourceNotFoundError(dir, base)
	}
	if err != nil {
		return nil, OpenSourceError(zipPath, err)
	}

	for _, zf := range zr.File {
		if !strings.EqualFold(filepath.Base(zf.Name), base+".txt") {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			zr.Close()
			return nil, OpenSourceError(zipPath, err)
		}
		return &source{
			Reader:  rc,
			Name:    base + ".zip",
			Size:    int64(zf.UncompressedSize64),
			closers: []io.Closer{zr, rc},
		}, nil
	}
	zr.Close()
	return nil, SourceNotFoundError(dir, base)
}
