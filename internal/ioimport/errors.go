package ioimport

import (
	"fmt"
	"runtime"

	"github.com/gnames/geodb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when import is attempted
// without database connection.
func NotConnectedError() error {
	msg := "Import attempted without database connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// SourceNotFoundError is returned when neither a text file nor a zip
// archive with the given base name exists in the source directory.
func SourceNotFoundError(dir, base string) error {
	msg := `Geonames file not found

<em>Directory:</em> %s
<em>File:</em> %s.txt or %s.zip

<em>How to fix:</em>
  1. Download dumps from https://download.geonames.org/export/dump/
  2. Set import.source_dir in config.yaml or use --source-dir flag`

	vars := []any{dir, base, base}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportSourceNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no %s.txt or %s.zip in %s", fn, base, base, dir),
	}
}

// OpenSourceError is returned when a dump file cannot be opened.
func OpenSourceError(path string, err error) error {
	msg := "Cannot open geonames file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportOpenSourceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

// ReadSourceError is returned when reading of a dump file fails.
func ReadSourceError(name string, err error) error {
	msg := "Cannot read geonames file <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportReadSourceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, name, err),
	}
}

// LookupError is returned when a lookup table is empty, which means the
// dump file is broken or has a wrong format.
func LookupError(name string) error {
	msg := "Lookup table <em>%s</em> has no records"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportLookupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: lookup %s is empty", fn, name),
	}
}

// CopyError is returned when bulk insert into a table fails.
func CopyError(table string, err error) error {
	msg := "Cannot save records to <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: copy into %s: %w", fn, table, err),
	}
}

// IndexError is returned when an index cannot be dropped or created.
func IndexError(index string, err error) error {
	msg := "Cannot update index <em>%s</em>"
	vars := []any{index}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportIndexError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: index %s: %w", fn, index, err),
	}
}
