package iobuild

import (
	"fmt"
	"runtime"

	"github.com/gnames/geodb/pkg/errcode"
	"github.com/gnames/gn"
)

func NotConnectedError() error {
	msg := "Build attempted without database connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// NoPlacesError is returned when place_infos is empty.
func NoPlacesError() error {
	msg := `No imported places found

<em>How to fix:</em>
  Run <em>geodb import</em> before <em>geodb build</em>`

	return &gn.Error{
		Code: errcode.BuildNoPlacesError,
		Msg:  msg,
		Err:  fmt.Errorf("place_infos is empty"),
	}
}

func ClearTablesError(err error) error {
	msg := "Cannot remove old records from geolookup tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildClearTablesError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot clear tables: %w", fn, err),
	}
}

func ReadPlacesError(afterID int64, err error) error {
	msg := "Cannot read places after id <em>%d</em>"
	vars := []any{afterID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildReadPlacesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read places after %d: %w", fn, afterID, err),
	}
}

func ReadNamesError(num int, err error) error {
	msg := "Cannot read names of <em>%d</em> places"
	vars := []any{num}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildReadNamesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read names of %d places: %w", fn, num, err),
	}
}

func WriteError(table string, err error) error {
	msg := "Cannot save records to <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: copy into %s: %w", fn, table, err),
	}
}

func IndexError(index string, err error) error {
	msg := "Cannot update index <em>%s</em>"
	vars := []any{index}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildIndexError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: index %s: %w", fn, index, err),
	}
}

func DedupError(err error) error {
	msg := "Cannot remove duplicate names"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildDedupError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot remove duplicates: %w", fn, err),
	}
}

func VacuumError(table string, err error) error {
	msg := "Cannot vacuum table <em>%s</em>"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.BuildVacuumError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot vacuum %s: %w", table, err),
	}
}

// CacheError is returned when the ancestor cache cannot be created.
func CacheError(size int, err error) error {
	msg := "Cannot create cache of size <em>%d</em>"
	vars := []any{size}
	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create cache: %w", err),
	}
}
