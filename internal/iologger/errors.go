package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/geodb/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenLogError is returned when the log file cannot be opened for
// writing or appending.
func OpenLogError(path string, append bool, err error) error {
	mode := "writing"
	if append {
		mode = "appending"
	}
	msg := "Cannot open log file <em>%s</em> for %s.\n" +
		"Set <em>log.destination</em> to stderr to skip the file"
	vars := []any{path, mode}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s for %s: %w", fn, path, mode, err),
	}
}
