package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/geodb/pkg/errcode"
	"github.com/gnames/gn"
)

func NotConnectedError() error {
	msg := "Export attempted without database connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// NoDataError is returned when geolookup tables are empty.
func NoDataError() error {
	msg := `Geolookup tables are empty

<em>How to fix:</em>
  Run <em>geodb build</em> before <em>geodb export</em>`

	return &gn.Error{
		Code: errcode.ExportNoDataError,
		Msg:  msg,
		Err:  fmt.Errorf("geo_names is empty"),
	}
}

func SQLiteError(path string, err error) error {
	msg := "Cannot prepare SQLite file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportSQLiteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: sqlite %s: %w", fn, path, err),
	}
}

func CopyError(table string, err error) error {
	msg := "Cannot copy <em>%s</em> to SQLite"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: copy %s: %w", fn, table, err),
	}
}

// S3ConfigError is returned when upload is requested, but S3 settings
// are incomplete.
func S3ConfigError(field string) error {
	msg := `Cannot upload without S3 <em>%s</em>

<em>How to fix:</em>
  Set export.s3 section in config.yaml or GEODB_EXPORT_S3_* variables`

	vars := []any{field}
	return &gn.Error{
		Code: errcode.ExportS3ConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("s3 %s is not set", field),
	}
}

func S3UploadError(bucket, key string, err error) error {
	msg := "Cannot upload <em>%s</em> to bucket <em>%s</em>"
	vars := []any{key, bucket}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportS3UploadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: upload %s/%s: %w", fn, bucket, key, err),
	}
}
