package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/geodb/pkg/errcode"
	"github.com/gnames/gn"
)

func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := "Cannot connect to PostgreSQL at <em>%s:%d/%s</em> as <em>%s</em>.\n" +
		"Check that PostgreSQL is running and <em>%s</em> database exists"
	vars := []any{host, port, database, user, database}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s:%d/%s: %w",
			fn, host, port, database, err),
	}
}

func TableCheckError(err error) error {
	msg := "Cannot check database tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot check tables: %w", fn, err),
	}
}

func EmptyDatabaseError(host, database string) error {
	msg := "Database <em>%s/%s</em> has no data.\n" +
		"Run <em>geodb create</em> and <em>geodb import</em> first"
	vars := []any{host, database}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: database %s/%s is empty", fn, host, database),
	}
}

func NotConnectedError() error {
	msg := "Database connection is not established"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: pool is nil, call Connect first", fn),
	}
}

func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot check table %s: %w", fn, table, err),
	}
}

func QueryTablesError(err error) error {
	msg := "Cannot get the list of tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot query tables: %w", fn, err),
	}
}

func ScanTableError(err error) error {
	msg := "Cannot read the list of tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot scan table name: %w", fn, err),
	}
}

func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot drop %s: %w", fn, table, err),
	}
}

func TruncateTableError(table string, err error) error {
	msg := "Cannot remove data from table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTruncateTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot truncate %s: %w", fn, table, err),
	}
}

func CountRowsError(table string, err error) error {
	msg := "Cannot count rows of table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCountRowsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot count %s: %w", fn, table, err),
	}
}
