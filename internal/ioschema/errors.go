package ioschema

import (
	"fmt"
	"runtime"

	"github.com/gnames/geodb/pkg/errcode"
	"github.com/gnames/gn"
)

func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name()
}

// NotConnectedError is returned when the schema manager gets an operator
// without a pool.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without database connection",
		Err:  fmt.Errorf("from %s: pool is nil", caller()),
	}
}

// GORMConnectionError wraps failures to open GORM over the pgx pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open GORM session over the PostgreSQL pool

<em>How to fix:</em>
  1. Check <em>database</em> settings in config.yaml or GEODB_DATABASE_* variables
  2. Make sure the database user can connect with the same settings`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot open gorm: %w", caller(), err),
	}
}

// CreateSchemaError wraps AutoMigrate failures during create.
func CreateSchemaError(err error) error {
	msg := `Cannot create place and geolookup tables

<em>How to fix:</em>
  1. Check that the database user has CREATE permission
  2. Run <em>geodb create --force</em> to start from an empty database`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot create schema: %w", caller(), err),
	}
}

// MigrateSchemaError wraps AutoMigrate failures during migrate.
func MigrateSchemaError(err error) error {
	msg := `Cannot migrate place and geolookup tables

<em>How to fix:</em>
  1. Check that the database user has ALTER permission
  2. If columns changed type, recreate tables with <em>geodb create --force</em>
     and run <em>geodb import</em> again`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot migrate schema: %w", caller(), err),
	}
}

// CollationError is returned when a name column cannot get "C"
// collation.
func CollationError(table, column string, err error) error {
	msg := "Cannot set \"C\" collation on <em>%s.%s</em>"
	vars := []any{table, column}

	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot set collation on %s.%s: %w",
			caller(), table, column, err),
	}
}

// CreateIndexError is returned when a lookup index cannot be created.
func CreateIndexError(index string, err error) error {
	msg := "Cannot create index <em>%s</em>"
	vars := []any{index}

	return &gn.Error{
		Code: errcode.SchemaIndexError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create index %s: %w", caller(), index, err),
	}
}
