package ioexport

import (
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gnames/geodb/pkg/schema"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// pragmas are applied before the bulk load. A failed export leaves an
// unusable file that is replaced by the next run.
var pragmas = []string{
	"PRAGMA journal_mode = OFF",
	"PRAGMA synchronous = OFF",
	"PRAGMA temp_store = MEMORY",
}

// openSQLite creates a new SQLite file with geolookup tables. An
// existing file is replaced.
func openSQLite(path string) (*gorm.DB, *sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, SQLiteError(path, err)
	}
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, SQLiteError(path, err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, SQLiteError(path, err)
	}
	// a single connection keeps pragmas effective
	sqlDB.SetMaxOpenConns(1)
	for _, p := range pragmas {
		if _, err = sqlDB.Exec(p); err != nil {
			sqlDB.Close()
			return nil, nil, SQLiteError(path, err)
		}
	}

	gdb, err := gorm.Open(
		sqlite.New(sqlite.Config{DriverName: "sqlite", Conn: sqlDB}),
		&gorm.Config{
			Logger:                 logger.Default.LogMode(logger.Silent),
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		sqlDB.Close()
		return nil, nil, SQLiteError(path, err)
	}

	if err = schema.MigrateLookup(gdb); err != nil {
		sqlDB.Close()
		return nil, nil, SQLiteError(path, err)
	}
	return gdb, sqlDB, nil
}

// createIndexes adds lookup indexes after all rows are copied.
func createIndexes(sqlDB *sql.DB, path string) error {
	for _, idx := range schema.LookupIndexes() {
		if _, err := sqlDB.Exec(idx.CreateSQL()); err != nil {
			return SQLiteError(path, err)
		}
	}
	if _, err := sqlDB.Exec("ANALYZE"); err != nil {
		return SQLiteError(path, err)
	}
	return nil
}
