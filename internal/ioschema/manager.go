// Package ioschema implements lifecycle.SchemaManager with GORM
// AutoMigrate on top of the pgx pool.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/geodb/pkg/db"
	"github.com/gnames/geodb/pkg/lifecycle"
	"github.com/gnames/geodb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates dump and geolookup tables and their indexes.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err = schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if err = m.setCollation(ctx); err != nil {
		return err
	}

	if err = m.createIndexes(ctx); err != nil {
		return err
	}

	slog.Info("Schema created", "database", cfg.Database.Database)
	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err = schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	if err = m.createIndexes(ctx); err != nil {
		return err
	}

	slog.Info("Schema migrated", "database", cfg.Database.Database)
	return nil
}

func (m *manager) gormDB() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	res, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return res, nil
}

// setCollation sets "C" collation on name columns, so their btree
// indexes serve prefix searches.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	type columnDef struct {
		table, column, colType string
	}

	columns := []columnDef{
		{"geo_names", "name", "VARCHAR(400)"},
		{"place_names", "name", "VARCHAR(400)"},
	}

	qStr := `ALTER TABLE %s ALTER COLUMN %s TYPE %s COLLATE "C"`

	for _, col := range columns {
		q := formatCollationSQL(qStr, col.table, col.column, col.colType)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}

// createIndexes creates secondary indexes of all tables.
func (m *manager) createIndexes(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	idxs := schema.PlaceInfo{}.IndexDDL()
	idxs = append(idxs, schema.PlaceName{}.IndexDDL()...)
	idxs = append(idxs, schema.LookupIndexes()...)
	for _, idx := range idxs {
		if _, err := pool.Exec(ctx, idx.CreateSQL()); err != nil {
			return CreateIndexError(idx.Name, err)
		}
	}
	return nil
}
