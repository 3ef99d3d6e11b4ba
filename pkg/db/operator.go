package db

import (
	"context"

	"github.com/gnames/geodb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages the PostgreSQL connection. Importer, Builder and
// Exporter get the pool from it to run their own queries and COPY
// operations. Schema is created by GORM in SchemaManager.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for queries and CopyFrom.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error

	// TruncateTables removes all rows from the given tables.
	// Used by build to regenerate geolookup tables.
	TruncateTables(ctx context.Context, tables ...string) error

	// CountRows returns the number of rows in a table.
	CountRows(ctx context.Context, table string) (int64, error)
}
