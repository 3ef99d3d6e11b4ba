package ioexport

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/geodb/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// sqliteBatch keeps the number of SQL variables of an INSERT below
// SQLite limits.
const sqliteBatch = 1_000

// table describes how rows of a geolookup table are read from
// PostgreSQL.
type table[T any] struct {
	name  string
	query string
	scan  func(pgx.Rows) (T, error)
}

var infosTable = table[schema.GeoInfo]{
	name: "geo_infos",
	query: `
SELECT id, latitude, longitude, population, feature_code, feature_name,
    geohash, s2_cell
  FROM geo_infos ORDER BY id`,
	scan: func(rows pgx.Rows) (schema.GeoInfo, error) {
		var r schema.GeoInfo
		err := rows.Scan(&r.ID, &r.Latitude, &r.Longitude, &r.Population,
			&r.FeatureCode, &r.FeatureName, &r.Geohash, &r.S2Cell)
		return r, err
	},
}

var namesTable = table[schema.GeoName]{
	name: "geo_names",
	query: `
SELECT id, geo_id, lang, name, full_name, importance, row_key
  FROM geo_names ORDER BY id`,
	scan: func(rows pgx.Rows) (schema.GeoName, error) {
		var r schema.GeoName
		err := rows.Scan(&r.ID, &r.GeoID, &r.Lang, &r.Name, &r.FullName,
			&r.Importance, &r.RowKey)
		return r, err
	},
}

var linksTable = table[schema.GeoLink]{
	name:  "geo_links",
	query: `SELECT id, geo_id, url FROM geo_links ORDER BY id`,
	scan: func(rows pgx.Rows) (schema.GeoLink, error) {
		var r schema.GeoLink
		err := rows.Scan(&r.ID, &r.GeoID, &r.URL)
		return r, err
	},
}

// copyTable streams rows of a table from PostgreSQL and saves them to
// SQLite in transactions of batchSize rows.
func copyTable[T any](
	ctx context.Context,
	pool *pgxpool.Pool,
	gdb *gorm.DB,
	t table[T],
	batchSize int,
	bar *pb.ProgressBar,
) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	rows, err := pool.Query(ctx, t.query)
	if err != nil {
		return 0, CopyError(t.name, err)
	}
	defer rows.Close()

	var count int
	batch := make([]T, 0, batchSize)
	save := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(batch, sqliteBatch).Error
		})
		if err != nil {
			return CopyError(t.name, err)
		}
		count += len(batch)
		bar.Add(len(batch))
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		r, err := t.scan(rows)
		if err != nil {
			return count, CopyError(t.name, err)
		}
		batch = append(batch, r)
		if len(batch) < batchSize {
			continue
		}
		if err = save(); err != nil {
			return count, err
		}
	}
	if err = rows.Err(); err != nil {
		return count, CopyError(t.name, err)
	}
	if err = save(); err != nil {
		return count, err
	}
	return count, nil
}
