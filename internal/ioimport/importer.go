// Package ioimport implements Importer interface for loading geonames
// dump files into PostgreSQL.
// This is an impure I/O package that reads dump files and performs
// bulk inserts.
package ioimport

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/geodb/pkg/db"
	"github.com/gnames/geodb/pkg/lifecycle"
	"github.com/gnames/geodb/pkg/schema"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5/pgxpool"
)

// importer implements the Importer interface.
type importer struct {
	cfg      *config.Config
	operator db.Operator
}

// NewImporter creates a new Importer.
func NewImporter(cfg *config.Config, op db.Operator) lifecycle.Importer {
	return &importer{cfg: cfg, operator: op}
}

// Import loads allCountries into place_infos and alternateNames into
// place_names. Existing records of the loaded tables are removed.
func (im *importer) Import(ctx context.Context) (lifecycle.ImportStats, error) {
	var stats lifecycle.ImportStats
	pool := im.operator.Pool()
	if pool == nil {
		return stats, NotConnectedError()
	}

	if !im.cfg.Import.WithInfo && !im.cfg.Import.WithNames {
		gn.Warn("Both places and names are disabled, nothing to import")
		return stats, nil
	}

	start := time.Now()
	slog.Info("Starting import", "source_dir", im.cfg.Import.SourceDir)

	if im.cfg.Import.WithInfo {
		lk, err := loadLookups(im.cfg.Import.SourceDir)
		if err != nil {
			return stats, err
		}

		err = im.prepare(ctx, pool, "place_infos", schema.PlaceInfo{}.IndexDDL())
		if err != nil {
			return stats, err
		}
		is, err := im.importInfos(ctx, pool, lk)
		if err != nil {
			return stats, err
		}
		stats.Places = is.places
		stats.Skipped += is.skipped
		stats.Unresolved = is.unresolved
		stats.PopulationRaised = is.raised
		if err = createIndexes(ctx, pool, schema.PlaceInfo{}.IndexDDL()); err != nil {
			return stats, err
		}
		gn.Info("Imported <em>%s</em> places", humanize.Comma(int64(is.places)))
		if is.unresolved > 0 {
			slog.Warn("Some codes were not found in lookup tables",
				"count", is.unresolved)
		}
	}

	if im.cfg.Import.WithNames {
		err := im.prepare(ctx, pool, "place_names", schema.PlaceName{}.IndexDDL())
		if err != nil {
			return stats, err
		}
		count, skipped, err := im.importNames(ctx, pool)
		if err != nil {
			return stats, err
		}
		stats.Names = count
		stats.Skipped += skipped
		if err = createIndexes(ctx, pool, schema.PlaceName{}.IndexDDL()); err != nil {
			return stats, err
		}
		gn.Info("Imported <em>%s</em> alternate names", humanize.Comma(int64(count)))
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Import complete",
		"places", stats.Places,
		"names", stats.Names,
		"skipped", stats.Skipped,
		"population_raised", stats.PopulationRaised,
		"duration", dur,
	)
	return stats, nil
}

// prepare removes old records from a table and drops its indexes to
// speed up the load.
func (im *importer) prepare(
	ctx context.Context,
	pool *pgxpool.Pool,
	table string,
	indexes []schema.Index,
) error {
	if err := im.operator.TruncateTables(ctx, table); err != nil {
		return err
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx.DropSQL()); err != nil {
			return IndexError(idx.Name, err)
		}
	}
	return nil
}

func createIndexes(
	ctx context.Context,
	pool *pgxpool.Pool,
	indexes []schema.Index,
) error {
	for _, idx := range indexes {
		slog.Info("Creating index", "name", idx.Name)
		if _, err := pool.Exec(ctx, idx.CreateSQL()); err != nil {
			return IndexError(idx.Name, err)
		}
	}
	return nil
}
