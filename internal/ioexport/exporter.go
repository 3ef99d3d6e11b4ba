// Package ioexport implements Exporter interface. It copies geolookup
// tables from PostgreSQL to a standalone SQLite file and optionally
// uploads the file to S3-compatible storage.
package ioexport

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/geodb/pkg/db"
	"github.com/gnames/geodb/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

const defaultBatchSize = 50_000

type exporter struct {
	cfg      *config.Config
	operator db.Operator
}

// NewExporter creates a new Exporter.
func NewExporter(cfg *config.Config, op db.Operator) lifecycle.Exporter {
	return &exporter{cfg: cfg, operator: op}
}

// Export writes geo_infos, geo_names and geo_links to SQLite and
// returns the path to the file.
func (e *exporter) Export(ctx context.Context) (string, error) {
	pool := e.operator.Pool()
	if pool == nil {
		return "", NotConnectedError()
	}
	if e.cfg.Export.Upload {
		// fail before the long copy
		if err := checkS3(e.cfg.Export.S3); err != nil {
			return "", err
		}
	}

	counts := make(map[string]int64)
	for _, t := range []string{"geo_infos", "geo_names", "geo_links"} {
		n, err := e.operator.CountRows(ctx, t)
		if err != nil {
			return "", err
		}
		counts[t] = n
	}
	if counts["geo_names"] == 0 {
		return "", NoDataError()
	}

	start := time.Now()
	path := e.cfg.SQLitePath()
	slog.Info("Starting export", "path", path)

	gdb, sqlDB, err := openSQLite(path)
	if err != nil {
		return "", err
	}
	defer sqlDB.Close()

	total := counts["geo_infos"] + counts["geo_names"] + counts["geo_links"]
	bar := newProgressBar(int(total), "Exporting: ")
	batch := e.cfg.Database.BatchSize

	infos, err := copyTable(ctx, pool, gdb, infosTable, batch, bar)
	if err != nil {
		bar.Finish()
		return "", err
	}
	geoNames, err := copyTable(ctx, pool, gdb, namesTable, batch, bar)
	if err != nil {
		bar.Finish()
		return "", err
	}
	links, err := copyTable(ctx, pool, gdb, linksTable, batch, bar)
	bar.Finish()
	if err != nil {
		return "", err
	}

	slog.Info("Creating SQLite indexes")
	if err = createIndexes(sqlDB, path); err != nil {
		return "", err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Export complete",
		"path", path,
		"geo_infos", infos,
		"geo_names", geoNames,
		"geo_links", links,
		"duration", dur,
	)
	gn.Info(`Exported <em>%s</em> places and <em>%s</em> names to
<em>%s</em>
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(infos)),
		humanize.Comma(int64(geoNames)),
		path,
		dur,
	)

	if !e.cfg.Export.Upload {
		return path, nil
	}

	// the file must be complete on disk before upload
	if err = sqlDB.Close(); err != nil {
		return "", SQLiteError(path, err)
	}
	loc, err := upload(ctx, e.cfg.Export.S3, path)
	if err != nil {
		return "", err
	}
	gn.Info("Uploaded to <em>%s</em>", loc)
	return path, nil
}
