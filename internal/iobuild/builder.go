// Package iobuild implements Builder interface. It generates geolookup
// tables geo_infos, geo_names and geo_links from imported geonames
// records.
package iobuild

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/geodb/pkg/db"
	"github.com/gnames/geodb/pkg/lifecycle"
	"github.com/gnames/geodb/pkg/names"
	"github.com/gnames/geodb/pkg/schema"
	"github.com/gnames/gn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var lookupTables = []string{"geo_infos", "geo_names", "geo_links"}

const dedupQuery = `
DELETE FROM geo_names
  WHERE id NOT IN (
    SELECT MIN(id) FROM geo_names GROUP BY row_key
  )`

type builder struct {
	cfg      *config.Config
	operator db.Operator
}

// NewBuilder creates a new Builder.
func NewBuilder(cfg *config.Config, op db.Operator) lifecycle.Builder {
	return &builder{cfg: cfg, operator: op}
}

// Build replaces content of geolookup tables with rows generated from
// place_infos and place_names. Statistics are also saved to stats.yaml
// in the cache directory.
func (b *builder) Build(ctx context.Context) (names.Stats, error) {
	var stats names.Stats
	pool := b.operator.Pool()
	if pool == nil {
		return stats, NotConnectedError()
	}

	total, err := b.operator.CountRows(ctx, "place_infos")
	if err != nil {
		return stats, err
	}
	if total == 0 {
		return stats, NoPlacesError()
	}

	policy, ok := names.ParseScriptPolicy(b.cfg.Build.ScriptPolicy)
	if !ok {
		slog.Warn("Unknown script policy, using default",
			"policy", b.cfg.Build.ScriptPolicy,
			"default", policy.String())
	}

	start := time.Now()
	slog.Info("Starting build",
		"places", total,
		"script_policy", policy.String(),
		"jobs", b.cfg.JobsNumber,
	)

	if err = b.clear(ctx, pool); err != nil {
		return stats, err
	}

	src := newPgSource(pool)
	cache, err := newAncestorCache(src, b.cfg.Build.AncestorCacheSize)
	if err != nil {
		return stats, CacheError(b.cfg.Build.AncestorCacheSize, err)
	}

	bar := newProgressBar(int(total), "Building names: ")
	pl := &pipeline{
		src:       src,
		cache:     cache,
		exp:       names.Expander{Policy: policy},
		jobs:      b.cfg.JobsNumber,
		batchSize: b.cfg.Database.BatchSize,
		progress:  barProgress(bar),
	}
	stats, err = pl.run(ctx, newPgSink(pool, b.cfg.Database.BatchSize))
	bar.Finish()
	if err != nil {
		return stats, err
	}

	if err = createIndexes(ctx, pool); err != nil {
		return stats, err
	}

	removed, err := removeDuplicates(ctx, pool)
	if err != nil {
		return stats, err
	}

	if err = vacuumAnalyze(ctx, pool); err != nil {
		return stats, err
	}

	report := newReport(stats, policy, time.Since(start))
	report.DuplicatesRemoved = removed
	report.CacheHits = cache.hits
	report.CacheMisses = cache.misses
	if err = b.countRows(ctx, &report); err != nil {
		return stats, err
	}
	if err = report.save(b.cfg.StatsPath()); err != nil {
		return stats, err
	}

	printSummary(report)
	slog.Info("Build complete",
		"places", stats.Places,
		"names", report.GeoNames,
		"duplicates", removed,
		"duration", report.Duration,
	)
	return stats, nil
}

// clear removes old rows and indexes from geolookup tables. Indexes
// are created again after all rows are saved.
func (b *builder) clear(ctx context.Context, pool *pgxpool.Pool) error {
	if err := b.operator.TruncateTables(ctx, lookupTables...); err != nil {
		return ClearTablesError(err)
	}
	for _, idx := range schema.LookupIndexes() {
		if _, err := pool.Exec(ctx, idx.DropSQL()); err != nil {
			return IndexError(idx.Name, err)
		}
	}
	return nil
}

func createIndexes(ctx context.Context, pool *pgxpool.Pool) error {
	indexes := schema.LookupIndexes()
	bar := newProgressBar(len(indexes), "Creating indexes: ")
	defer bar.Finish()

	for _, idx := range indexes {
		slog.Info("Creating index", "name", idx.Name)
		if _, err := pool.Exec(ctx, idx.CreateSQL()); err != nil {
			return IndexError(idx.Name, err)
		}
		bar.Increment()
	}
	return nil
}

// removeDuplicates keeps only the first of geo_names rows that share
// the same row key.
func removeDuplicates(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	tag, err := pool.Exec(ctx, dedupQuery)
	if err != nil {
		return 0, DedupError(err)
	}
	return tag.RowsAffected(), nil
}

// vacuumAnalyze reclaims space left by removed duplicates and updates
// planner statistics. VACUUM cannot run inside a transaction.
func vacuumAnalyze(ctx context.Context, pool *pgxpool.Pool) error {
	start := time.Now()
	for _, t := range lookupTables {
		if _, err := pool.Exec(ctx, "VACUUM ANALYZE "+t); err != nil {
			return VacuumError(t, err)
		}
	}
	slog.Info("VACUUM ANALYZE completed",
		"tables", len(lookupTables),
		"duration", time.Since(start).String(),
	)
	return nil
}

func (b *builder) countRows(ctx context.Context, r *Report) error {
	counts := []struct {
		table string
		res   *int64
	}{
		{"geo_infos", &r.GeoInfos},
		{"geo_names", &r.GeoNames},
		{"geo_links", &r.GeoLinks},
	}
	for _, v := range counts {
		n, err := b.operator.CountRows(ctx, v.table)
		if err != nil {
			return err
		}
		*v.res = n
	}
	return nil
}

func printSummary(r Report) {
	gn.Info(`Build complete
Places: <em>%s</em>, names: <em>%s</em>, links: <em>%s</em>
Duplicates removed: %s
Elapsed time: <em>%s</em>
`,
		humanize.Comma(r.GeoInfos),
		humanize.Comma(r.GeoNames),
		humanize.Comma(r.GeoLinks),
		humanize.Comma(r.DuplicatesRemoved),
		r.Duration,
	)

	issues := r.MissingLevel + r.InfoNameFallback +
		r.Stats.ScriptMismatch.Total()
	if issues == 0 {
		return
	}
	gn.Warn("Missing levels: %d, display name fallbacks: %d, "+
		"script mismatches: %d, see <em>%s</em>",
		r.MissingLevel, r.InfoNameFallback,
		r.Stats.ScriptMismatch.Total(), config.StatsFile,
	)
}
