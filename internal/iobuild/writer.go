package iobuild

import (
	"context"

	"github.com/gnames/geodb/pkg/names"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultBatchSize = 50_000

var (
	infoColumns = []string{
		"id", "latitude", "longitude", "population",
		"feature_code", "feature_name", "geohash", "s2_cell",
	}
	nameColumns = []string{
		"geo_id", "lang", "name", "full_name", "importance", "row_key",
	}
	linkColumns = []string{"geo_id", "url"}
)

// copyBuffer keeps rows of one table until they are saved with COPY.
type copyBuffer struct {
	table   string
	columns []string
	rows    [][]any
	saved   int64
}

// pgSink saves generated rows to geo_infos, geo_names and geo_links.
type pgSink struct {
	pool      *pgxpool.Pool
	batchSize int
	infos     *copyBuffer
	names     *copyBuffer
	links     *copyBuffer
}

func newPgSink(pool *pgxpool.Pool, batchSize int) *pgSink {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &pgSink{
		pool:      pool,
		batchSize: batchSize,
		infos:     &copyBuffer{table: "geo_infos", columns: infoColumns},
		names:     &copyBuffer{table: "geo_names", columns: nameColumns},
		links:     &copyBuffer{table: "geo_links", columns: linkColumns},
	}
}

func (s *pgSink) write(ctx context.Context, rows names.PlaceRows) error {
	i := rows.Info
	s.infos.rows = append(s.infos.rows, []any{
		i.ID, i.Latitude, i.Longitude, i.Population,
		i.FeatureCode, i.FeatureName, i.Geohash, i.S2Cell,
	})
	for _, n := range rows.Names {
		s.names.rows = append(s.names.rows, []any{
			n.GeoID, n.Lang, n.Name, n.FullName, n.Importance,
			n.RowKey.String(),
		})
	}
	for _, url := range rows.Links {
		s.links.rows = append(s.links.rows, []any{i.ID, url})
	}

	for _, b := range s.buffers() {
		if len(b.rows) >= s.batchSize {
			if err := s.save(ctx, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *pgSink) flush(ctx context.Context) error {
	for _, b := range s.buffers() {
		if err := s.save(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (s *pgSink) buffers() []*copyBuffer {
	return []*copyBuffer{s.infos, s.names, s.links}
}

func (s *pgSink) save(ctx context.Context, b *copyBuffer) error {
	if len(b.rows) == 0 {
		return nil
	}
	n, err := s.pool.CopyFrom(
		ctx,
		pgx.Identifier{b.table},
		b.columns,
		pgx.CopyFromRows(b.rows),
	)
	if err != nil {
		return WriteError(b.table, err)
	}
	b.saved += n
	b.rows = b.rows[:0]
	return nil
}
