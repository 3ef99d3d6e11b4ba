package ioimport

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultBatchSize = 50_000

// batchWriter accumulates rows and saves them with COPY when the batch
// is full.
type batchWriter struct {
	pool    *pgxpool.Pool
	table   string
	columns []string
	size    int
	rows    [][]any
	saved   int64
}

func newBatchWriter(
	pool *pgxpool.Pool,
	table string,
	columns []string,
	size int,
) *batchWriter {
	if size <= 0 {
		size = defaultBatchSize
	}
	return &batchWriter{
		pool:    pool,
		table:   table,
		columns: columns,
		size:    size,
		rows:    make([][]any, 0, size),
	}
}

func (w *batchWriter) add(ctx context.Context, row []any) error {
	w.rows = append(w.rows, row)
	if len(w.rows) < w.size {
		return nil
	}
	return w.flush(ctx)
}

func (w *batchWriter) flush(ctx context.Context) error {
	if len(w.rows) == 0 {
		return nil
	}
	n, err := w.pool.CopyFrom(
		ctx,
		pgx.Identifier{w.table},
		w.columns,
		pgx.CopyFromRows(w.rows),
	)
	if err != nil {
		return CopyError(w.table, err)
	}
	w.saved += n
	w.rows = w.rows[:0]
	return nil
}
