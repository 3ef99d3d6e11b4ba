package ioimport

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"github.com/gnames/geodb/pkg/schema"
	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/jackc/pgx/v5/pgxpool"
)

// altNameFields is the minimal number of columns of alternateNames.
// Newer dumps add 'from' and 'to' periods of usage.
const altNameFields = 8

// maxNameLen is the size of place_names.name column.
const maxNameLen = 400

var nameColumns = []string{
	"id", "geoname_id", "iso_language", "name",
	"is_preferred", "is_short", "is_colloquial", "is_historic",
}

// parsePlaceName converts fields of an alternateNames line.
func parsePlaceName(f []string) (schema.PlaceName, error) {
	var n schema.PlaceName
	if len(f) < altNameFields {
		return n, errMalformed
	}
	var err error
	if n.ID, err = strconv.ParseInt(f[0], 10, 64); err != nil {
		return n, errMalformed
	}
	if n.GeonameID, err = strconv.ParseInt(f[1], 10, 64); err != nil {
		return n, errMalformed
	}
	n.Name = gnlib.FixUtf8(f[3])
	if n.Name == "" || utf8.RuneCountInString(n.Name) > maxNameLen {
		return n, errMalformed
	}
	n.ISOLanguage = f[2]
	n.IsPreferred = flag(f[4])
	n.IsShort = flag(f[5])
	n.IsColloquial = flag(f[6])
	n.IsHistoric = flag(f[7])
	return n, nil
}

func nameRow(n schema.PlaceName) []any {
	return []any{
		n.ID, n.GeonameID, n.ISOLanguage, n.Name,
		n.IsPreferred, n.IsShort, n.IsColloquial, n.IsHistoric,
	}
}

// importNames streams alternateNames into place_names.
func (im *importer) importNames(
	ctx context.Context,
	pool *pgxpool.Pool,
) (int, int, error) {
	var count, skipped int
	src, err := openSource(im.cfg.Import.SourceDir, fileAlternateNames)
	if err != nil {
		return 0, 0, err
	}
	defer src.Close()

	bar := newProgressBar(src.Size, "Importing names: ")
	defer bar.Finish()

	w := newBatchWriter(pool, "place_names", nameColumns,
		im.cfg.Database.BatchSize)

	err = scanTSV(bar.NewProxyReader(src), func(f []string) error {
		n, err := parsePlaceName(f)
		if err != nil {
			skipped++
			slog.Debug("Skipping alternate name record", "id", f[0])
			return nil
		}
		count++
		return w.add(ctx, nameRow(n))
	})
	if err != nil {
		var gnErr *gn.Error
		if errors.As(err, &gnErr) {
			return count, skipped, err
		}
		return count, skipped, ReadSourceError(src.Name, err)
	}
	if err = w.flush(ctx); err != nil {
		return count, skipped, err
	}
	slog.Info("Saved records", "table", "place_names", "rows", w.saved)
	return count, skipped, nil
}
