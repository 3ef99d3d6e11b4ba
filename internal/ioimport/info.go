package ioimport

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gnames/geodb/pkg/schema"
	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/jackc/pgx/v5/pgxpool"
)

// placeFields is the number of columns in allCountries and cities1000.
const placeFields = 19

var errMalformed = errors.New("malformed record")

var placeColumns = []string{
	"id", "name", "ascii_name", "latitude", "longitude",
	"feature_class", "feature_code", "feature_name", "country_code",
	"admin1_code", "admin2_code", "admin3_code", "admin4_code",
	"country_id", "admin1_id", "admin2_id", "admin3_id", "admin4_id",
	"population", "timezone", "mod_date",
}

// placeResult tells what happened with a record during parsing.
type placeResult struct {
	unresolved int
	raised     bool
}

// parsePlace converts fields of an allCountries line into PlaceInfo.
// Codes of administrative areas, country and feature are resolved to
// ids and names. Admin3 and admin4 have no lookup tables in geonames
// dumps, so their ids stay 0.
func parsePlace(
	f []string,
	lk *lookups,
) (schema.PlaceInfo, placeResult, error) {
	var res placeResult
	var p schema.PlaceInfo
	if len(f) < placeFields {
		return p, res, errMalformed
	}

	var err error
	if p.ID, err = strconv.ParseInt(f[0], 10, 64); err != nil {
		return p, res, errMalformed
	}
	if f[1] == "" {
		return p, res, errMalformed
	}
	if p.Latitude, err = strconv.ParseFloat(f[4], 64); err != nil {
		return p, res, errMalformed
	}
	if p.Longitude, err = strconv.ParseFloat(f[5], 64); err != nil {
		return p, res, errMalformed
	}

	p.Name = gnlib.FixUtf8(f[1])
	p.ASCIIName = f[2]
	p.FeatureClass = f[6]
	p.FeatureCode = f[7]
	p.CountryCode = f[8]
	p.Admin1Code = f[10]
	p.Admin2Code = f[11]
	p.Admin3Code = f[12]
	p.Admin4Code = f[13]
	p.Population, _ = strconv.ParseInt(f[14], 10, 64)
	p.Timezone = f[17]
	p.ModDate = f[18]

	var ok bool
	if p.CountryID, ok = lk.countryID(p.CountryCode); !ok {
		slog.Debug("Unknown country code", "id", p.ID, "code", p.CountryCode)
		res.unresolved++
	}
	if p.Admin1ID, ok = lk.admin1ID(p.CountryCode, p.Admin1Code); !ok {
		slog.Debug("Unknown admin1 code",
			"id", p.ID, "code", p.CountryCode+"."+p.Admin1Code)
		res.unresolved++
	}
	p.Admin2ID, ok = lk.admin2ID(p.CountryCode, p.Admin1Code, p.Admin2Code)
	if !ok {
		slog.Debug("Unknown admin2 code", "id", p.ID,
			"code", p.CountryCode+"."+p.Admin1Code+"."+p.Admin2Code)
		res.unresolved++
	}
	p.FeatureName, ok = lk.featureName(p.FeatureClass, p.FeatureCode)
	if !ok {
		slog.Debug("Unknown feature code",
			"id", p.ID, "code", p.FeatureClass+"."+p.FeatureCode)
		res.unresolved++
	}

	if pop, ok := lk.populations[p.ID]; ok && pop > p.Population {
		if p.Population != 0 {
			slog.Warn("Population mismatch",
				"id", p.ID, "name", p.Name,
				"record", p.Population, "lookup", pop)
		}
		p.Population = pop
		res.raised = true
	}

	return p, res, nil
}

func placeRow(p schema.PlaceInfo) []any {
	return []any{
		p.ID, p.Name, p.ASCIIName, p.Latitude, p.Longitude,
		p.FeatureClass, p.FeatureCode, p.FeatureName, p.CountryCode,
		p.Admin1Code, p.Admin2Code, p.Admin3Code, p.Admin4Code,
		p.CountryID, p.Admin1ID, p.Admin2ID, p.Admin3ID, p.Admin4ID,
		p.Population, p.Timezone, p.ModDate,
	}
}

// infoStats summarizes import of place_infos.
type infoStats struct {
	places, skipped, unresolved, raised int
}

// importInfos streams allCountries into place_infos.
func (im *importer) importInfos(
	ctx context.Context,
	pool *pgxpool.Pool,
	lk *lookups,
) (infoStats, error) {
	var stats infoStats
	src, err := openSource(im.cfg.Import.SourceDir, fileAllCountries)
	if err != nil {
		return stats, err
	}
	defer src.Close()

	bar := newProgressBar(src.Size, "Importing places: ")
	defer bar.Finish()

	w := newBatchWriter(pool, "place_infos", placeColumns,
		im.cfg.Database.BatchSize)

	err = scanTSV(bar.NewProxyReader(src), func(f []string) error {
		p, res, err := parsePlace(f, lk)
		if err != nil {
			stats.skipped++
			slog.Debug("Skipping place record", "fields", len(f), "id", f[0])
			return nil
		}
		stats.unresolved += res.unresolved
		if res.raised {
			stats.raised++
		}
		stats.places++
		return w.add(ctx, placeRow(p))
	})
	if err != nil {
		var gnErr *gn.Error
		if errors.As(err, &gnErr) {
			return stats, err
		}
		return stats, ReadSourceError(src.Name, err)
	}
	if err = w.flush(ctx); err != nil {
		return stats, err
	}
	slog.Info("Saved records", "table", "place_infos", "rows", w.saved)
	return stats, nil
}
