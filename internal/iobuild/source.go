package iobuild

import (
	"context"

	"github.com/gnames/geodb/pkg/names"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecordSource provides imported geonames records to the builder.
type RecordSource interface {
	// Places returns up to limit places with id larger than afterID,
	// ordered by id.
	Places(ctx context.Context, afterID int64, limit int) ([]names.Place, error)

	// AlternateNames returns alternate names of the given places in the
	// order of their ids.
	AlternateNames(ctx context.Context, ids []int64) ([]names.AlternateName, error)

	// DisplayNames returns name and asciiname of the given places.
	DisplayNames(ctx context.Context, ids []int64) ([]names.DisplayName, error)
}

// pgSource reads records from place_infos and place_names.
type pgSource struct {
	pool *pgxpool.Pool
}

func newPgSource(pool *pgxpool.Pool) *pgSource {
	return &pgSource{pool: pool}
}

const placesQuery = `
SELECT id, name, ascii_name, latitude, longitude, population,
    feature_code, feature_name,
    admin4_id, admin3_id, admin2_id, admin1_id, country_id
  FROM place_infos
  WHERE id > $1
  ORDER BY id
  LIMIT $2`

func (s *pgSource) Places(
	ctx context.Context,
	afterID int64,
	limit int,
) ([]names.Place, error) {
	rows, err := s.pool.Query(ctx, placesQuery, afterID, limit)
	if err != nil {
		return nil, ReadPlacesError(afterID, err)
	}
	defer rows.Close()

	res := make([]names.Place, 0, limit)
	for rows.Next() {
		var p names.Place
		err = rows.Scan(
			&p.ID, &p.Name, &p.ASCIIName, &p.Latitude, &p.Longitude,
			&p.Population, &p.FeatureCode, &p.FeatureName,
			&p.Admin4ID, &p.Admin3ID, &p.Admin2ID, &p.Admin1ID, &p.CountryID,
		)
		if err != nil {
			return nil, ReadPlacesError(afterID, err)
		}
		res = append(res, p)
	}
	if err = rows.Err(); err != nil {
		return nil, ReadPlacesError(afterID, err)
	}
	return res, nil
}

const namesQuery = `
SELECT id, geoname_id, iso_language, name,
    is_preferred, is_short, is_colloquial, is_historic
  FROM place_names
  WHERE geoname_id = ANY($1)
  ORDER BY geoname_id, id`

func (s *pgSource) AlternateNames(
	ctx context.Context,
	ids []int64,
) ([]names.AlternateName, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, namesQuery, ids)
	if err != nil {
		return nil, ReadNamesError(len(ids), err)
	}
	defer rows.Close()

	var res []names.AlternateName
	for rows.Next() {
		var a names.AlternateName
		err = rows.Scan(
			&a.ID, &a.GeoID, &a.Lang, &a.Text,
			&a.IsPreferred, &a.IsShort, &a.IsColloquial, &a.IsHistoric,
		)
		if err != nil {
			return nil, ReadNamesError(len(ids), err)
		}
		res = append(res, a)
	}
	if err = rows.Err(); err != nil {
		return nil, ReadNamesError(len(ids), err)
	}
	return res, nil
}

const displayQuery = `
SELECT id, name, ascii_name
  FROM place_infos
  WHERE id = ANY($1)`

func (s *pgSource) DisplayNames(
	ctx context.Context,
	ids []int64,
) ([]names.DisplayName, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, displayQuery, ids)
	if err != nil {
		return nil, ReadNamesError(len(ids), err)
	}
	defer rows.Close()

	var res []names.DisplayName
	for rows.Next() {
		var d names.DisplayName
		if err = rows.Scan(&d.GeoID, &d.Name, &d.ASCIIName); err != nil {
			return nil, ReadNamesError(len(ids), err)
		}
		res = append(res, d)
	}
	if err = rows.Err(); err != nil {
		return nil, ReadNamesError(len(ids), err)
	}
	return res, nil
}
