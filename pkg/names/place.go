package names

import (
	"strconv"
	"strings"

	"github.com/TomiHiltunen/geohash-golang"
	"github.com/gnames/gnuuid"
	"github.com/golang/geo/s2"
	"github.com/google/uuid"
)

const (
	// GeohashPrecision is the length of geohash strings in geo infos.
	GeohashPrecision = 8

	// S2Level is the level of S2 cells used for reverse lookups. Level 10
	// cells are about 10x10 km.
	S2Level = 10

	// DisplayLang is the language assigned to rows built from place
	// display names.
	DisplayLang = "en"
)

// Place is a record of the geoname database with resolved ancestor ids.
type Place struct {
	ID          int64
	Name        string
	ASCIIName   string
	Latitude    float64
	Longitude   float64
	Population  int64
	FeatureCode string
	FeatureName string
	Admin4ID    int64
	Admin3ID    int64
	Admin2ID    int64
	Admin1ID    int64
	CountryID   int64
}

// Chain returns the place id followed by ids of its administrative
// areas from the smallest to the largest. Missing levels are 0.
func (p Place) Chain() []int64 {
	return []int64{
		p.ID, p.Admin4ID, p.Admin3ID, p.Admin2ID, p.Admin1ID, p.CountryID,
	}
}

// Ancestors returns non-zero ids of the chain.
func (p Place) Ancestors() []int64 {
	var res []int64
	for _, id := range p.Chain() {
		if id != 0 {
			res = append(res, id)
		}
	}
	return res
}

// GeoInfo is the geolookup record of a place.
type GeoInfo struct {
	ID          int64
	Latitude    float64
	Longitude   float64
	Population  int64
	FeatureCode string
	FeatureName string
	Geohash     string
	S2Cell      string
}

// GeoName is a searchable, fully qualified name of a place.
type GeoName struct {
	GeoID      int64
	Lang       string
	Name       string
	FullName   string
	Importance int64
	// RowKey is UUID v5 of all other fields, identical rows share it.
	RowKey uuid.UUID
}

// NewGeoName creates a GeoName and computes its RowKey.
func NewGeoName(
	geoID int64,
	lang, name, fullName string,
	importance int64,
) GeoName {
	key := strings.Join([]string{
		strconv.FormatInt(geoID, 10),
		lang,
		name,
		fullName,
		strconv.FormatInt(importance, 10),
	}, "|")
	return GeoName{
		GeoID:      geoID,
		Lang:       lang,
		Name:       name,
		FullName:   fullName,
		Importance: importance,
		RowKey:     gnuuid.New(key),
	}
}

// PlaceRows are all geolookup records produced for one place.
type PlaceRows struct {
	Info  GeoInfo
	Links []string
	Names []GeoName
	Stats Stats
}

// NewGeoInfo converts a place into its geolookup record.
func NewGeoInfo(p Place) GeoInfo {
	ll := s2.LatLngFromDegrees(p.Latitude, p.Longitude)
	cell := s2.CellIDFromLatLng(ll).Parent(S2Level)
	return GeoInfo{
		ID:          p.ID,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Population:  p.Population,
		FeatureCode: p.FeatureCode,
		FeatureName: p.FeatureName,
		Geohash: geohash.EncodeWithPrecision(
			p.Latitude, p.Longitude, GeohashPrecision,
		),
		S2Cell: cell.ToToken(),
	}
}

// ProcessPlace builds geolookup rows of a place. The records must
// include names of the place and of its ancestors. Every alternate
// name of the place gets an expanded row, then display and ASCII names
// add two more rows. Rows without a name of the place itself are
// skipped.
func ProcessPlace(
	p Place,
	alts []AlternateName,
	displays []DisplayName,
	exp Expander,
) PlaceRows {
	chain := p.Chain()
	ix, links, stats := BuildIndex(chain, alts, displays)
	res := PlaceRows{
		Info:  NewGeoInfo(p),
		Links: links,
	}

	for _, alt := range ix.Names(p.ID) {
		full, st := exp.Expand(ix, FromAlternate(alt), chain)
		stats.Merge(st)
		if alt.Text == "" {
			continue
		}
		res.Names = append(res.Names,
			NewGeoName(p.ID, alt.Lang, alt.Text, full, p.Population))
	}

	leaf, _ := ix.Display(p.ID)
	for _, useASCII := range []bool{false, true} {
		own := leaf.Name
		if useASCII {
			own = leaf.ASCIIName
		}
		// without its own name the first fragment belongs to an ancestor
		if own == "" {
			continue
		}
		short, full := ExpandDisplay(ix, chain, useASCII)
		res.Names = append(res.Names,
			NewGeoName(p.ID, DisplayLang, short, full, p.Population))
	}

	stats.Places = 1
	stats.Names = len(res.Names)
	res.Stats = stats
	return res
}
