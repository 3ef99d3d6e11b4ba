// Package schema provides database models for GeoDB.
//
// place_infos and place_names keep geonames dump records. geo_infos,
// geo_names and geo_links are geolookup tables generated from them and
// exported to SQLite.
package schema

import "github.com/google/uuid"

// PlaceInfo is a record of allCountries.txt with resolved ids of
// administrative areas.
type PlaceInfo struct {
	// ID is the geonameid.
	ID int64 `gorm:"primaryKey;autoIncrement:false"`

	// Name of the place, can contain any script.
	Name string `gorm:"type:varchar(200);not null"`

	// ASCIIName is the name in plain ASCII characters.
	ASCIIName string `gorm:"column:ascii_name;type:varchar(200)"`

	Latitude  float64
	Longitude float64

	// FeatureClass is one letter class (A, P, H ...).
	FeatureClass string `gorm:"type:varchar(1)"`

	// FeatureCode is the geonames feature code (ADM1, PPLA ...).
	FeatureCode string `gorm:"type:varchar(10)"`

	// FeatureName is a human-readable description of the feature.
	FeatureName string `gorm:"type:varchar(255)"`

	// CountryCode is ISO-3166 2-letter country code.
	CountryCode string `gorm:"type:varchar(2)"`

	Admin1Code string `gorm:"column:admin1_code;type:varchar(20)"`
	Admin2Code string `gorm:"column:admin2_code;type:varchar(80)"`
	Admin3Code string `gorm:"column:admin3_code;type:varchar(20)"`
	Admin4Code string `gorm:"column:admin4_code;type:varchar(20)"`

	// CountryID and AdminNID are geonameids of administrative areas that
	// contain the place, 0 if unknown.
	CountryID int64 `gorm:"column:country_id"`
	Admin1ID  int64 `gorm:"column:admin1_id"`
	Admin2ID  int64 `gorm:"column:admin2_id"`
	Admin3ID  int64 `gorm:"column:admin3_id"`
	Admin4ID  int64 `gorm:"column:admin4_id"`

	Population int64
	Timezone   string `gorm:"type:varchar(40)"`

	// ModDate is the date of the last modification in yyyy-MM-dd format.
	ModDate string `gorm:"type:varchar(10)"`
}

// PlaceName is a record of alternateNames.txt.
type PlaceName struct {
	// ID is the alternateNameId.
	ID int64 `gorm:"primaryKey;autoIncrement:false"`

	// GeonameID refers to PlaceInfo.
	GeonameID int64 `gorm:"not null"`

	// ISOLanguage is a language code, or a pseudo code like 'post',
	// 'link', 'iata'. Empty when unknown.
	ISOLanguage string `gorm:"column:iso_language;type:varchar(7)"`

	Name         string `gorm:"type:varchar(400);not null"`
	IsPreferred  bool
	IsShort      bool
	IsColloquial bool
	IsHistoric   bool
}

// GeoInfo is a geolookup record of a place.
type GeoInfo struct {
	// ID is the geonameid.
	ID          int64 `gorm:"primaryKey;autoIncrement:false"`
	Latitude    float64
	Longitude   float64
	Population  int64
	FeatureCode string `gorm:"type:varchar(10)"`
	FeatureName string `gorm:"type:varchar(255)"`

	// Geohash of the coordinates.
	Geohash string `gorm:"type:varchar(12)"`

	// S2Cell is the token of the S2 cell containing the place.
	S2Cell string `gorm:"column:s2_cell;type:varchar(16)"`
}

// GeoName is a fully qualified name of a place like
// "Springfield, Illinois, United States".
type GeoName struct {
	ID         int64  `gorm:"primaryKey"`
	GeoID      int64  `gorm:"not null"`
	Lang       string `gorm:"type:varchar(7)"`
	Name       string `gorm:"type:varchar(400);not null"`
	FullName   string `gorm:"type:text;not null"`
	Importance int64

	// RowKey is UUID v5 of all other fields except ID. Duplicate rows
	// share the same key.
	RowKey uuid.UUID `gorm:"type:uuid;not null"`
}

// GeoLink is a URL about a place, usually a Wikipedia article.
type GeoLink struct {
	ID    int64  `gorm:"primaryKey"`
	GeoID int64  `gorm:"not null"`
	URL   string `gorm:"column:url;type:text;not null"`
}
