package schema

import (
	"fmt"
	"strings"
)

// Index describes a secondary index. Indexes are created after bulk
// loads, so they are kept outside of GORM models.
type Index struct {
	Name    string
	Table   string
	Columns []string
}

// CreateSQL returns CREATE INDEX statement that works for PostgreSQL and
// SQLite.
func (idx Index) CreateSQL() string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		idx.Name, idx.Table, strings.Join(idx.Columns, ", "))
}

// DropSQL returns DROP INDEX statement.
func (idx Index) DropSQL() string {
	return "DROP INDEX IF EXISTS " + idx.Name
}

func (PlaceInfo) TableName() string { return "place_infos" }
func (PlaceName) TableName() string { return "place_names" }
func (GeoInfo) TableName() string   { return "geo_infos" }
func (GeoName) TableName() string   { return "geo_names" }
func (GeoLink) TableName() string   { return "geo_links" }

// IndexDDL returns indexes of place_infos.
func (PlaceInfo) IndexDDL() []Index {
	return []Index{
		{"idx_place_infos_feature", "place_infos",
			[]string{"feature_class", "feature_code"}},
	}
}

// IndexDDL returns indexes of place_names.
func (PlaceName) IndexDDL() []Index {
	return []Index{
		{"idx_place_names_geoname_id", "place_names", []string{"geoname_id"}},
	}
}

// IndexDDL returns indexes of geo_infos.
func (GeoInfo) IndexDDL() []Index {
	return []Index{
		{"idx_geo_infos_geohash", "geo_infos", []string{"geohash"}},
		{"idx_geo_infos_s2_cell", "geo_infos", []string{"s2_cell"}},
	}
}

// IndexDDL returns indexes of geo_names.
func (GeoName) IndexDDL() []Index {
	return []Index{
		{"idx_geo_names_geo_id", "geo_names", []string{"geo_id"}},
		{"idx_geo_names_lang", "geo_names", []string{"lang"}},
		{"idx_geo_names_importance", "geo_names", []string{"importance"}},
		{"idx_geo_names_name", "geo_names", []string{"name"}},
		{"idx_geo_names_row_key", "geo_names", []string{"row_key"}},
	}
}

// IndexDDL returns indexes of geo_links.
func (GeoLink) IndexDDL() []Index {
	return []Index{
		{"idx_geo_links_geo_id", "geo_links", []string{"geo_id"}},
	}
}

// LookupIndexes returns indexes of all geolookup tables.
func LookupIndexes() []Index {
	var res []Index
	res = append(res, GeoInfo{}.IndexDDL()...)
	res = append(res, GeoName{}.IndexDDL()...)
	res = append(res, GeoLink{}.IndexDDL()...)
	return res
}
