package schema

import (
	"gorm.io/gorm"
)

// DumpModels are tables with geonames dump records.
func DumpModels() []any {
	return []any{
		&PlaceInfo{},
		&PlaceName{},
	}
}

// LookupModels are generated geolookup tables.
func LookupModels() []any {
	return []any{
		&GeoInfo{},
		&GeoName{},
		&GeoLink{},
	}
}

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return append(DumpModels(), LookupModels()...)
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// MigrateLookup creates geolookup tables only. It is used for the SQLite
// export.
func MigrateLookup(db *gorm.DB) error {
	return db.AutoMigrate(LookupModels()...)
}
