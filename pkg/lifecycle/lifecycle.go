// Package lifecycle defines the stages of GeoDB data preparation:
// schema creation, import of geonames dumps, generation of geolookup
// tables and their export to SQLite.
package lifecycle

import (
	"context"

	"github.com/gnames/geodb/pkg/names"
)

// ImportStats summarizes an import of geonames dump files.
type ImportStats struct {
	// Places is the number of imported geoname records.
	Places int `yaml:"places"`

	// Names is the number of imported alternate names.
	Names int `yaml:"names"`

	// Skipped counts records with missing or malformed key fields.
	Skipped int `yaml:"skipped"`

	// PopulationRaised counts places whose population was taken from
	// cities or country tables.
	PopulationRaised int `yaml:"population_raised"`

	// Unresolved counts admin, country or feature codes that were not
	// found in lookup tables.
	Unresolved int `yaml:"unresolved"`
}

// Importer loads geonames dump files into place_infos and place_names.
type Importer interface {
	Import(ctx context.Context) (ImportStats, error)
}

// Builder generates geo_infos, geo_names and geo_links from imported
// records. It returns statistics about the quality of generated names.
type Builder interface {
	Build(ctx context.Context) (names.Stats, error)
}

// Exporter writes geolookup tables to a SQLite file and optionally
// uploads it to S3-compatible storage. It returns the path of the file.
type Exporter interface {
	Export(ctx context.Context) (string, error)
}
