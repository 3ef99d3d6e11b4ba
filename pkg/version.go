// Package geodb creates a gazetteer of places with fully qualified names
// from geonames data.
package geodb

var (
	// Version of the application, set during build.
	Version = "v0.1.0"

	// Build timestamp, set during build.
	Build = "n/a"
)
