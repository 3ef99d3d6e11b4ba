package iobuild

import (
	"time"

	"github.com/gnames/geodb/internal/iofs"
	"github.com/gnames/geodb/pkg/names"
	"github.com/gnames/gnfmt"
)

// Report is saved to stats.yaml after the build.
type Report struct {
	Date         string `yaml:"date"`
	ScriptPolicy string `yaml:"script_policy"`
	Duration     string `yaml:"duration"`

	names.Stats `yaml:",inline"`

	// Rows in geolookup tables after removal of duplicates.
	GeoInfos          int64 `yaml:"geo_infos"`
	GeoNames          int64 `yaml:"geo_names"`
	GeoLinks          int64 `yaml:"geo_links"`
	DuplicatesRemoved int64 `yaml:"duplicates_removed"`

	CacheHits   int `yaml:"ancestor_cache_hits"`
	CacheMisses int `yaml:"ancestor_cache_misses"`

	MultipleMatches map[string]int `yaml:"multiple_matches,omitempty"`
	PartialScript   map[string]int `yaml:"partial_script,omitempty"`
	ScriptMismatch  map[string]int `yaml:"script_mismatch,omitempty"`
}

func newReport(
	stats names.Stats,
	policy names.ScriptPolicy,
	dur time.Duration,
) Report {
	return Report{
		Date:            time.Now().Format(time.DateTime),
		ScriptPolicy:    policy.String(),
		Duration:        gnfmt.TimeString(dur.Seconds()),
		Stats:           stats,
		MultipleMatches: stats.MultipleMatches.Map(),
		PartialScript:   stats.PartialScript.Map(),
		ScriptMismatch:  stats.ScriptMismatch.Map(),
	}
}

func (r Report) save(path string) error {
	return iofs.WriteYAML(path, r)
}
