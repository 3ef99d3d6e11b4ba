package schema_test

import (
	"testing"

	"github.com/gnames/geodb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

type indexer interface {
	TableName() string
	IndexDDL() []schema.Index
}

func TestTableNames(t *testing.T) {
	tests := []struct {
		model indexer
		name  string
	}{
		{schema.PlaceInfo{}, "place_infos"},
		{schema.PlaceName{}, "place_names"},
		{schema.GeoInfo{}, "geo_infos"},
		{schema.GeoName{}, "geo_names"},
		{schema.GeoLink{}, "geo_links"},
	}
	for _, v := range tests {
		assert.Equal(t, v.name, v.model.TableName())
		for _, idx := range v.model.IndexDDL() {
			assert.Equal(t, v.name, idx.Table, idx.Name)
		}
	}
}

func TestIndexSQL(t *testing.T) {
	idx := schema.Index{
		Name:    "idx_place_infos_feature",
		Table:   "place_infos",
		Columns: []string{"feature_class", "feature_code"},
	}
	assert.Equal(t,
		"CREATE INDEX IF NOT EXISTS idx_place_infos_feature "+
			"ON place_infos (feature_class, feature_code)",
		idx.CreateSQL(),
	)
	assert.Equal(t, "DROP INDEX IF EXISTS idx_place_infos_feature", idx.DropSQL())
}

func TestLookupIndexes(t *testing.T) {
	idxs := schema.LookupIndexes()
	assert.Len(t, idxs, 8)

	seen := make(map[string]struct{})
	for _, v := range idxs {
		_, dup := seen[v.Name]
		assert.False(t, dup, v.Name)
		seen[v.Name] = struct{}{}
	}
	_, ok := seen["idx_geo_names_row_key"]
	assert.True(t, ok)
}

func TestModels(t *testing.T) {
	assert.Len(t, schema.DumpModels(), 2)
	assert.Len(t, schema.LookupModels(), 3)
	assert.Len(t, schema.AllModels(), 5)
}
