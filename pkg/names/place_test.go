package names_test

import (
	"testing"

	"github.com/gnames/geodb/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func springfieldPlace() names.Place {
	return names.Place{
		ID:          100,
		Name:        "Springfield",
		ASCIIName:   "Springfield",
		Latitude:    39.80172,
		Longitude:   -89.64371,
		Population:  116250,
		FeatureCode: "P.PPLA",
		FeatureName: "seat of a first-order administrative division",
		Admin1ID:    200,
		CountryID:   300,
	}
}

func TestPlaceChain(t *testing.T) {
	p := springfieldPlace()
	assert.Equal(t, []int64{100, 0, 0, 0, 200, 300}, p.Chain())
	assert.Equal(t, []int64{100, 200, 300}, p.Ancestors())
}

func TestProcessPlace(t *testing.T) {
	p := springfieldPlace()
	alts := []names.AlternateName{
		altName(1, 100, "en", "Springfield"),
		altName(2, 100, "ru", "Спрингфилд"),
		altName(3, 100, "", "Springfield IL"),
		altName(4, 100, "link", "https://en.wikipedia.org/wiki/Springfield,_Illinois"),
		altName(5, 100, "fr", ""),
		altName(6, 200, "en", "Illinois"),
		altName(7, 200, "ru", "Иллинойс"),
		altName(8, 300, "en", "United States"),
		altName(9, 300, "ru", "США"),
	}
	res := names.ProcessPlace(p, alts, springfieldDisplays(), names.Expander{})

	assert.Equal(t, int64(100), res.Info.ID)
	assert.Len(t, res.Info.Geohash, names.GeohashPrecision)
	assert.NotEmpty(t, res.Info.S2Cell)
	assert.Equal(t,
		[]string{"https://en.wikipedia.org/wiki/Springfield,_Illinois"}, res.Links)

	// two named alternates, display and ascii rows
	require.Len(t, res.Names, 4)
	full := make([]string, len(res.Names))
	for i, v := range res.Names {
		full[i] = v.FullName
		assert.Equal(t, p.Population, v.Importance)
		assert.Equal(t, p.ID, v.GeoID)
	}
	assert.Equal(t, []string{
		"Springfield, Illinois, United States",
		"Спрингфилд, Иллинойс, США",
		"Springfield, Illinois, United States",
		"Springfield, Illinois, United States",
	}, full)
	assert.Equal(t, "ru", res.Names[1].Lang)
	assert.Equal(t, names.DisplayLang, res.Names[2].Lang)

	// the en alternate and display rows are identical
	assert.Equal(t, res.Names[0].RowKey, res.Names[2].RowKey)
	assert.NotEqual(t, res.Names[0].RowKey, res.Names[1].RowKey)

	assert.Equal(t, 1, res.Stats.Places)
	assert.Equal(t, 4, res.Stats.Names)
	assert.Equal(t, 1, res.Stats.EmptyLanguage)
}

func TestProcessPlaceNoNames(t *testing.T) {
	p := springfieldPlace()
	res := names.ProcessPlace(p, nil, nil, names.Expander{})
	assert.Empty(t, res.Names)
	assert.Equal(t, 1, res.Stats.Places)
	assert.Equal(t, 0, res.Stats.Names)
}

func TestProcessPlaceEmptyASCIIName(t *testing.T) {
	p := names.Place{ID: 100, Name: "Пушкино", Admin1ID: 200, CountryID: 300}
	displays := []names.DisplayName{
		{GeoID: 100, Name: "Пушкино"},
		{GeoID: 200, Name: "Московская область", ASCIIName: "Moskovskaya"},
		{GeoID: 300, Name: "Россия", ASCIIName: "Russia"},
	}
	res := names.ProcessPlace(p, nil, displays, names.Expander{})

	require.Len(t, res.Names, 1)
	assert.Equal(t, "Пушкино", res.Names[0].Name)
	assert.Equal(t, "Пушкино, Московская область, Россия", res.Names[0].FullName)
	for _, v := range res.Names {
		assert.NotEqual(t, "Moskovskaya", v.Name)
	}
}

func TestNewGeoName(t *testing.T) {
	a := names.NewGeoName(100, "en", "Springfield", "Springfield, Illinois", 10)
	b := names.NewGeoName(100, "en", "Springfield", "Springfield, Illinois", 10)
	c := names.NewGeoName(100, "en", "Springfield", "Springfield, Illinois", 11)
	assert.Equal(t, a.RowKey, b.RowKey)
	assert.NotEqual(t, a.RowKey, c.RowKey)
}
