package ioexport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/geodb/pkg/names"
	"github.com/gnames/geodb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "geodata.db")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("old file"), 0644))

	gdb, sqlDB, err := openSQLite(path)
	require.NoError(t, err)
	defer sqlDB.Close()

	gn := names.NewGeoName(4250542, "en", "Springfield",
		"Springfield, Illinois, United States", 116250)
	rows := []schema.GeoName{{
		ID: 10, GeoID: gn.GeoID, Lang: gn.Lang, Name: gn.Name,
		FullName: gn.FullName, Importance: gn.Importance, RowKey: gn.RowKey,
	}}
	require.NoError(t, gdb.CreateInBatches(rows, sqliteBatch).Error)
	require.NoError(t, createIndexes(sqlDB, path))

	var res schema.GeoName
	require.NoError(t, gdb.First(&res, "name = ?", "Springfield").Error)
	assert.Equal(t, int64(10), res.ID)
	assert.Equal(t, gn.RowKey, res.RowKey)
	assert.Equal(t, "Springfield, Illinois, United States", res.FullName)

	var count int
	err = sqlDB.QueryRow(`
SELECT count(*) FROM sqlite_master
  WHERE type = 'index' AND name LIKE 'idx_geo_%'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, len(schema.LookupIndexes()), count)
}
