package ioschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatCollationSQL verifies SQL formatting.
func TestFormatCollationSQL(t *testing.T) {
	template := `ALTER TABLE %s ALTER COLUMN %s TYPE %s COLLATE "C"`

	tests := []struct {
		name     string
		table    string
		column   string
		colType  string
		expected string
	}{
		{
			name:    "geo_names table",
			table:   "geo_names",
			column:  "name",
			colType: "VARCHAR(400)",
			expected: `ALTER TABLE geo_names ALTER COLUMN name ` +
				`TYPE VARCHAR(400) COLLATE "C"`,
		},
		{
			name:    "place_names table",
			table:   "place_names",
			column:  "name",
			colType: "TEXT",
			expected: `ALTER TABLE place_names ALTER COLUMN name ` +
				`TYPE TEXT COLLATE "C"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatCollationSQL(template,
				tt.table, tt.column, tt.colType)
			assert.Equal(t, tt.expected, result)
		})
	}
}
