package ioimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlaceName(t *testing.T) {
	f := []string{"1", "4250542", "en", "Springfield", "1", "", "", "", "", ""}
	n, err := parsePlaceName(f)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)
	assert.Equal(t, int64(4250542), n.GeonameID)
	assert.Equal(t, "en", n.ISOLanguage)
	assert.Equal(t, "Springfield", n.Name)
	assert.True(t, n.IsPreferred)
	assert.False(t, n.IsShort)
	assert.False(t, n.IsColloquial)
	assert.False(t, n.IsHistoric)

	// older dumps have no period columns
	n, err = parsePlaceName([]string{"2", "5", "", "Name", "", "1", "1", "1"})
	require.NoError(t, err)
	assert.Empty(t, n.ISOLanguage)
	assert.True(t, n.IsShort)
	assert.True(t, n.IsColloquial)
	assert.True(t, n.IsHistoric)
}

func TestParsePlaceName_Malformed(t *testing.T) {
	tests := []struct {
		msg    string
		fields []string
	}{
		{"short", []string{"1", "2", "en"}},
		{"bad id", []string{"x", "2", "en", "Name", "", "", "", ""}},
		{"bad geoname id", []string{"1", "", "en", "Name", "", "", "", ""}},
		{"empty name", []string{"1", "2", "en", "", "", "", "", ""}},
		{"too long", []string{"1", "2", "link",
			strings.Repeat("a", maxNameLen+1), "", "", "", ""}},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			_, err := parsePlaceName(v.fields)
			assert.ErrorIs(t, err, errMalformed)
		})
	}
}

func TestNameRow(t *testing.T) {
	n, err := parsePlaceName([]string{"7", "8", "de", "Name", "1", "", "", "1"})
	require.NoError(t, err)
	row := nameRow(n)
	require.Len(t, row, len(nameColumns))
	assert.Equal(t, []any{int64(7), int64(8), "de", "Name",
		true, false, false, true}, row)
}
