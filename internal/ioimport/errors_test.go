package ioimport

import (
	"errors"
	"testing"

	"github.com/gnames/geodb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		wrap bool
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError, false},
		{"not found", SourceNotFoundError("/data", "allCountries"),
			errcode.ImportSourceNotFoundError, false},
		{"open", OpenSourceError("/data/a.zip", cause),
			errcode.ImportOpenSourceError, true},
		{"read", ReadSourceError("a.txt", cause),
			errcode.ImportReadSourceError, true},
		{"lookup", LookupError("admin2Codes"), errcode.ImportLookupError, false},
		{"copy", CopyError("place_infos", cause), errcode.ImportCopyError, true},
		{"index", IndexError("idx", cause), errcode.ImportIndexError, true},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			gnErr, ok := v.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			require.NotNil(t, gnErr.Err)
			if v.wrap {
				assert.ErrorIs(t, gnErr.Err, cause)
			}
		})
	}
}
