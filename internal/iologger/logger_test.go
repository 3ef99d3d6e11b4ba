package iologger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/geodb/internal/iologger"
	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/geodb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.want, iologger.ParseLevel(v.input), v.input)
	}
}

func TestNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	h := iologger.NewHandler(&buf, config.LogConfig{Format: "json", Level: "warn"})
	log := slog.New(h)

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown", "places", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "geodb", rec["app"])
	assert.EqualValues(t, 3, rec["places"])
}

func TestNewHandlerText(t *testing.T) {
	var buf bytes.Buffer
	h := iologger.NewHandler(&buf, config.LogConfig{Format: "text", Level: "debug"})
	slog.New(h).Debug("building", "policy", "skip")
	assert.Contains(t, buf.String(), "msg=building")
	assert.Contains(t, buf.String(), "policy=skip")
}

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	closeFn, err := iologger.Init(dir, cfg, false)
	require.NoError(t, err)
	slog.Info("first")
	require.NoError(t, closeFn())

	closeFn, err = iologger.Init(dir, cfg, true)
	require.NoError(t, err)
	slog.Info("second")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(iologger.LogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")

	closeFn, err = iologger.Init(dir, cfg, false)
	require.NoError(t, err)
	require.NoError(t, closeFn())
	data, err = os.ReadFile(iologger.LogPath(dir))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestInitFileMissingDir(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := filepath.Join(t.TempDir(), "no-such-dir")
	cfg := config.LogConfig{Format: "json", Destination: "file"}

	tests := []struct {
		append bool
		mode   string
	}{
		{false, "writing"},
		{true, "appending"},
	}
	for _, v := range tests {
		_, err := iologger.Init(dir, cfg, v.append)
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
		assert.Contains(t, gnErr.Msg, "log.destination")
		assert.Equal(t, []any{iologger.LogPath(dir), v.mode}, gnErr.Vars)
		assert.ErrorIs(t, gnErr.Err, os.ErrNotExist)
	}
}
