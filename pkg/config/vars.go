package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "geodb"

	// SQLiteFile is the default name of the exported SQLite file.
	SQLiteFile = "geodata.db"

	// StatsFile is the name of the report written by the build command.
	StatsFile = "stats.yaml"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/geodb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/geodb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/geodb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/geodb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SQLitePath returns the location of the exported SQLite file.
func (c *Config) SQLitePath() string {
	if c.Export.SQLitePath != "" {
		return c.Export.SQLitePath
	}
	return filepath.Join(CacheDir(c.HomeDir), SQLiteFile)
}

// StatsPath returns the location of the build report.
func (c *Config) StatsPath() string {
	return filepath.Join(CacheDir(c.HomeDir), StatsFile)
}
