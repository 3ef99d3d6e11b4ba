// Package config provides configuration management for GeoDB.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > .env > config.yaml >
// defaults
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - Import: source_dir
//   - Build: script_policy, ancestor_cache_size
//   - Export: sqlite_path, s3 settings
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Import.WithInfo, Import.WithNames (per-command)
//   - Export.Upload (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GEODB_ prefix with underscores for nesting:
//
//	GEODB_DATABASE_HOST=localhost
//	GEODB_IMPORT_SOURCE_DIR=/data/geonames
//	GEODB_BUILD_SCRIPT_POLICY=skip
//	GEODB_EXPORT_S3_BUCKET=geodata
package config

import (
	"runtime"
)

// Config represents the complete GeoDB configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings of the geonames dump import.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Build contains settings of geolookup tables generation.
	Build BuildConfig `mapstructure:"build" yaml:"build"`

	// Export contains settings of the SQLite artifact.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows sent to PostgreSQL in one COPY.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ImportConfig contains settings of the import command.
type ImportConfig struct {
	// SourceDir is a directory with geonames dump files
	// (allCountries.txt, alternateNames.txt, admin1CodesASCII.txt etc.).
	// Each file can also be provided as a zip archive with the same base
	// name.
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir"`

	// WithInfo enables import of geoname records into place_infos.
	// Runtime-only.
	WithInfo bool `mapstructure:"-" yaml:"-"`

	// WithNames enables import of alternate names into place_names.
	// Runtime-only.
	WithNames bool `mapstructure:"-" yaml:"-"`
}

// BuildConfig contains settings of the build command.
type BuildConfig struct {
	// ScriptPolicy decides what happens with an administrative level when
	// none of its names share a script with the name being expanded.
	// Valid values: "fallback" (use the first name), "skip" (omit level).
	ScriptPolicy string `mapstructure:"script_policy" yaml:"script_policy"`

	// AncestorCacheSize is the number of administrative areas whose names
	// are kept in memory while places are processed.
	AncestorCacheSize int `mapstructure:"ancestor_cache_size" yaml:"ancestor_cache_size"`
}

// ExportConfig contains settings of the export command.
type ExportConfig struct {
	// SQLitePath is the location of the exported SQLite file. If empty,
	// the file is created in the cache directory.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// S3 describes an S3-compatible storage for the exported file.
	S3 S3Config `mapstructure:"s3" yaml:"s3"`

	// Upload enables upload of the exported file to S3. Runtime-only.
	Upload bool `mapstructure:"-" yaml:"-"`
}

// S3Config contains S3-compatible storage settings.
type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"   yaml:"endpoint"`
	Bucket    string `mapstructure:"bucket"     yaml:"bucket"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`
	Region    string `mapstructure:"region"     yaml:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"    yaml:"use_ssl"`
}

// Configured is true when endpoint and bucket are known.
func (s S3Config) Configured() bool {
	return s.Endpoint != "" && s.Bucket != ""
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "geodb",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Import: ImportConfig{
			SourceDir: "geonames",
			WithInfo:  true,
			WithNames: true,
		},
		Build: BuildConfig{
			ScriptPolicy:      "fallback",
			AncestorCacheSize: 100_000,
		},
		Export: ExportConfig{
			S3: S3Config{UseSSL: true},
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
