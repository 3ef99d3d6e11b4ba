package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of records to process per batch.
// Used by COPY operations of import and build.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptImportSourceDir sets the directory with geonames dump files.
func OptImportSourceDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Import Source Dir", s) {
			c.Import.SourceDir = s
		}
	}
}

// OptImportWithInfo enables or disables import of geoname records.
// Runtime-only field - not in ToOptions().
func OptImportWithInfo(b bool) Option {
	return func(c *Config) {
		c.Import.WithInfo = b
	}
}

// OptImportWithNames enables or disables import of alternate names.
// Runtime-only field - not in ToOptions().
func OptImportWithNames(b bool) Option {
	return func(c *Config) {
		c.Import.WithNames = b
	}
}

// OptBuildScriptPolicy sets the policy for levels without a name in a
// matching script. Valid values: "fallback", "skip".
func OptBuildScriptPolicy(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Build.ScriptPolicy", s) {
			c.Build.ScriptPolicy = s
		}
	}
}

// OptBuildAncestorCacheSize sets how many administrative areas keep
// their names in memory during the build.
func OptBuildAncestorCacheSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Ancestor Cache Size", i) {
			c.Build.AncestorCacheSize = i
		}
	}
}

// OptExportSQLitePath sets the location of the exported SQLite file.
func OptExportSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export SQLite Path", s) {
			c.Export.SQLitePath = s
		}
	}
}

// OptExportUpload enables upload of the exported file to S3.
// Runtime-only field - not in ToOptions().
func OptExportUpload(b bool) Option {
	return func(c *Config) {
		c.Export.Upload = b
	}
}

// OptS3Endpoint sets host[:port] of S3-compatible storage.
func OptS3Endpoint(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("S3 Endpoint", s) {
			c.Export.S3.Endpoint = s
		}
	}
}

// OptS3Bucket sets the bucket for the exported file.
func OptS3Bucket(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("S3 Bucket", s) {
			c.Export.S3.Bucket = s
		}
	}
}

// OptS3AccessKey sets the S3 access key.
func OptS3AccessKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("S3 Access Key", s) {
			c.Export.S3.AccessKey = s
		}
	}
}

// OptS3SecretKey sets the S3 secret key.
func OptS3SecretKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("S3 Secret Key", s) {
			c.Export.S3.SecretKey = s
		}
	}
}

// OptS3Region sets the S3 region.
func OptS3Region(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("S3 Region", s) {
			c.Export.S3.Region = s
		}
	}
}

// OptS3UseSSL sets whether S3 is accessed over HTTPS.
func OptS3UseSSL(b bool) Option {
	return func(c *Config) {
		c.Export.S3.UseSSL = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
