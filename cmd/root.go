/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/geodb/internal/iofs"
	"github.com/gnames/geodb/internal/iologger"
	geodb "github.com/gnames/geodb/pkg"
	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "GEODB"

var (
	homeDir  string
	opts     []config.Option
	cfg      *config.Config
	closeLog = func() error { return nil }
)

// getRootCmd returns the root command with all subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", geodb.Version, geodb.Build),
		Use:     "geodb",
		Short:   "GeoDB builds a multilingual geolookup database from GeoNames",
		Long: `GeoDB is a CLI tool that turns GeoNames dumps into a geolookup
database. Every place gets fully qualified names like
"Springfield, Sangamon County, Illinois, United States" in all
languages known to GeoNames.

The tool works in stages:
  - create:  Schema Management, create PostgreSQL tables
  - migrate: update the schema of an existing database
  - import:  Dump Import, load allCountries and alternateNames
  - build:   Name Expansion, generate geo_infos, geo_names, geo_links
  - export:  SQLite Export, write a standalone file and upload it to S3

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GEODB_*), also read from .env file
  3. Config file (~/.config/geodb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host → GEODB_DATABASE_HOST).

  Examples:
    GEODB_DATABASE_HOST         PostgreSQL host
    GEODB_DATABASE_PASSWORD     PostgreSQL password
    GEODB_IMPORT_SOURCE_DIR     Directory with GeoNames dumps
    GEODB_BUILD_SCRIPT_POLICY   fallback or skip
    GEODB_EXPORT_S3_BUCKET      Bucket for the SQLite file`,
		PersistentPreRunE:  bootstrap,
		PersistentPostRunE: shutdown,
		RunE:               runRoot,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	// Remove the automatic "geodb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for geodb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getImportCmd(),
		getBuildCmd(),
		getExportCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	closeLog, err = iologger.Init(config.LogDir(homeDir), defaultLog, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// .env is optional, its variables do not override the environment
	if err = godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded
// configuration. Records of the bootstrap stay in the log file.
func reconfigureLogging(cfg *config.Config) error {
	if err := closeLog(); err != nil {
		return err
	}
	var err error
	closeLog, err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true)
	return err
}

func shutdown(_ *cobra.Command, _ []string) error {
	return closeLog()
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// envKeys are config keys that can be set by environment variables.
// They match the fields included in config.ToOptions(), i.e. persistent
// configuration that can be stored in config.yaml.
var envKeys = []string{
	"database.host",
	"database.port",
	"database.user",
	"database.password",
	"database.database",
	"database.ssl_mode",
	"database.batch_size",

	"import.source_dir",

	"build.script_policy",
	"build.ancestor_cache_size",

	"export.sqlite_path",
	"export.s3.endpoint",
	"export.s3.bucket",
	"export.s3.access_key",
	"export.s3.secret_key",
	"export.s3.region",
	"export.s3.use_ssl",

	"log.level",
	"log.format",
	"log.destination",

	"jobs_number",
}

// envName converts a config key to its environment variable.
func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func initEnvVars(v *viper.Viper) {
	// Bind variables one by one to see clearly which of them are allowed.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		_ = v.BindEnv(key, envName(key))
	}

	v.AutomaticEnv()
}
