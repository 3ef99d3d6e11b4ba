// Package iotesting provides shared utilities for integration tests.
package iotesting

import (
	"os"
	"strconv"

	"github.com/gnames/geodb/pkg/config"
	"github.com/joho/godotenv"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "geodb_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Defaults are overridden by GEODB_DATABASE_* variables from the
// environment or a .env file. The database name is always
// TestDatabaseName.
func GetTestConfig() *config.Config {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.New()
	var opts []config.Option
	if s := os.Getenv("GEODB_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("GEODB_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("GEODB_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("GEODB_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}
