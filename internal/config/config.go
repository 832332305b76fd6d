package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	applog "spenderbender/internal/log"
	"spenderbender/internal/storage"
)

type Config struct {
	// Database
	DataDir      string
	DatabaseName string
	DBPath       string // full path override, wins over DataDir/DatabaseName

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		DataDir:      getEnv("SPENDERBENDER_DATA_DIR", "."),
		DatabaseName: getEnv("SPENDERBENDER_DB_NAME", storage.DefaultDatabaseName),
		DBPath:       getEnv("DB_PATH", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// DatabasePath returns the file the store should open.
func (c *Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(c.DataDir, c.DatabaseName)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty")
		}
		if c.DatabaseName == "" {
			errors = append(errors, "database name cannot be empty")
		} else if strings.ContainsRune(c.DatabaseName, os.PathSeparator) {
			errors = append(errors, fmt.Sprintf("database name '%s' must not contain a path separator", c.DatabaseName))
		}
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// LogConfig returns the logger settings described by c. Call Validate first;
// an unparsable level falls back to info.
func (c *Config) LogConfig() applog.Config {
	cfg := applog.DefaultConfig()
	if level, err := applog.ParseLevel(c.LogLevel); err == nil {
		cfg.Level = level
	}
	cfg.Format = strings.ToLower(c.LogFormat)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
