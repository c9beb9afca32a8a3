// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Tool output limit defaults
const (
	DefaultResultLimitValue = 20
	MaxResultLimitValue     = 500
	DefaultQueryLimitValue  = 50
)

// Config holds all configuration for the server and the CLI.
type Config struct {
	CatalogPath string // CATALOG_PATH, default "" (built-in catalog)

	StorageDriver string // STORAGE_DRIVER, one of file, sqlite, memory; default "file"
	StoragePath   string // STORAGE_PATH, default "$HOME/.tripfinder"

	ResultCacheMaxItems int     // RESULT_CACHE_MAX_ITEMS, default 128
	HistoryLimit        int     // HISTORY_LIMIT, default 10
	PriceCeiling        float64 // PRICE_CEILING, default 5000
	DefaultSort         string  // DEFAULT_SORT, default "relevance"

	// Tool output limits
	DefaultResultLimit int // DEFAULT_RESULT_LIMIT
	MaxResultLimit     int // MAX_RESULT_LIMIT
	DefaultQueryLimit  int // DEFAULT_QUERY_LIMIT

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		CatalogPath: getEnvString("CATALOG_PATH", ""),

		StorageDriver: getEnvString("STORAGE_DRIVER", "file"),
		StoragePath:   getEnvString("STORAGE_PATH", defaultStoragePath()),

		ResultCacheMaxItems: getEnvInt("RESULT_CACHE_MAX_ITEMS", 128),
		HistoryLimit:        getEnvInt("HISTORY_LIMIT", 10),
		PriceCeiling:        getEnvFloat("PRICE_CEILING", 5000),
		DefaultSort:         getEnvString("DEFAULT_SORT", "relevance"),

		DefaultResultLimit: getEnvInt("DEFAULT_RESULT_LIMIT", DefaultResultLimitValue),
		MaxResultLimit:     getEnvInt("MAX_RESULT_LIMIT", MaxResultLimitValue),
		DefaultQueryLimit:  getEnvInt("DEFAULT_QUERY_LIMIT", DefaultQueryLimitValue),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// StorageLocation returns the path handed to the storage driver. The
// sqlite driver gets a database file inside StoragePath.
func (c *Config) StorageLocation() string {
	if c.StorageDriver == "sqlite" {
		return filepath.Join(c.StoragePath, "tripfinder.db")
	}
	return c.StoragePath
}

func defaultStoragePath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".tripfinder")
	}
	return ".tripfinder"
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
