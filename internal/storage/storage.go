// Package storage provides the string key-value store behind favorites,
// reviews and search history.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Well-known keys.
const (
	KeyFavorites = "favorites"
	KeyReviews   = "userReviews"
	KeyHistory   = "searchHistory"
)

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ErrUnknownDriver is returned by Open for an unrecognized driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// KV is a string key-value store. Values are opaque JSON text.
// Implementations are safe for concurrent use.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Close releases underlying resources.
	Close() error
}

// Open returns the backend named by driver. path is a directory for the
// file driver and a database file for sqlite; memory ignores it.
func Open(driver, path string) (KV, error) {
	switch driver {
	case DriverFile:
		return NewFileStore(path)
	case DriverSQLite:
		return NewSQLiteStore(path)
	case DriverMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("storage key must not be empty")
	}
	return nil
}
