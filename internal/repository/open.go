package repository

import (
	"context"
	"fmt"
)

// Storage drivers accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open returns the Repository for the named driver.
func Open(ctx context.Context, driver, path string) (Repository, error) {
	switch driver {
	case DriverFile:
		return NewFileRepository(path), nil
	case DriverSQLite:
		return NewSQLiteRepository(ctx, path)
	case DriverMemory:
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
