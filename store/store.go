// Package store persists finished focus sessions and answers the queries used
// for history and statistics
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/focustrack/internal/apperr"
	"github.com/ayoisaiah/focustrack/internal/osutil"
	"github.com/ayoisaiah/focustrack/internal/session"
)

// Supported drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

var (
	// ErrStore wraps any failure of the underlying database.
	ErrStore = &apperr.Error{
		Message: "unable to access the session store",
	}

	// ErrNotInitialized is returned when the store is used before it is
	// opened or after it is closed.
	ErrNotInitialized = &apperr.Error{
		Message: "session store not initialized",
	}

	// ErrAlreadyRunning is returned when another process holds the database.
	ErrAlreadyRunning = &apperr.Error{
		Message: "is focustrack already running? Only one instance can be active at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver: %q",
	}
)

// DB is the database storage interface.
type DB interface {
	// Append stores a new record and returns the id assigned to it.
	Append(ctx context.Context, rec session.Record) (int64, error)
	// QueryAll returns every record, newest first.
	QueryAll(ctx context.Context) ([]session.Record, error)
	// QueryRecent returns the records created at or after since, newest
	// first.
	QueryRecent(ctx context.Context, since time.Time) ([]session.Record, error)
	// QueryAggregate sums minutes and distractions. Today starts at local
	// midnight of now.
	QueryAggregate(ctx context.Context, now time.Time) (session.Aggregate, error)
	// Close ends the database connection
	Close() error
}

// New opens the store at path with the named driver, creating the parent
// directory if needed.
func New(driver, path string) (DB, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, ErrStore.Wrap(err)
	}

	switch driver {
	case DriverBolt, "":
		return NewBoltClient(path)
	case DriverSQLite:
		return NewSQLiteClient(path)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}

// ValidDriver reports whether driver names a supported backend.
func ValidDriver(driver string) bool {
	return driver == DriverBolt || driver == DriverSQLite
}

// newerFirst orders records by creation time, most recent first. Records
// created at the same instant are ordered by descending id.
func newerFirst(a, b session.Record) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	default:
		return 0
	}
}

func storeErr(op string, err error) error {
	return ErrStore.Wrap(fmt.Errorf("%s: %w", op, err))
}
