package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var ErrUnsupportedDatabaseURL = errors.New("unsupported database url")

// Open returns a lazily connected handle for dsn. No connection is made until
// the first query, so an unreachable database does not stop the process.
func Open(dsn string) (*gorm.DB, error) {
	dialector, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               NewLogger(200 * time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Dialector picks the gorm driver from the shape of dsn.
func Dialector(dsn string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return nil, fmt.Errorf("%w: missing sqlite path", ErrUnsupportedDatabaseURL)
		}
		return sqlite.Open(path), nil
	case strings.HasPrefix(dsn, "file:"):
		return sqlite.Open(dsn), nil
	case strings.Contains(dsn, "host=") || strings.Contains(dsn, "dbname="):
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabaseURL, redact(dsn))
}

// redact keeps the scheme of dsn and drops everything after it.
func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if len(dsn) > 8 {
		return dsn[:8] + "..."
	}
	return dsn
}
