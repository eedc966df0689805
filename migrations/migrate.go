// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the todo store and applies it with
// goose. Each supported dialect keeps its own ordered set of SQL files.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported goose dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Schema versions. Bootstrap applies them one at a time so that table and
// index creation are reported separately.
const (
	VersionTodosTable          int64 = 1
	VersionTodosCreatedAtIndex int64 = 2
)

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

var dirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// goose keeps its configuration in package globals.
var mu sync.Mutex

// Migrate applies every embedded migration of dialect.
func Migrate(db *sql.DB, dialect string, log goose.Logger) error {
	return run(db, dialect, log, func(dir string) error {
		return goose.Up(db, dir)
	})
}

// MigrateTo applies the embedded migrations of dialect up to and including
// version. Already applied versions are skipped.
func MigrateTo(db *sql.DB, dialect string, version int64, log goose.Logger) error {
	return run(db, dialect, log, func(dir string) error {
		return goose.UpTo(db, dir, version)
	})
}

// Reapply rolls version back and applies it again. It repairs objects that
// were dropped outside of goose while the version table still lists them.
func Reapply(db *sql.DB, dialect string, version int64, log goose.Logger) error {
	return run(db, dialect, log, func(dir string) error {
		current, err := goose.GetDBVersion(db)
		if err != nil {
			return err
		}
		if current >= version {
			if err := goose.DownTo(db, dir, version-1); err != nil {
				return err
			}
		}
		return goose.UpTo(db, dir, version)
	})
}

func run(db *sql.DB, dialect string, log goose.Logger, apply func(dir string) error) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, ok := dirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	if log == nil {
		goose.SetLogger(goose.NopLogger())
	} else {
		goose.SetLogger(log)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := apply(dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
