// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

const sqliteObjectExistsQuery = `SELECT count(*) FROM sqlite_master WHERE type = ? AND name = ?`

// sqliteBootstrapper provisions a local database file. SQLite builds indexes
// synchronously, so waiting only confirms the index is present.
type sqliteBootstrapper struct {
	path     string
	log      *logger.Logger
	migrator migrator

	db *DB
}

func newSQLiteBootstrapper(cfg config.DB, log *logger.Logger) *sqliteBootstrapper {
	return &sqliteBootstrapper{
		path:     cfg.SQLitePath,
		log:      log,
		migrator: gooseMigrator{dialect: migrations.DialectSQLite, log: log},
	}
}

func (b *sqliteBootstrapper) EnsureDatabase(ctx context.Context) (bool, error) {
	created, err := createLocalDBFileIfNotExists(b.path)
	if err != nil {
		return false, err
	}

	if b.db, err = NewConnectSQLite(ctx, b.path, b.log); err != nil {
		return created, err
	}

	return created, nil
}

func (b *sqliteBootstrapper) EnsureTable(ctx context.Context) (bool, error) {
	if b.db == nil {
		return false, errors.New("database is not connected")
	}

	return ensureObject(ctx, b.db.DB, b.migrator, migrations.VersionTodosTable, func(ctx context.Context) (bool, error) {
		return b.objectExists(ctx, "table", TodosTable)
	})
}

func (b *sqliteBootstrapper) EnsureIndex(ctx context.Context) (bool, error) {
	if b.db == nil {
		return false, errors.New("database is not connected")
	}

	return ensureObject(ctx, b.db.DB, b.migrator, migrations.VersionTodosCreatedAtIndex, func(ctx context.Context) (bool, error) {
		return b.objectExists(ctx, "index", TodosCreatedAtIndex)
	})
}

func (b *sqliteBootstrapper) WaitForIndex(ctx context.Context) error {
	if b.db == nil {
		return errors.New("database is not connected")
	}

	ok, err := b.objectExists(ctx, "index", TodosCreatedAtIndex)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: index %s does not exist", ErrIndexNotReady, TodosCreatedAtIndex)
	}

	return nil
}

func (b *sqliteBootstrapper) objectExists(ctx context.Context, kind, name string) (bool, error) {
	var n int
	if err := b.db.QueryRowContext(ctx, sqliteObjectExistsQuery, kind, name).Scan(&n); err != nil {
		return false, wrap(ErrExecutingQuery, err)
	}
	return n > 0, nil
}

func (b *sqliteBootstrapper) DB() *DB {
	return b.db
}

func (b *sqliteBootstrapper) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
