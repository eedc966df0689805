// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

const (
	databaseExistsQuery = `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`

	tableExistsQuery = `SELECT EXISTS (
		SELECT 1 FROM pg_tables
		WHERE schemaname = current_schema() AND tablename = $1)`

	indexExistsQuery = `SELECT EXISTS (
		SELECT 1 FROM pg_indexes
		WHERE schemaname = current_schema() AND tablename = $1 AND indexname = $2)`

	// A concurrent index build is usable once it is both valid and ready.
	indexReadyQuery = `SELECT i.indisvalid AND i.indisready
		FROM pg_index i
		WHERE i.indexrelid = to_regclass($1)`
)

const defaultIndexWaitInterval = 200 * time.Millisecond

type connectFunc func(ctx context.Context, database string) (*DB, error)

type postgresBootstrapper struct {
	cfg      config.DB
	log      *logger.Logger
	connect  connectFunc
	migrator migrator

	db *DB
}

func newPostgresBootstrapper(cfg config.DB, log *logger.Logger) *postgresBootstrapper {
	return &postgresBootstrapper{
		cfg: cfg,
		log: log,
		connect: func(ctx context.Context, database string) (*DB, error) {
			return NewConnectPostgres(ctx, cfg, database, log)
		},
		migrator: gooseMigrator{dialect: migrations.DialectPostgres, log: log},
	}
}

// EnsureDatabase creates the target database through the maintenance
// database when pg_database does not list it, then connects to it.
func (b *postgresBootstrapper) EnsureDatabase(ctx context.Context) (bool, error) {
	admin, err := b.connect(ctx, maintenanceDatabase)
	if err != nil {
		return false, err
	}
	defer admin.Close()

	var exists bool
	if err = admin.QueryRowContext(ctx, databaseExistsQuery, b.cfg.Name).Scan(&exists); err != nil {
		return false, wrap(ErrExecutingQuery, err)
	}

	created := false
	if !exists {
		stmt := "CREATE DATABASE " + pgx.Identifier{b.cfg.Name}.Sanitize()
		_, err = admin.ExecContext(ctx, stmt)
		switch {
		case err == nil:
			created = true
		case postgresError(err) == pgerrcode.DuplicateDatabase:
			b.log.Debug().Str("database", b.cfg.Name).Msg("database was created concurrently")
		default:
			return false, wrap(ErrExecutingStatement, err)
		}
	}

	if b.db, err = b.connect(ctx, b.cfg.Name); err != nil {
		return created, err
	}

	return created, nil
}

func (b *postgresBootstrapper) EnsureTable(ctx context.Context) (bool, error) {
	if b.db == nil {
		return false, errors.New("database is not connected")
	}

	return ensureObject(ctx, b.db.DB, b.migrator, migrations.VersionTodosTable, func(ctx context.Context) (bool, error) {
		return b.queryExists(ctx, tableExistsQuery, TodosTable)
	})
}

func (b *postgresBootstrapper) EnsureIndex(ctx context.Context) (bool, error) {
	if b.db == nil {
		return false, errors.New("database is not connected")
	}

	return ensureObject(ctx, b.db.DB, b.migrator, migrations.VersionTodosCreatedAtIndex, func(ctx context.Context) (bool, error) {
		return b.queryExists(ctx, indexExistsQuery, TodosTable, TodosCreatedAtIndex)
	})
}

// WaitForIndex polls the catalog until the created_at index is valid and
// ready, for at most IndexWaitTimeout. Transient errors are retried; any
// other error ends the wait.
func (b *postgresBootstrapper) WaitForIndex(ctx context.Context) error {
	if b.db == nil {
		return errors.New("database is not connected")
	}

	interval := b.cfg.IndexWaitInterval
	if interval <= 0 {
		interval = defaultIndexWaitInterval
	}
	backoff := retry.WithMaxDuration(b.cfg.IndexWaitTimeout, retry.NewConstant(interval))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		var ready sql.NullBool
		err := b.db.QueryRowContext(ctx, indexReadyQuery, TodosCreatedAtIndex).Scan(&ready)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: index %s does not exist", ErrIndexNotReady, TodosCreatedAtIndex)
			}
			if b.db.Classify(err) == Retryable {
				return retry.RetryableError(err)
			}
			return wrap(ErrExecutingQuery, err)
		}

		if !ready.Valid || !ready.Bool {
			b.log.Debug().Str("index", TodosCreatedAtIndex).Msg("waiting for index")
			return retry.RetryableError(ErrIndexNotReady)
		}

		return nil
	})
}

func (b *postgresBootstrapper) queryExists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	if err := b.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, wrap(ErrExecutingQuery, err)
	}
	return exists, nil
}

func (b *postgresBootstrapper) DB() *DB {
	return b.db
}

func (b *postgresBootstrapper) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
