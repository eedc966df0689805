// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
	"github.com/pressly/goose/v3"
)

// Bootstrapper provisions the todo store. Every Ensure step is idempotent
// and reports whether it created anything.
type Bootstrapper interface {
	EnsureDatabase(ctx context.Context) (bool, error)
	EnsureTable(ctx context.Context) (bool, error)
	EnsureIndex(ctx context.Context) (bool, error)
	WaitForIndex(ctx context.Context) error
}

// BootstrapReport lists what a bootstrap run had to create. A run against an
// already provisioned store reports nothing.
type BootstrapReport struct {
	DatabaseCreated bool
	TableCreated    bool
	IndexCreated    bool
}

// Created reports whether any step created an object.
func (r BootstrapReport) Created() bool {
	return r.DatabaseCreated || r.TableCreated || r.IndexCreated
}

// RunBootstrap executes the steps of b strictly in order and stops at the
// first failure.
func RunBootstrap(ctx context.Context, b Bootstrapper, log *logger.Logger) (BootstrapReport, error) {
	var report BootstrapReport

	steps := []struct {
		name   string
		ensure func(ctx context.Context) (bool, error)
		result *bool
	}{
		{name: "database", ensure: b.EnsureDatabase, result: &report.DatabaseCreated},
		{name: "table", ensure: b.EnsureTable, result: &report.TableCreated},
		{name: "index", ensure: b.EnsureIndex, result: &report.IndexCreated},
	}

	for _, step := range steps {
		created, err := step.ensure(ctx)
		if err != nil {
			log.Err(err).Str("func", "RunBootstrap").Str("step", step.name).Msg("bootstrap step failed")
			return report, fmt.Errorf("error ensuring %s: %w", step.name, err)
		}
		*step.result = created
		log.Info().Str("step", step.name).Bool("created", created).Msg("bootstrap step done")
	}

	if err := b.WaitForIndex(ctx); err != nil {
		log.Err(err).Str("func", "RunBootstrap").Str("step", "wait index").Msg("bootstrap step failed")
		return report, fmt.Errorf("error waiting for index: %w", err)
	}
	log.Info().Str("step", "wait index").Msg("index is ready")

	return report, nil
}

// provisioner is a Bootstrapper that owns the connection it provisions.
type provisioner interface {
	Bootstrapper
	DB() *DB
	Close() error
}

// Bootstrap provisions the store selected by cfg.Driver and returns the open
// connection to the provisioned database. On failure every connection is
// closed.
func Bootstrap(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, BootstrapReport, error) {
	var p provisioner
	switch cfg.Driver {
	case config.DriverPostgres:
		p = newPostgresBootstrapper(cfg, log)
	case config.DriverSQLite:
		p = newSQLiteBootstrapper(cfg, log)
	default:
		return nil, BootstrapReport{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	report, err := RunBootstrap(ctx, p, log)
	if err != nil {
		p.Close()
		return nil, report, err
	}

	return p.DB(), report, nil
}

// migrator applies single schema versions.
type migrator interface {
	MigrateTo(db *sql.DB, version int64) error
	Reapply(db *sql.DB, version int64) error
}

type gooseMigrator struct {
	dialect string
	log     *logger.Logger
}

func (m gooseMigrator) MigrateTo(db *sql.DB, version int64) error {
	return migrations.MigrateTo(db, m.dialect, version, m.gooseLogger())
}

func (m gooseMigrator) Reapply(db *sql.DB, version int64) error {
	return migrations.Reapply(db, m.dialect, version, m.gooseLogger())
}

func (m gooseMigrator) gooseLogger() goose.Logger {
	if m.log == nil {
		return nil
	}
	return m.log
}

// ensureObject creates a schema object through its migration when exists
// reports it missing. If the version table already lists the migration the
// object was dropped behind goose's back, so the migration is reapplied.
func ensureObject(ctx context.Context, db *sql.DB, m migrator, version int64, exists func(ctx context.Context) (bool, error)) (bool, error) {
	ok, err := exists(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}

	if err = m.MigrateTo(db, version); err != nil {
		return false, err
	}

	if ok, err = exists(ctx); err != nil {
		return false, err
	}
	if !ok {
		if err = m.Reapply(db, version); err != nil {
			return false, err
		}
	}

	return true, nil
}
