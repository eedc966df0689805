// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// DB is a pooled connection to one of the supported backends.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Driver reports the storage driver the pool was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Classify reports whether err, returned by this database, is worth retrying.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
