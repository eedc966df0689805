// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTodoNotFound is returned when a lookup or update targets an id that
	// does not exist in the todos table.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrIndexNotReady is returned by the bootstrap wait step while the
	// created_at index is still being built, and when it never appeared.
	ErrIndexNotReady = errors.New("todos created_at index is not ready")

	// ErrUnsupportedDriver is returned for a storage driver other than
	// postgres or sqlite.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single todo row fails.
	ErrScanningRow = errors.New("failed to scan todo row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan todo rows")

	// ErrDecodingDocument is returned when a stored document is not a JSON object.
	ErrDecodingDocument = errors.New("failed to decode todo document")

	// ErrEncodingDocument is returned when user fields cannot be encoded as JSON.
	ErrEncodingDocument = errors.New("failed to encode todo document")
)
