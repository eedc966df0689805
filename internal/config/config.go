// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// go-todo-keeper application. It aggregates all sub-configurations and is
// populated by merging built-in defaults with values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
//   - validate  - go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Storage holds configuration for the document store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network and behaviour settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the REST client used by the terminal client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the document store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the document store.
type DB struct {
	// Driver selects the backend: "postgres" or "sqlite".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" validate:"required,oneof=postgres sqlite"`

	// Host is the PostgreSQL host. With Discovery enabled it may hold a
	// comma-separated list of cluster members.
	// Env: STORAGE_DB_HOST
	Host string `env:"HOST" validate:"required_if=Driver postgres"`

	// Port is the PostgreSQL port, applied to every host without its own port.
	// Env: STORAGE_DB_PORT
	Port int `env:"PORT" validate:"required_if=Driver postgres,max=65535"`

	// User is the PostgreSQL role used to connect.
	// Env: STORAGE_DB_USER
	User string `env:"USER" validate:"required_if=Driver postgres"`

	// AuthKey is the password of User. May be empty for trust auth.
	// Env: STORAGE_DB_AUTH_KEY
	AuthKey string `env:"AUTH_KEY"`

	// Name is the target database, created by bootstrap when absent.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME" validate:"required_if=Driver postgres"`

	// SSLMode is passed to the driver as sslmode (e.g. "disable", "require").
	// Env: STORAGE_DB_SSL_MODE
	SSLMode string `env:"SSL_MODE"`

	// Discovery asks the driver to pick the read-write member among the
	// configured hosts.
	// Env: STORAGE_DB_DISCOVERY
	Discovery bool `env:"DISCOVERY"`

	// IdleConns is the number of pooled connections kept open while idle.
	// Env: STORAGE_DB_BUFFER
	IdleConns int `env:"BUFFER" validate:"gte=0,ltefield=MaxConns"`

	// MaxConns caps the number of open connections in the pool.
	// Env: STORAGE_DB_MAX
	MaxConns int `env:"MAX" validate:"gte=1"`

	// SQLitePath is the database file used by the sqlite driver.
	// Env: STORAGE_DB_SQLITE_PATH
	SQLitePath string `env:"SQLITE_PATH" validate:"required_if=Driver sqlite"`

	// IndexWaitTimeout bounds how long bootstrap waits for the secondary
	// index to become ready.
	// Env: STORAGE_DB_INDEX_WAIT_TIMEOUT
	IndexWaitTimeout time.Duration `env:"INDEX_WAIT_TIMEOUT" validate:"gt=0"`

	// IndexWaitInterval is the polling interval of the index readiness check.
	// Env: STORAGE_DB_INDEX_WAIT_INTERVAL
	IndexWaitInterval time.Duration `env:"INDEX_WAIT_INTERVAL" validate:"gt=0"`
}

// Server holds network and behaviour settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000" or ":3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// AllowedOrigins enables CORS for the listed origins. Empty disables CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// StrictNotFound makes get/update of a missing todo answer 404 instead
	// of 200 with a null body.
	// Env: SERVER_STRICT_NOT_FOUND
	StrictNotFound bool `env:"STRICT_NOT_FOUND"`

	// RequestTimeout bounds reading a request and writing its response.
	// Zero means no timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// MaxBodyBytes limits the size of a request body.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" validate:"gt=0"`
}

// Adapter holds configuration of the REST client used by cmd/client.
type Adapter struct {
	// HTTPAddress is the base URL of the todo server
	// (e.g. "http://localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
