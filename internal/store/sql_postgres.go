// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// maintenanceDatabase is the database every PostgreSQL server ships with.
// Bootstrap connects to it to create the target database.
const maintenanceDatabase = "postgres"

// NewConnectPostgres opens a connection pool to database on the server
// described by cfg and pings it.
func NewConnectPostgres(ctx context.Context, cfg config.DB, database string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", postgresDSN(cfg, database))
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxConns)
	conn.SetMaxIdleConns(cfg.IdleConns)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Str("database", database).Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database %q: %w", database, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Str("database", database).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// postgresDSN builds a pgx connection URL. With Discovery enabled every host
// of the comma-separated Host list is kept and pgx is asked for the
// read-write member; otherwise only the first host is used.
func postgresDSN(cfg config.DB, database string) string {
	hosts := strings.Split(cfg.Host, ",")
	if !cfg.Discovery {
		hosts = hosts[:1]
	}

	addrs := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, _, err := net.SplitHostPort(h); err != nil && cfg.Port != 0 {
			h = net.JoinHostPort(h, strconv.Itoa(cfg.Port))
		}
		addrs = append(addrs, h)
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   strings.Join(addrs, ","),
		Path:   "/" + database,
	}
	if cfg.User != "" {
		if cfg.AuthKey != "" {
			u.User = url.UserPassword(cfg.User, cfg.AuthKey)
		} else {
			u.User = url.User(cfg.User)
		}
	}

	q := url.Values{}
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	if cfg.Discovery {
		q.Set("target_session_attrs", "read-write")
	}
	u.RawQuery = q.Encode()

	return u.String()
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
