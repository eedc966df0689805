// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the configuration used when no source overrides a value.
// The pool sizes mirror the historical buffer/max settings of the service.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver:            DriverPostgres,
				Host:              "localhost",
				Port:              5432,
				User:              "postgres",
				Name:              "todo_keeper",
				SSLMode:           "disable",
				IdleConns:         8,
				MaxConns:          16,
				SQLitePath:        "todos.db",
				IndexWaitTimeout:  30 * time.Second,
				IndexWaitInterval: 200 * time.Millisecond,
			},
		},
		Server: Server{
			HTTPAddress:  ":3000",
			MaxBodyBytes: 100 << 10,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 15 * time.Second,
		},
	}
}
