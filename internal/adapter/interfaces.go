// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the todo REST API.
//
// [TodoAdapter] hides the transport from the terminal UI. Server failures are
// mapped to the sentinel errors in errors.go so callers can use [errors.Is]:
// a missing todo is [ErrNotFound] whether the server answered null or 404.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TodoAdapter talks to the todo server.
type TodoAdapter interface {
	// ListTodos returns all todos oldest first.
	ListTodos(ctx context.Context) ([]models.TodoItem, error)

	// CreateTodo stores fields as a new todo and returns it with the
	// server-assigned id and creation time.
	CreateTodo(ctx context.Context, fields map[string]any) (models.TodoItem, error)

	// GetTodo returns the todo with id or [ErrNotFound].
	GetTodo(ctx context.Context, id string) (models.TodoItem, error)

	// UpdateTodo replaces the top-level keys of patch in the todo with id
	// and returns the result, or [ErrNotFound].
	UpdateTodo(ctx context.Context, id string, patch map[string]any) (models.TodoItem, error)

	// DeleteTodo removes the todo with id. Deleting an unknown id succeeds.
	DeleteTodo(ctx context.Context, id string) error
}
