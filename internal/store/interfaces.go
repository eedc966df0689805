// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TodoRepository persists todo documents.
//
// GetTodo and UpdateTodo return [ErrTodoNotFound] for an unknown id.
// DeleteTodo succeeds whether or not the id exists.
type TodoRepository interface {
	// ListTodos returns every todo ordered by creation time, oldest first,
	// ties broken by id. An empty store yields an empty, non-nil slice.
	ListTodos(ctx context.Context) ([]models.TodoItem, error)
	// CreateTodo inserts todo as is; ID and CreatedAt must already be set.
	CreateTodo(ctx context.Context, todo models.TodoItem) (models.TodoItem, error)
	GetTodo(ctx context.Context, id string) (models.TodoItem, error)
	// UpdateTodo merges the top-level keys of patch into the stored document
	// in one atomic step and returns the result.
	UpdateTodo(ctx context.Context, id string, patch map[string]any) (models.TodoItem, error)
	DeleteTodo(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
