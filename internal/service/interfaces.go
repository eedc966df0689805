// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TodoService is the application layer between the transport handlers and
// the todo repository.
//
// GetTodo and UpdateTodo return [ErrTodoNotFound] for an unknown id; how that
// is presented is up to the transport.
type TodoService interface {
	ListTodos(ctx context.Context) ([]models.TodoItem, error)
	// CreateTodo assigns the id and creation time, ignoring any value the
	// caller supplied for them, and stores todo.Fields.
	CreateTodo(ctx context.Context, todo models.TodoItem) (models.TodoItem, error)
	GetTodo(ctx context.Context, id string) (models.TodoItem, error)
	// UpdateTodo merges the top-level keys of patch.Fields into the stored
	// todo. patch.ID and patch.CreatedAt are ignored.
	UpdateTodo(ctx context.Context, id string, patch models.TodoItem) (models.TodoItem, error)
	DeleteTodo(ctx context.Context, id string) error
}

// IDGenerator issues identifiers for new todos.
type IDGenerator interface {
	Generate() string
}
