// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type todoService struct {
	todoRepository store.TodoRepository
	idGenerator    IDGenerator
	now            func() time.Time
	logger         *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, idGenerator IDGenerator, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		idGenerator:    idGenerator,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *todoService) ListTodos(ctx context.Context) ([]models.TodoItem, error) {
	todos, err := s.todoRepository.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}

	if todos == nil {
		todos = make([]models.TodoItem, 0)
	}

	return todos, nil
}

func (s *todoService) CreateTodo(ctx context.Context, todo models.TodoItem) (models.TodoItem, error) {
	fields := withoutReservedKeys(todo.Fields)

	// stores keep microseconds, so the returned item equals a later read
	item := models.TodoItem{
		ID:        s.idGenerator.Generate(),
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
		Fields:    fields,
	}

	created, err := s.todoRepository.CreateTodo(ctx, item)
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("error creating todo: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("id", created.ID).Msg("todo created")
	return created, nil
}

func (s *todoService) GetTodo(ctx context.Context, id string) (models.TodoItem, error) {
	todo, err := s.todoRepository.GetTodo(ctx, id)
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("error getting todo %q: %w", id, err)
	}

	return todo, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id string, patch models.TodoItem) (models.TodoItem, error) {
	todo, err := s.todoRepository.UpdateTodo(ctx, id, withoutReservedKeys(patch.Fields))
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("error updating todo %q: %w", id, err)
	}

	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id string) error {
	if err := s.todoRepository.DeleteTodo(ctx, id); err != nil {
		return fmt.Errorf("error deleting todo %q: %w", id, err)
	}

	return nil
}

// withoutReservedKeys copies fields without the store-owned keys.
func withoutReservedKeys(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == models.FieldID || k == models.FieldCreatedAt {
			continue
		}
		out[k] = v
	}
	return out
}
