// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func newSQLiteTodoRepo(t *testing.T) TodoRepository {
	t.Helper()
	db, _, err := Bootstrap(context.Background(), sqliteConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTodoRepository(db, logger.Nop())
}

func TestSQLiteTodoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteTodoRepo(t)

	todos, err := repo.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	createdAt := time.Date(2026, 3, 4, 5, 6, 7, 890123000, time.UTC)
	created, err := repo.CreateTodo(ctx, models.TodoItem{
		ID:        "a",
		CreatedAt: createdAt,
		Fields:    map[string]any{"title": "buy milk", "completed": false},
	})
	require.NoError(t, err)
	assert.Equal(t, "a", created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)

	got, err := repo.GetTodo(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := repo.UpdateTodo(ctx, "a", map[string]any{"completed": true})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", updated.Fields["title"])
	assert.Equal(t, true, updated.Fields["completed"])
	assert.Equal(t, createdAt, updated.CreatedAt)

	require.NoError(t, repo.DeleteTodo(ctx, "a"))
	_, err = repo.GetTodo(ctx, "a")
	assert.ErrorIs(t, err, ErrTodoNotFound)

	// deleting again is not an error
	require.NoError(t, repo.DeleteTodo(ctx, "a"))
}

func TestSQLiteTodoRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteTodoRepo(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	inserts := []struct {
		id string
		at time.Time
	}{
		{id: "c", at: base.Add(2 * time.Second)},
		{id: "b", at: base},
		{id: "a", at: base},
		{id: "d", at: base.Add(time.Millisecond)},
	}
	for _, in := range inserts {
		_, err := repo.CreateTodo(ctx, models.TodoItem{ID: in.id, CreatedAt: in.at, Fields: map[string]any{}})
		require.NoError(t, err)
	}

	todos, err := repo.ListTodos(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(todos))
	for _, todo := range todos {
		ids = append(ids, todo.ID)
	}
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids)
}

func TestSQLiteTodoRepository_UpdateReplacesTopLevelKeys(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteTodoRepo(t)

	_, err := repo.CreateTodo(ctx, models.TodoItem{
		ID:        "a",
		CreatedAt: time.Now(),
		Fields: map[string]any{
			"title": "x",
			"meta":  map[string]any{"tags": []any{"home"}, "prio": 1},
		},
	})
	require.NoError(t, err)

	updated, err := repo.UpdateTodo(ctx, "a", map[string]any{"meta": map[string]any{"prio": 2}, "note": nil})
	require.NoError(t, err)

	b, err := json.Marshal(updated.Fields)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"x","meta":{"prio":2},"note":null}`, string(b))
}

func TestSQLiteTodoRepository_UpdateMissing(t *testing.T) {
	repo := newSQLiteTodoRepo(t)

	_, err := repo.UpdateTodo(context.Background(), "ghost", map[string]any{"completed": true})
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestSQLiteTodoRepository_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteTodoRepo(t)

	_, err := repo.CreateTodo(ctx, models.TodoItem{ID: "a", CreatedAt: time.Now(), Fields: map[string]any{}})
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.UpdateTodo(ctx, "a", map[string]any{fmt.Sprintf("k%d", i): i})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	todo, err := repo.GetTodo(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, todo.Fields, writers)
}
