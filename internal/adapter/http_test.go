// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	todohttp "github.com/MKhiriev/go-todo-keeper/internal/handler/http"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

func newTestAdapter(t *testing.T, serverURL string) TodoAdapter {
	t.Helper()

	a, err := NewHTTPTodoAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func newStubServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:3000", want: "http://localhost:3000"},
		{name: "trailing slash", raw: "http://localhost:3000/", want: "http://localhost:3000"},
		{name: "no scheme", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "spaces", raw: "  https://todo.example  ", want: "https://todo.example"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPTodoAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPTodoAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestListTodos(t *testing.T) {
	url := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"1","createdAt":"2026-01-02T03:04:05.000006Z","title":"a"},{"id":"2","createdAt":"2026-01-02T03:04:06.000000Z"}]`)
	})

	todos, err := newTestAdapter(t, url).ListTodos(context.Background())

	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "1", todos[0].ID)
	assert.Equal(t, "a", todos[0].Fields["title"])
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 6000, time.UTC), todos[0].CreatedAt.UTC())
	assert.Equal(t, "2", todos[1].ID)
}

func TestCreateTodo_SendsFields(t *testing.T) {
	url := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "buy milk"}, body)

		_, _ = io.WriteString(w, `{"id":"x","createdAt":"2026-01-02T03:04:05.000000Z","title":"buy milk"}`)
	})

	todo, err := newTestAdapter(t, url).CreateTodo(context.Background(), map[string]any{"title": "buy milk"})

	require.NoError(t, err)
	assert.Equal(t, "x", todo.ID)
	assert.Equal(t, "buy milk", todo.Fields["title"])
}

func TestGetTodo_Missing(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "null body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "null")
			},
		},
		{
			name: "strict 404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = io.WriteString(w, `{"err":"todo not found"}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestAdapter(t, newStubServer(t, tt.handler)).GetTodo(context.Background(), "nope")

			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestGetTodo_EscapesID(t *testing.T) {
	url := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todos/a%2Fb", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"id":"a/b","createdAt":"2026-01-02T03:04:05.000000Z"}`)
	})

	todo, err := newTestAdapter(t, url).GetTodo(context.Background(), "a/b")

	require.NoError(t, err)
	assert.Equal(t, "a/b", todo.ID)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "server error envelope", status: http.StatusInternalServerError, body: `{"err":"db down"}`, wantErr: ErrInternalServerError, wantMsg: "db down"},
		{name: "plain not found", status: http.StatusNotFound, body: "not found", wantErr: ErrNotFound, wantMsg: "not found"},
		{name: "other status", status: http.StatusTeapot, body: "", wantErr: ErrUnexpectedResponse, wantMsg: "http 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := newTestAdapter(t, url).DeleteTodo(context.Background(), "1")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDeleteTodo_NotAcknowledged(t *testing.T) {
	url := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":false}`)
	})

	err := newTestAdapter(t, url).DeleteTodo(context.Background(), "1")

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestUpdateTodo_MalformedResponse(t *testing.T) {
	url := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[1,2]`)
	})

	_, err := newTestAdapter(t, url).UpdateTodo(context.Background(), "1", map[string]any{"done": true})

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestAdapter_AgainstServer(t *testing.T) {
	ctx := context.Background()
	dbCfg := config.DB{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "todos.db")}
	db, _, err := store.Bootstrap(ctx, dbCfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	services := service.NewServices(store.NewStorages(db, logger.Nop()), logger.Nop())
	h := todohttp.NewHandler(services, config.Server{HTTPAddress: ":0", MaxBodyBytes: 1 << 20}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	a := newTestAdapter(t, srv.URL)

	created, err := a.CreateTodo(ctx, map[string]any{"title": "buy milk"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := a.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	updated, err := a.UpdateTodo(ctx, created.ID, map[string]any{"completed": true})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", updated.Fields["title"])
	assert.Equal(t, true, updated.Fields["completed"])

	todos, err := a.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)

	require.NoError(t, a.DeleteTodo(ctx, created.ID))
	_, err = a.GetTodo(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.UpdateTodo(ctx, created.ID, map[string]any{"completed": false})
	assert.ErrorIs(t, err, ErrNotFound)
}
