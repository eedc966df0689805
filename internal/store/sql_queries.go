// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// Schema object names. They must match the embedded migrations.
const (
	TodosTable          = "todos"
	TodosCreatedAtIndex = "todos_created_at_idx"
)

const todoColumns = "id, doc, created_at"

// dialect captures what differs between the backends for the same query.
type dialect struct {
	builder sq.StatementBuilderType
	// encodeTime converts a creation timestamp into a bind value.
	encodeTime func(time.Time) any
	// atomicMerge means the backend can merge a patch into doc in SQL.
	atomicMerge bool
}

var (
	postgresDialect = dialect{
		builder:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		encodeTime:  func(t time.Time) any { return t.UTC() },
		atomicMerge: true,
	}

	// SQLite stores timestamps as fixed-width text so that ORDER BY
	// created_at is chronological.
	sqliteDialect = dialect{
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		encodeTime: func(t time.Time) any { return t.UTC().Format(models.CreatedAtLayout) },
	}
)

func dialectFor(driver string) dialect {
	if driver == config.DriverSQLite {
		return sqliteDialect
	}
	return postgresDialect
}

func (d dialect) listTodos() sq.SelectBuilder {
	return d.builder.
		Select(todoColumns).
		From(TodosTable).
		OrderBy("created_at ASC", "id ASC")
}

func (d dialect) getTodo(id string) sq.SelectBuilder {
	return d.builder.
		Select(todoColumns).
		From(TodosTable).
		Where(sq.Eq{"id": id})
}

func (d dialect) getTodoDoc(id string) sq.SelectBuilder {
	return d.builder.
		Select("doc").
		From(TodosTable).
		Where(sq.Eq{"id": id})
}

func (d dialect) insertTodo(id string, doc []byte, createdAt time.Time) sq.InsertBuilder {
	return d.builder.
		Insert(TodosTable).
		Columns("id", "doc", "created_at").
		Values(id, string(doc), d.encodeTime(createdAt)).
		Suffix("RETURNING " + todoColumns)
}

// mergeTodo merges patch into the stored document in SQL. jsonb || replaces
// top-level keys and keeps the rest.
func (d dialect) mergeTodo(id string, patch []byte) sq.UpdateBuilder {
	return d.builder.
		Update(TodosTable).
		Set("doc", sq.Expr("doc || ?::jsonb", string(patch))).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + todoColumns)
}

func (d dialect) replaceTodoDoc(id string, doc []byte) sq.UpdateBuilder {
	return d.builder.
		Update(TodosTable).
		Set("doc", string(doc)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + todoColumns)
}

func (d dialect) deleteTodo(id string) sq.DeleteBuilder {
	return d.builder.
		Delete(TodosTable).
		Where(sq.Eq{"id": id})
}
