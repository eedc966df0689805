// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the SQL-backed implementation of [TodoRepository]. One
// row of the todos table holds one todo: the id, the JSON document of user
// fields and the creation timestamp.
type todoRepository struct {
	db      *DB
	dialect dialect
	logger  *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] speaking the dialect of
// db's driver.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating todo repository")
	return &todoRepository{
		db:      db,
		dialect: dialectFor(db.driver),
		logger:  logger,
	}
}

func (r *todoRepository) ListTodos(ctx context.Context) ([]models.TodoItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.dialect.listTodos().ToSql()
	if err != nil {
		return nil, wrap(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error executing query")
		return nil, wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.TodoItem, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error scanning row")
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err = rows.Err(); err != nil {
		return nil, wrap(ErrScanningRows, err)
	}

	return todos, nil
}

func (r *todoRepository) CreateTodo(ctx context.Context, todo models.TodoItem) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	doc, err := models.EncodeDocument(todo.Fields)
	if err != nil {
		return models.TodoItem{}, wrap(ErrEncodingDocument, err)
	}

	query, args, err := r.dialect.insertTodo(todo.ID, doc, todo.CreatedAt).ToSql()
	if err != nil {
		return models.TodoItem{}, wrap(ErrBuildingSQLQuery, err)
	}

	created, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Str("id", todo.ID).Msg("error inserting todo")
		return models.TodoItem{}, err
	}

	return created, nil
}

func (r *todoRepository) GetTodo(ctx context.Context, id string) (models.TodoItem, error) {
	query, args, err := r.dialect.getTodo(id).ToSql()
	if err != nil {
		return models.TodoItem{}, wrap(ErrBuildingSQLQuery, err)
	}

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrTodoNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*todoRepository.GetTodo").Str("id", id).Msg("error getting todo")
		}
		return models.TodoItem{}, err
	}

	return todo, nil
}

func (r *todoRepository) UpdateTodo(ctx context.Context, id string, patch map[string]any) (models.TodoItem, error) {
	encoded, err := models.EncodeDocument(patch)
	if err != nil {
		return models.TodoItem{}, wrap(ErrEncodingDocument, err)
	}

	var todo models.TodoItem
	if r.dialect.atomicMerge {
		todo, err = r.mergeInPlace(ctx, id, encoded)
	} else {
		todo, err = r.mergeInTransaction(ctx, id, patch)
	}
	if err != nil {
		if !errors.Is(err, ErrTodoNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*todoRepository.UpdateTodo").Str("id", id).Msg("error updating todo")
		}
		return models.TodoItem{}, err
	}

	return todo, nil
}

func (r *todoRepository) mergeInPlace(ctx context.Context, id string, patch []byte) (models.TodoItem, error) {
	query, args, err := r.dialect.mergeTodo(id, patch).ToSql()
	if err != nil {
		return models.TodoItem{}, wrap(ErrBuildingSQLQuery, err)
	}

	return scanTodo(r.db.QueryRowContext(ctx, query, args...))
}

// mergeInTransaction reads, merges and writes the document inside one
// transaction for backends without an in-SQL merge operator.
func (r *todoRepository) mergeInTransaction(ctx context.Context, id string, patch map[string]any) (todo models.TodoItem, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.TodoItem{}, wrap(ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query, args, err := r.dialect.getTodoDoc(id).ToSql()
	if err != nil {
		return models.TodoItem{}, wrap(ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TodoItem{}, ErrTodoNotFound
		}
		return models.TodoItem{}, wrap(ErrScanningRow, err)
	}

	doc, err := models.DecodeDocument(raw)
	if err != nil {
		return models.TodoItem{}, wrap(ErrDecodingDocument, err)
	}
	for k, v := range patch {
		doc[k] = v
	}
	merged, err := models.EncodeDocument(doc)
	if err != nil {
		return models.TodoItem{}, wrap(ErrEncodingDocument, err)
	}

	query, args, err = r.dialect.replaceTodoDoc(id, merged).ToSql()
	if err != nil {
		return models.TodoItem{}, wrap(ErrBuildingSQLQuery, err)
	}
	if todo, err = scanTodo(tx.QueryRowContext(ctx, query, args...)); err != nil {
		return models.TodoItem{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.TodoItem{}, wrap(ErrCommitingTransaction, err)
	}

	return todo, nil
}

func (r *todoRepository) DeleteTodo(ctx context.Context, id string) error {
	query, args, err := r.dialect.deleteTodo(id).ToSql()
	if err != nil {
		return wrap(ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoRepository.DeleteTodo").Str("id", id).Msg("error deleting todo")
		return wrap(ErrExecutingStatement, err)
	}

	return nil
}

// scanTodo reads one todo row. A missing row becomes [ErrTodoNotFound].
func scanTodo(row sq.RowScanner) (models.TodoItem, error) {
	var (
		id        string
		raw       []byte
		createdAt any
	)
	if err := row.Scan(&id, &raw, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TodoItem{}, ErrTodoNotFound
		}
		return models.TodoItem{}, wrap(ErrScanningRow, err)
	}

	doc, err := models.DecodeDocument(raw)
	if err != nil {
		return models.TodoItem{}, wrap(ErrDecodingDocument, err)
	}
	delete(doc, models.FieldID)
	delete(doc, models.FieldCreatedAt)

	ts, err := decodeCreatedAt(createdAt)
	if err != nil {
		return models.TodoItem{}, wrap(ErrScanningRow, err)
	}

	return models.TodoItem{ID: id, CreatedAt: ts, Fields: doc}, nil
}

func decodeCreatedAt(v any) (time.Time, error) {
	switch ts := v.(type) {
	case time.Time:
		return ts.UTC(), nil
	case string:
		return parseCreatedAt(ts)
	case []byte:
		return parseCreatedAt(string(ts))
	default:
		return time.Time{}, fmt.Errorf("unexpected created_at type %T", v)
	}
}

func parseCreatedAt(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing created_at %q: %w", s, err)
	}
	return ts.UTC(), nil
}

// wrap joins a sentinel with its cause and records the call stack.
func wrap(sentinel, err error) error {
	return errors.WithStack(fmt.Errorf("%w: %w", sentinel, err))
}
