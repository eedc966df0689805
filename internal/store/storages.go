package store

import "github.com/MKhiriev/go-todo-keeper/internal/logger"

// Storages groups the repositories built over one connection pool.
type Storages struct {
	TodoRepository TodoRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		TodoRepository: NewTodoRepository(db, log),
	}
}
