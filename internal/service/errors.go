package service

import "github.com/MKhiriev/go-todo-keeper/internal/store"

// ErrTodoNotFound is returned when the requested todo does not exist.
var ErrTodoNotFound = store.ErrTodoNotFound
