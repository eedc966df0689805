package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

type Services struct {
	TodoService TodoService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		TodoService: NewTodoService(storages.TodoRepository, utils.NewUUIDGenerator(), logger),
	}
}
