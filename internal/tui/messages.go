package tui

import "github.com/MKhiriev/go-todo-keeper/models"

type todosLoadedMsg struct {
	todos []models.TodoItem
	err   error
}

// todoSavedMsg reports a create, toggle or rename.
type todoSavedMsg struct {
	status string
	err    error
}

type todoDeletedMsg struct {
	err error
}

type copiedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}
