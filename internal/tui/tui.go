// Package tui is the interactive terminal client of the todo service.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type TUI struct {
	adapter adapter.TodoAdapter
	logger  *logger.Logger
}

func New(todoAdapter adapter.TodoAdapter, logger *logger.Logger) (*TUI, error) {
	return &TUI{adapter: todoAdapter, logger: logger}, nil
}

// Run shows the todo list until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newListModel(ctx, t.adapter, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(listModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
