package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

const pingTimeout = 5 * time.Second

var ErrServerUnreachable = errors.New("todo server is unreachable")

type App struct {
	adapter adapter.TodoAdapter
	ui      UI

	logger *logger.Logger
}

func NewApp(todoAdapter adapter.TodoAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if todoAdapter == nil || ui == nil {
		return nil, errors.New("adapter and ui are required")
	}
	return &App{adapter: todoAdapter, ui: ui, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.ping(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("todo server is reachable, starting ui")
	return a.ui.Run(ctx)
}

// ping lists the todos once, the cheapest request the server offers.
func (a *App) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := a.adapter.ListTodos(ctx); err != nil {
		a.logger.Err(err).Msg("ping failed")
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	return nil
}
