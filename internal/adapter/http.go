package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type httpTodoAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTodoAdapter builds a REST [TodoAdapter]. The address may omit the
// scheme, in which case http is assumed.
func NewHTTPTodoAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (TodoAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpTodoAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpTodoAdapter) ListTodos(ctx context.Context) ([]models.TodoItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/todos")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	todos := []models.TodoItem{}
	if err = json.Unmarshal(resp.Body(), &todos); err != nil {
		return nil, fmt.Errorf("%w: decode todo list: %w", ErrUnexpectedResponse, err)
	}

	return todos, nil
}

func (h *httpTodoAdapter) CreateTodo(ctx context.Context, fields map[string]any) (models.TodoItem, error) {
	if fields == nil {
		fields = map[string]any{}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Post("/todos")
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}

	return decodeTodo(resp.Body())
}

func (h *httpTodoAdapter) GetTodo(ctx context.Context, id string) (models.TodoItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/todos/{id}")
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("get todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}

	return decodeTodo(resp.Body())
}

func (h *httpTodoAdapter) UpdateTodo(ctx context.Context, id string, patch map[string]any) (models.TodoItem, error) {
	if patch == nil {
		patch = map[string]any{}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(patch).
		Put("/todos/{id}")
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("update todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}

	return decodeTodo(resp.Body())
}

func (h *httpTodoAdapter) DeleteTodo(ctx context.Context, id string) error {
	var result models.SuccessResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Delete("/todos/{id}")
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !result.Success {
		h.logger.Debug().Str("id", id).Str("body", resp.String()).Msg("delete was not acknowledged")
		return fmt.Errorf("%w: delete of %q was not acknowledged", ErrUnexpectedResponse, id)
	}

	return nil
}

// decodeTodo reads a single todo. A null body means the todo is missing.
func decodeTodo(body []byte) (models.TodoItem, error) {
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return models.TodoItem{}, ErrNotFound
	}

	var todo models.TodoItem
	if err := json.Unmarshal(body, &todo); err != nil {
		return models.TodoItem{}, fmt.Errorf("%w: decode todo: %w", ErrUnexpectedResponse, err)
	}

	return todo, nil
}
