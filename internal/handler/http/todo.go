// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const idParam = "id"

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) error {
	todos, err := h.services.TodoService.ListTodos(r.Context())
	if err != nil {
		return err
	}

	h.writeJSON(w, r, todos, http.StatusOK)
	return nil
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) error {
	todo, err := decodeTodo(r)
	if err != nil {
		return err
	}

	created, err := h.services.TodoService.CreateTodo(r.Context(), todo)
	if err != nil {
		return err
	}

	h.writeJSON(w, r, created, http.StatusOK)
	return nil
}

// getTodo answers null for an unknown id unless strict not-found is on.
func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) error {
	todo, err := h.services.TodoService.GetTodo(r.Context(), chi.URLParam(r, idParam))
	if err != nil {
		return h.missingAsNull(w, r, err)
	}

	h.writeJSON(w, r, todo, http.StatusOK)
	return nil
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) error {
	patch, err := decodeTodo(r)
	if err != nil {
		return err
	}

	todo, err := h.services.TodoService.UpdateTodo(r.Context(), chi.URLParam(r, idParam), patch)
	if err != nil {
		return h.missingAsNull(w, r, err)
	}

	h.writeJSON(w, r, todo, http.StatusOK)
	return nil
}

// deleteTodo acknowledges whether or not the id existed.
func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.TodoService.DeleteTodo(r.Context(), chi.URLParam(r, idParam)); err != nil {
		return err
	}

	h.writeJSON(w, r, models.SuccessResponse{Success: true}, http.StatusOK)
	return nil
}

func (h *Handler) missingAsNull(w http.ResponseWriter, r *http.Request, err error) error {
	if h.cfg.StrictNotFound || !errors.Is(err, service.ErrTodoNotFound) {
		return err
	}

	h.writeJSON(w, r, nil, http.StatusOK)
	return nil
}

// decodeTodo reads a JSON object body. An empty body is an empty object.
func decodeTodo(r *http.Request) (models.TodoItem, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return models.TodoItem{}, errors.WithStack(fmt.Errorf("%w: %w", ErrReadingBody, err))
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return models.TodoItem{Fields: map[string]any{}}, nil
	}

	doc, err := models.DecodeDocument(body)
	if err != nil {
		return models.TodoItem{}, errors.WithStack(fmt.Errorf("%w: %w", ErrInvalidBody, err))
	}

	return models.TodoItem{Fields: doc}, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}
