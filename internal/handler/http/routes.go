package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	if len(h.cfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
	}
	if h.cfg.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.cfg.MaxBodyBytes))
	}

	router.Get("/todos", h.handle(h.listTodos))
	router.Post("/todos", h.handle(h.createTodo))
	router.Get("/todos/{id}", h.handle(h.getTodo))
	router.Put("/todos/{id}", h.handle(h.updateTodo))
	router.Delete("/todos/{id}", h.handle(h.deleteTodo))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
