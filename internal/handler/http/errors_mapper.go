package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// errorStatusMap lists the errors answered with something other than 500.
// Only reachable in strict not-found mode: otherwise a missing todo never
// reaches the error stage.
var errorStatusMap = map[error]int{
	service.ErrTodoNotFound: http.StatusNotFound,
}

// statusFromError returns the status for err and the sentinel it matched.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle is the terminal error stage: a failed handler is logged with its
// stack and answered with {"err": message}.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		log := logger.FromRequest(r)
		status, target := statusFromError(err)

		msg := err.Error()
		if target != nil {
			msg = target.Error()
			log.Debug().Err(err).Int("status", status).Msg("request failed")
		} else {
			log.Error().Stack().Err(err).Str("uri", r.RequestURI).Msg("request failed")
		}

		if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Err: msg}, status); writeErr != nil {
			log.Err(writeErr).Msg("error writing error response")
		}
	}
}
