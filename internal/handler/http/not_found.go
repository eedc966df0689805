package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// notFound answers unmatched routes and unsupported methods alike, so
// callers cannot probe which methods a path supports.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, "not found", http.StatusNotFound)
}
