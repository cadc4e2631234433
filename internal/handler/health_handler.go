package handler

import (
	"net/http"

	"notes-server/pkg/response"
)

const serviceName = "notes-server"

// NoteCounter reports how many notes are stored.
type NoteCounter interface {
	Count() int
}

type HealthHandler struct {
	notes NoteCounter
}

func NewHealthHandler(notes NoteCounter) *HealthHandler {
	return &HealthHandler{notes: notes}
}

// Root answers GET / and GET /api.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.Message(w, "Notes API is running!")
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"status":  "healthy",
		"service": serviceName,
		"notes":   h.notes.Count(),
	})
}
