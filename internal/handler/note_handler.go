package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"notes-server/internal/domain"
	"notes-server/internal/service"
	"notes-server/pkg/logger"
	"notes-server/pkg/response"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	msgFieldsRequired  = "Title and content are required"
	msgNoteNotFound    = "Note not found"
	msgInvalidPayload  = "Invalid request payload"
	msgInternalError   = "Internal server error"
	msgNoteDeleted     = "Note deleted successfully"
	maxRequestBodySize = 1 << 20
)

type NoteHandler struct {
	service *service.NoteService
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{
		service: service,
	}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.List()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, notes)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.NoteInput
	if err := decodeBody(w, r, &req); err != nil {
		response.BadRequest(w, msgInvalidPayload)
		return
	}

	note, err := h.service.Create(&req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Created(w, note)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := noteIDFromPath(r)
	if !ok {
		response.NotFound(w, msgNoteNotFound)
		return
	}

	note, err := h.service.GetByID(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := noteIDFromPath(r)
	if !ok {
		response.NotFound(w, msgNoteNotFound)
		return
	}

	var req domain.NoteInput
	if err := decodeBody(w, r, &req); err != nil {
		// a missing note wins over a bad body
		if _, lookupErr := h.service.GetByID(id); lookupErr != nil {
			h.writeError(w, r, lookupErr)
			return
		}
		response.BadRequest(w, msgInvalidPayload)
		return
	}

	note, err := h.service.Update(id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := noteIDFromPath(r)
	if !ok {
		response.NotFound(w, msgNoteNotFound)
		return
	}

	note, err := h.service.Delete(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, domain.DeleteNoteResponse{
		Message: msgNoteDeleted,
		Note:    note,
	})
}

func (h *NoteHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(w, msgFieldsRequired)
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(w, msgNoteNotFound)
	default:
		ctx := r.Context()
		logger.Log(ctx).Error(ctx, "note operation failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		response.InternalError(w, msgInternalError)
	}
}

func noteIDFromPath(r *http.Request) (int64, bool) {
	return domain.ParseNoteID(mux.Vars(r)["id"])
}

// decodeBody leaves the response untouched; callers decide how to answer a
// malformed body. An empty body decodes to a zero request.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
